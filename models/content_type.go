package models

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// XidContentType is the media type carrying a binary-encoded Xid, in
	// request bodies and in Begin responses.
	XidContentType = "application/x-txg-xid"

	// ExceptionContentType is the media type carrying a binary-encoded
	// ErrorRecord on failed responses.
	ExceptionContentType = "application/x-txg-exception"

	// ProtocolVersion is the media-type version both sides currently speak.
	ProtocolVersion = 1

	// TimeoutHeader carries the requested transaction timeout, in whole
	// seconds, on Begin requests.
	TimeoutHeader = "X-Txg-Txn-Timeout"
)

// ContentType is a parsed protocol media type: the bare type plus its
// mandatory version parameter.
type ContentType struct {
	Type    string
	Version int
}

// ParseContentType parses a Content-Type header value of the form
// "type;version=N". The version parameter is mandatory and is the only
// parameter recognized; any other shape reports ok=false.
func ParseContentType(header string) (ContentType, bool) {
	mediaType, param, found := strings.Cut(header, ";")
	if !found {
		return ContentType{}, false
	}

	name, value, found := strings.Cut(param, "=")
	if !found || strings.TrimSpace(name) != "version" {
		return ContentType{}, false
	}

	version, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return ContentType{}, false
	}

	return ContentType{
		Type:    strings.TrimSpace(mediaType),
		Version: version,
	}, true
}

// String renders the media type in the wire form ParseContentType accepts.
func (ct ContentType) String() string {
	return fmt.Sprintf("%s;version=%d", ct.Type, ct.Version)
}
