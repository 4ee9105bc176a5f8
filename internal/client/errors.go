package client

import "errors"

// Sentinel errors a remote gateway's responses map to. Wire error records
// carry a kind instead of a serialized exception; each kind surfaces here as
// one sentinel wrapping the remote message.
var (
	// ErrBadRequest reports a 400: the request was rejected before the
	// gateway touched the transaction directory.
	ErrBadRequest = errors.New("gateway rejected request")

	// ErrSerialization reports a remote serialization failure.
	ErrSerialization = errors.New("remote serialization failure")

	// ErrImport reports that the remote directory could not find or
	// import the transaction.
	ErrImport = errors.New("remote transaction import failure")

	// ErrControl reports a failed remote control call.
	ErrControl = errors.New("remote transaction control failure")

	// ErrInternal reports an unclassified remote failure.
	ErrInternal = errors.New("remote internal failure")
)
