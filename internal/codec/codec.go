// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/txgate/txgate/models"
)

// FormatVersion is the wire-format revision the gateway speaks. It is part
// of the codec configuration, not of the encoded payloads; both ends of a
// connection must be built against the same revision.
const FormatVersion = 2

// errorTerminator closes every encoded error record. It doubles as an
// end-of-stream marker for readers that consume the record from a raw
// connection rather than a fully buffered body.
const errorTerminator byte = 0

// Codec encodes and decodes Xids and error records. Its configuration is
// fixed at construction, so a single Codec is safe for unsynchronized
// concurrent use.
type Codec struct {
	formatVersion int
}

// New returns a Codec configured for the current FormatVersion.
func New() *Codec {
	return &Codec{formatVersion: FormatVersion}
}

// FormatVersion reports the wire-format revision this codec was built with.
func (c *Codec) FormatVersion() int {
	return c.formatVersion
}

// EncodeXid renders x in its wire layout:
//
//	int32  formatId
//	int32  len(globalTransactionId)
//	byte[] globalTransactionId
//	int32  len(branchQualifier)
//	byte[] branchQualifier
func (c *Codec) EncodeXid(x models.Xid) []byte {
	buf := make([]byte, 0, 12+len(x.GlobalTransactionID)+len(x.BranchQualifier))
	buf = binary.BigEndian.AppendUint32(buf, uint32(x.FormatID))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(x.GlobalTransactionID)))
	buf = append(buf, x.GlobalTransactionID...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(x.BranchQualifier)))
	buf = append(buf, x.BranchQualifier...)
	return buf
}

// DecodeXid parses a fully buffered Xid payload. The payload must be
// consumed exactly: a declared length that overruns the remaining bytes,
// a negative declared length, or trailing bytes all fail with a wrapped
// [ErrMalformed], and no partial Xid is ever returned.
func (c *Codec) DecodeXid(payload []byte) (models.Xid, error) {
	r := reader{buf: payload}

	formatID, err := r.int32("format id")
	if err != nil {
		return models.Xid{}, err
	}
	globalID, err := r.byteSequence("global transaction id")
	if err != nil {
		return models.Xid{}, err
	}
	branch, err := r.byteSequence("branch qualifier")
	if err != nil {
		return models.Xid{}, err
	}
	if err := r.expectEOF(); err != nil {
		return models.Xid{}, err
	}

	return models.Xid{
		FormatID:            formatID,
		GlobalTransactionID: globalID,
		BranchQualifier:     branch,
	}, nil
}

// EncodeError renders rec in its wire layout:
//
//	int32  kind
//	int32  len(message)
//	byte[] message (UTF-8)
//	byte   0x00 terminator
func (c *Codec) EncodeError(rec models.ErrorRecord) []byte {
	message := []byte(rec.Message)
	buf := make([]byte, 0, 9+len(message))
	buf = binary.BigEndian.AppendUint32(buf, uint32(rec.Kind))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(message)))
	buf = append(buf, message...)
	buf = append(buf, errorTerminator)
	return buf
}

// DecodeError parses a fully buffered error-record payload, enforcing the
// terminating zero byte and exact consumption.
func (c *Codec) DecodeError(payload []byte) (models.ErrorRecord, error) {
	r := reader{buf: payload}

	kind, err := r.int32("error kind")
	if err != nil {
		return models.ErrorRecord{}, err
	}
	message, err := r.byteSequence("error message")
	if err != nil {
		return models.ErrorRecord{}, err
	}
	terminator, err := r.byte("terminator")
	if err != nil {
		return models.ErrorRecord{}, err
	}
	if terminator != errorTerminator {
		return models.ErrorRecord{}, fmt.Errorf("%w: error record terminator is 0x%02x, want 0x00", ErrMalformed, terminator)
	}
	if err := r.expectEOF(); err != nil {
		return models.ErrorRecord{}, err
	}

	return models.ErrorRecord{
		Kind:    models.ErrorKind(kind),
		Message: string(message),
	}, nil
}

// reader walks a fully buffered payload, failing with wrapped ErrMalformed
// on any overrun.
type reader struct {
	buf []byte
	off int
}

func (r *reader) int32(field string) (int32, error) {
	if r.off+4 > len(r.buf) {
		return 0, fmt.Errorf("%w: %s needs 4 bytes, %d remain", ErrMalformed, field, len(r.buf)-r.off)
	}
	v := int32(binary.BigEndian.Uint32(r.buf[r.off:]))
	r.off += 4
	return v, nil
}

func (r *reader) byte(field string) (byte, error) {
	if r.off >= len(r.buf) {
		return 0, fmt.Errorf("%w: %s needs 1 byte, 0 remain", ErrMalformed, field)
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

// byteSequence reads an int32 declared length followed by exactly that many
// bytes. The returned slice is a copy, so the decoded value never aliases
// the request buffer.
func (r *reader) byteSequence(field string) ([]byte, error) {
	declared, err := r.int32(field + " length")
	if err != nil {
		return nil, err
	}
	if declared < 0 {
		return nil, fmt.Errorf("%w: %s declares negative length %d", ErrMalformed, field, declared)
	}
	n := int(declared)
	if r.off+n > len(r.buf) {
		return nil, fmt.Errorf("%w: %s declares %d bytes, %d remain", ErrMalformed, field, n, len(r.buf)-r.off)
	}
	seq := make([]byte, n)
	copy(seq, r.buf[r.off:r.off+n])
	r.off += n
	return seq, nil
}

func (r *reader) expectEOF() error {
	if r.off != len(r.buf) {
		return fmt.Errorf("%w: %d trailing bytes after payload", ErrMalformed, len(r.buf)-r.off)
	}
	return nil
}
