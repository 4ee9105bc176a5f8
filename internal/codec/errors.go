package codec

import "errors"

var (
	// ErrMalformed marks every decode failure: truncated payloads,
	// negative declared lengths, missing terminators, and trailing bytes.
	// Callers classify with errors.Is and report the wrapped detail.
	ErrMalformed = errors.New("malformed payload")
)
