// Package codec implements the binary wire format of the transaction
// gateway: the Xid layout carried by request and Begin-response bodies and
// the error-record layout carried by failure responses.
//
// All integers are fixed 4-byte big-endian values so that encode and decode
// agree on every platform. Bodies are always read in full before decoding;
// the codec therefore offers no streaming mode and requires exact
// consumption of its input.
package codec
