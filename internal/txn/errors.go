package txn

import "errors"

var (
	// ErrInvalidState reports a control call that is not legal in the
	// transaction's current state, such as prepare after commit.
	ErrInvalidState = errors.New("control call not valid in current transaction state")

	// ErrExpired reports a control call on a transaction whose begin
	// timeout has elapsed. The directory rolls such transactions back.
	ErrExpired = errors.New("transaction timed out")

	// ErrTimeoutTooLarge reports a Begin timeout above the directory's
	// configured maximum.
	ErrTimeoutTooLarge = errors.New("transaction timeout exceeds configured maximum")

	// ErrForeignControl reports a handle passed to a directory that did
	// not create it.
	ErrForeignControl = errors.New("control handle does not belong to this directory")
)
