package service

import "errors"

var (
	// ErrTransactionImport marks a failure to find or import the
	// transaction named by a request's Xid.
	ErrTransactionImport = errors.New("transaction could not be found or imported")

	// ErrTransactionControl marks a failed lifecycle control call on a
	// resolved transaction handle.
	ErrTransactionControl = errors.New("transaction control call failed")

	// ErrTransactionBegin marks a failure to start a new transaction.
	ErrTransactionBegin = errors.New("transaction could not be begun")
)
