package txn

// Status is the lifecycle state of a transaction participant as seen by the
// in-memory directory.
type Status string

const (
	// StatusActive — begun or imported, no completion work started.
	StatusActive Status = "ACTIVE"

	// StatusPrepared — the participant voted to commit and awaits the
	// outcome.
	StatusPrepared Status = "PREPARED"

	// StatusCommitted — completed with a commit.
	StatusCommitted Status = "COMMITTED"

	// StatusRolledBack — completed with a rollback.
	StatusRolledBack Status = "ROLLEDBACK"
)
