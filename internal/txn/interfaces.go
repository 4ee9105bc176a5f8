package txn

//go:generate mockgen -source=interfaces.go -destination=../mock/txn_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/txgate/txgate/models"
)

// Control is an opaque handle to one local or imported transaction. A handle
// is valid for a single request: the gateway obtains it, issues exactly one
// control call, and discards it. Handles are never cached across requests.
type Control interface {
	// Commit completes the transaction. With onePhase set the participant
	// may skip the prepare vote; without it the commit is the second phase
	// of a full two-phase completion.
	Commit(ctx context.Context, onePhase bool) error

	// Rollback aborts the transaction from the active or prepared state.
	Rollback(ctx context.Context) error

	// Prepare records the participant's commit vote, moving the
	// transaction from active to prepared.
	Prepare(ctx context.Context) error

	// Forget discards state retained after a heuristic completion.
	Forget(ctx context.Context) error

	// BeforeCompletion runs last-chance work immediately before prepare.
	BeforeCompletion(ctx context.Context) error
}

// ImportResult is the outcome of a find-or-import lookup. The gateway uses
// only the handle; New exists for managers that distinguish first import.
type ImportResult struct {
	Control Control
	New     bool
}

// Directory locates and creates transactions on the local manager.
// Implementations must be safe for concurrent use; serialization of
// operations on a single transaction is the directory's responsibility,
// not the gateway's.
type Directory interface {
	// Begin starts a brand-new local transaction with the given timeout.
	// A zero timeout means the manager's unbounded default.
	Begin(ctx context.Context, timeout time.Duration) (Control, error)

	// FindOrImport returns the transaction named by xid, registering it
	// as an imported participant if it is not yet known. The import uses
	// the manager-defined default mode; the protocol defines no options.
	FindOrImport(ctx context.Context, xid models.Xid) (ImportResult, error)
}

// XidResolver is a manager-supplied capability that reports the Xid of a
// handle the manager created. The gateway needs it only to answer Begin.
type XidResolver func(Control) (models.Xid, error)
