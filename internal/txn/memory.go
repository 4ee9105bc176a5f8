package txn

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/txgate/txgate/internal/logger"
	"github.com/txgate/txgate/models"
)

// memoryFormatID marks Xids minted by the in-memory directory.
const memoryFormatID int32 = 0x74786731

// MemoryDirectory is a reference Directory keeping all transaction state in
// process memory. It is not a transaction engine: there is no durability and
// no coordinator, only the participant bookkeeping the wire protocol needs.
type MemoryDirectory struct {
	maxTimeout time.Duration
	logger     *logger.Logger

	mu           sync.Mutex
	transactions map[string]*memoryTxn
}

// NewMemoryDirectory returns an empty directory. maxTimeout caps the timeout
// accepted by Begin; zero disables the cap.
func NewMemoryDirectory(maxTimeout time.Duration, log *logger.Logger) *MemoryDirectory {
	return &MemoryDirectory{
		maxTimeout:   maxTimeout,
		logger:       log,
		transactions: make(map[string]*memoryTxn),
	}
}

// Begin mints a fresh Xid, registers an active transaction under it, and
// returns its handle. The timeout starts counting immediately.
func (d *MemoryDirectory) Begin(ctx context.Context, timeout time.Duration) (Control, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.maxTimeout > 0 && timeout > d.maxTimeout {
		return nil, fmt.Errorf("%w: %s > %s", ErrTimeoutTooLarge, timeout, d.maxTimeout)
	}

	globalID := uuid.New()
	branch := uuid.New()
	xid := models.Xid{
		FormatID:            memoryFormatID,
		GlobalTransactionID: globalID[:],
		BranchQualifier:     branch[:],
	}

	t := &memoryTxn{dir: d, xid: xid, status: StatusActive}
	if timeout > 0 {
		t.deadline = time.Now().Add(timeout)
	}

	d.mu.Lock()
	d.transactions[xid.Key()] = t
	d.mu.Unlock()

	d.logger.Debug().Str("xid", xid.String()).Dur("timeout", timeout).Msg("transaction begun")
	return t, nil
}

// FindOrImport returns the transaction named by xid, registering an imported
// active participant when the Xid has not been seen before. Imported
// transactions carry no local deadline; their lifetime belongs to the remote
// coordinator.
func (d *MemoryDirectory) FindOrImport(ctx context.Context, xid models.Xid) (ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return ImportResult{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.transactions[xid.Key()]; ok {
		return ImportResult{Control: t, New: false}, nil
	}

	t := &memoryTxn{dir: d, xid: xid, status: StatusActive}
	d.transactions[xid.Key()] = t
	d.logger.Debug().Str("xid", xid.String()).Msg("transaction imported")
	return ImportResult{Control: t, New: true}, nil
}

// XidOf reports the Xid of a handle this directory created. It satisfies
// the XidResolver capability the Begin operation needs.
func (d *MemoryDirectory) XidOf(c Control) (models.Xid, error) {
	t, ok := c.(*memoryTxn)
	if !ok || t.dir != d {
		return models.Xid{}, ErrForeignControl
	}
	return t.xid, nil
}

// Status reports the current state of the transaction named by xid. It
// exists for tests and diagnostics; the wire protocol never reads state.
func (d *MemoryDirectory) Status(xid models.Xid) (Status, bool) {
	d.mu.Lock()
	t, ok := d.transactions[xid.Key()]
	d.mu.Unlock()
	if !ok {
		return "", false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status, true
}

func (d *MemoryDirectory) remove(xid models.Xid) {
	d.mu.Lock()
	delete(d.transactions, xid.Key())
	d.mu.Unlock()
}

// memoryTxn is one transaction's participant state machine. Its mutex
// serializes control calls carrying the same Xid; the directory guarantees
// nothing across distinct Xids.
type memoryTxn struct {
	dir      *MemoryDirectory
	xid      models.Xid
	deadline time.Time

	mu     sync.Mutex
	status Status
}

// expire rolls back an active transaction whose deadline has passed.
// Must be called with t.mu held.
func (t *memoryTxn) expire() error {
	if t.deadline.IsZero() || time.Now().Before(t.deadline) {
		return nil
	}
	if t.status == StatusActive {
		t.status = StatusRolledBack
	}
	return fmt.Errorf("%w: deadline %s", ErrExpired, t.deadline.Format(time.RFC3339))
}

func (t *memoryTxn) Commit(ctx context.Context, onePhase bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.expire(); err != nil {
		return err
	}

	switch {
	case onePhase && t.status == StatusActive:
		// single participant, prepare vote skipped
	case !onePhase && (t.status == StatusActive || t.status == StatusPrepared):
		// second phase, or a user-transaction commit driving both phases
	default:
		return fmt.Errorf("%w: commit(onePhase=%t) in state %s", ErrInvalidState, onePhase, t.status)
	}

	t.status = StatusCommitted
	return nil
}

func (t *memoryTxn) Rollback(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.expire(); err != nil {
		return err
	}

	if t.status != StatusActive && t.status != StatusPrepared {
		return fmt.Errorf("%w: rollback in state %s", ErrInvalidState, t.status)
	}
	t.status = StatusRolledBack
	return nil
}

func (t *memoryTxn) Prepare(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.expire(); err != nil {
		return err
	}

	if t.status != StatusActive {
		return fmt.Errorf("%w: prepare in state %s", ErrInvalidState, t.status)
	}
	t.status = StatusPrepared
	return nil
}

func (t *memoryTxn) Forget(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.status != StatusCommitted && t.status != StatusRolledBack {
		return fmt.Errorf("%w: forget in state %s", ErrInvalidState, t.status)
	}
	t.dir.remove(t.xid)
	return nil
}

func (t *memoryTxn) BeforeCompletion(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.expire(); err != nil {
		return err
	}

	if t.status != StatusActive {
		return fmt.Errorf("%w: before-completion in state %s", ErrInvalidState, t.status)
	}
	return nil
}
