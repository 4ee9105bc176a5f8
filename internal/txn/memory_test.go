package txn

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/txgate/txgate/internal/logger"
	"github.com/txgate/txgate/models"
)

func newTestDirectory(t *testing.T) *MemoryDirectory {
	t.Helper()
	return NewMemoryDirectory(0, logger.Nop())
}

func importedXid(n byte) models.Xid {
	return models.Xid{FormatID: 99, GlobalTransactionID: []byte{n, n}, BranchQualifier: []byte{n}}
}

// ─────────────────────────────────────────────
// Begin / FindOrImport / XidOf
// ─────────────────────────────────────────────

func TestBegin_MintsDistinctXids(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()

	first, err := d.Begin(ctx, time.Minute)
	require.NoError(t, err)
	second, err := d.Begin(ctx, time.Minute)
	require.NoError(t, err)

	firstXid, err := d.XidOf(first)
	require.NoError(t, err)
	secondXid, err := d.XidOf(second)
	require.NoError(t, err)

	assert.False(t, firstXid.Equal(secondXid))
}

func TestBegin_TimeoutAboveMaximumRejected(t *testing.T) {
	d := NewMemoryDirectory(time.Minute, logger.Nop())

	_, err := d.Begin(context.Background(), 2*time.Minute)

	assert.ErrorIs(t, err, ErrTimeoutTooLarge)
}

func TestFindOrImport_UnknownXidImports(t *testing.T) {
	d := newTestDirectory(t)

	result, err := d.FindOrImport(context.Background(), importedXid(1))

	require.NoError(t, err)
	assert.True(t, result.New)
	require.NotNil(t, result.Control)
}

func TestFindOrImport_SecondLookupFindsSameTransaction(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()

	first, err := d.FindOrImport(ctx, importedXid(1))
	require.NoError(t, err)
	second, err := d.FindOrImport(ctx, importedXid(1))
	require.NoError(t, err)

	assert.False(t, second.New)
	assert.Same(t, first.Control, second.Control)
}

func TestFindOrImport_BegunTransactionIsFound(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()

	control, err := d.Begin(ctx, time.Minute)
	require.NoError(t, err)
	xid, err := d.XidOf(control)
	require.NoError(t, err)

	result, err := d.FindOrImport(ctx, xid)

	require.NoError(t, err)
	assert.False(t, result.New)
	assert.Same(t, control, result.Control)
}

func TestXidOf_ForeignControlRejected(t *testing.T) {
	d := newTestDirectory(t)
	other := newTestDirectory(t)

	control, err := other.Begin(context.Background(), time.Minute)
	require.NoError(t, err)

	_, err = d.XidOf(control)

	assert.ErrorIs(t, err, ErrForeignControl)
}

// ─────────────────────────────────────────────
// Participant state machine
// ─────────────────────────────────────────────

func importedControl(t *testing.T, d *MemoryDirectory, n byte) Control {
	t.Helper()
	result, err := d.FindOrImport(context.Background(), importedXid(n))
	require.NoError(t, err)
	return result.Control
}

func TestStateMachine_PrepareThenCommit(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()
	c := importedControl(t, d, 1)

	require.NoError(t, c.Prepare(ctx))
	require.NoError(t, c.Commit(ctx, false))

	status, ok := d.Status(importedXid(1))
	require.True(t, ok)
	assert.Equal(t, StatusCommitted, status)
}

func TestStateMachine_OnePhaseCommitFromActive(t *testing.T) {
	d := newTestDirectory(t)
	c := importedControl(t, d, 1)

	assert.NoError(t, c.Commit(context.Background(), true))
}

func TestStateMachine_OnePhaseCommitAfterPrepareRejected(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()
	c := importedControl(t, d, 1)

	require.NoError(t, c.Prepare(ctx))

	assert.ErrorIs(t, c.Commit(ctx, true), ErrInvalidState)
}

func TestStateMachine_TwoPhaseCommitFromActive(t *testing.T) {
	// a user-transaction commit drives both phases in one call
	d := newTestDirectory(t)
	c := importedControl(t, d, 1)

	assert.NoError(t, c.Commit(context.Background(), false))
}

func TestStateMachine_RollbackFromActiveAndPrepared(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()

	active := importedControl(t, d, 1)
	assert.NoError(t, active.Rollback(ctx))

	prepared := importedControl(t, d, 2)
	require.NoError(t, prepared.Prepare(ctx))
	assert.NoError(t, prepared.Rollback(ctx))
}

func TestStateMachine_CompletedTransactionRejectsLifecycleCalls(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()
	c := importedControl(t, d, 1)
	require.NoError(t, c.Commit(ctx, false))

	assert.ErrorIs(t, c.Prepare(ctx), ErrInvalidState)
	assert.ErrorIs(t, c.Rollback(ctx), ErrInvalidState)
	assert.ErrorIs(t, c.Commit(ctx, false), ErrInvalidState)
	assert.ErrorIs(t, c.BeforeCompletion(ctx), ErrInvalidState)
}

func TestStateMachine_BeforeCompletionOnlyWhileActive(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()
	c := importedControl(t, d, 1)

	assert.NoError(t, c.BeforeCompletion(ctx))

	require.NoError(t, c.Prepare(ctx))
	assert.ErrorIs(t, c.BeforeCompletion(ctx), ErrInvalidState)
}

func TestStateMachine_ForgetRequiresCompletion(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()
	c := importedControl(t, d, 1)

	assert.ErrorIs(t, c.Forget(ctx), ErrInvalidState)

	require.NoError(t, c.Rollback(ctx))
	require.NoError(t, c.Forget(ctx))

	// forgotten transactions are gone from the directory
	_, ok := d.Status(importedXid(1))
	assert.False(t, ok)
}

func TestStateMachine_ForgetAllowsReimport(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()
	c := importedControl(t, d, 1)
	require.NoError(t, c.Commit(ctx, false))
	require.NoError(t, c.Forget(ctx))

	result, err := d.FindOrImport(ctx, importedXid(1))

	require.NoError(t, err)
	assert.True(t, result.New)
}

// ─────────────────────────────────────────────
// Timeouts
// ─────────────────────────────────────────────

func TestBegin_ExpiredTransactionRollsBack(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()

	control, err := d.Begin(ctx, time.Nanosecond)
	require.NoError(t, err)
	xid, err := d.XidOf(control)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	assert.ErrorIs(t, control.Commit(ctx, false), ErrExpired)

	status, ok := d.Status(xid)
	require.True(t, ok)
	assert.Equal(t, StatusRolledBack, status)
}

func TestBegin_ZeroTimeoutNeverExpires(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()

	control, err := d.Begin(ctx, 0)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	assert.NoError(t, control.Commit(ctx, false))
}

func TestControl_CancelledContextRejected(t *testing.T) {
	d := newTestDirectory(t)
	c := importedControl(t, d, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, c.Commit(ctx, false), context.Canceled)
}
