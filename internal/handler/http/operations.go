package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/txgate/txgate/internal/txn"
)

func (h *Handler) utRollback(w http.ResponseWriter, r *http.Request) {
	h.transact(w, r, func(ctx context.Context, control txn.Control) error {
		return control.Rollback(ctx)
	})
}

// utCommit always commits two-phase: user-transaction commits drive the full
// completion regardless of any query parameters on the request.
func (h *Handler) utCommit(w http.ResponseWriter, r *http.Request) {
	h.transact(w, r, func(ctx context.Context, control txn.Control) error {
		return control.Commit(ctx, false)
	})
}

func (h *Handler) xaBeforeCompletion(w http.ResponseWriter, r *http.Request) {
	h.transact(w, r, func(ctx context.Context, control txn.Control) error {
		return control.BeforeCompletion(ctx)
	})
}

func (h *Handler) xaForget(w http.ResponseWriter, r *http.Request) {
	h.transact(w, r, func(ctx context.Context, control txn.Control) error {
		return control.Forget(ctx)
	})
}

func (h *Handler) xaPrepare(w http.ResponseWriter, r *http.Request) {
	h.transact(w, r, func(ctx context.Context, control txn.Control) error {
		return control.Prepare(ctx)
	})
}

func (h *Handler) xaRollback(w http.ResponseWriter, r *http.Request) {
	h.transact(w, r, func(ctx context.Context, control txn.Control) error {
		return control.Rollback(ctx)
	})
}

func (h *Handler) xaCommit(w http.ResponseWriter, r *http.Request) {
	onePhase := onePhaseParam(r)
	h.transact(w, r, func(ctx context.Context, control txn.Control) error {
		return control.Commit(ctx, onePhase)
	})
}

// onePhaseParam reads the optional opc query parameter. Absent or
// unparsable values default to false; a malformed opc is never a client
// error.
func onePhaseParam(r *http.Request) bool {
	onePhase, err := strconv.ParseBool(r.URL.Query().Get("opc"))
	if err != nil {
		return false
	}
	return onePhase
}
