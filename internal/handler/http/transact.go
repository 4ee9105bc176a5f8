package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/txgate/txgate/internal/logger"
	"github.com/txgate/txgate/internal/service"
	"github.com/txgate/txgate/internal/txn"
	"github.com/txgate/txgate/models"
)

// Media types every handler stamps on its responses.
var (
	xidMediaType       = models.ContentType{Type: models.XidContentType, Version: models.ProtocolVersion}
	exceptionMediaType = models.ContentType{Type: models.ExceptionContentType, Version: models.ProtocolVersion}
)

// controlCall is the single lifecycle operation a handler issues on the
// resolved transaction handle.
type controlCall func(ctx context.Context, control txn.Control) error

// transact is the shared pipeline behind every operation except Begin:
// negotiate the xid media type, read the full body, decode the Xid, resolve
// the transaction handle, and issue exactly one control call. Content-type
// failures are rejected with a bare 400 before the body is read or the
// directory is touched; every later failure is serialized through
// sendException with status 500. Success is a 200 with an empty body.
func (h *Handler) transact(w http.ResponseWriter, r *http.Request, op controlCall) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	contentType, ok := models.ParseContentType(r.Header.Get("Content-Type"))
	if !ok || contentType.Type != models.XidContentType || contentType.Version != models.ProtocolVersion {
		log.Debug().Str("content_type", r.Header.Get("Content-Type")).Msg("incorrect or missing content type")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.sendException(w, r, http.StatusInternalServerError, fmt.Errorf("reading request body: %w", err))
		return
	}

	xid, err := h.wire.DecodeXid(body)
	if err != nil {
		h.sendException(w, r, http.StatusInternalServerError, fmt.Errorf("decoding xid: %w", err))
		return
	}

	control, err := h.services.Resolver.Resolve(ctx, xid)
	if err != nil {
		h.sendException(w, r, http.StatusInternalServerError, err)
		return
	}

	if err := op(ctx, control); err != nil {
		h.sendException(w, r, http.StatusInternalServerError, fmt.Errorf("%w: %w", service.ErrTransactionControl, err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
