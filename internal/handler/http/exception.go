package http

import (
	"errors"
	"net/http"

	"github.com/txgate/txgate/internal/codec"
	"github.com/txgate/txgate/internal/logger"
	"github.com/txgate/txgate/internal/service"
	"github.com/txgate/txgate/models"
)

// kindFromError folds the gateway's error taxonomy into the closed set of
// wire error kinds. Anything unrecognized is reported as internal.
func kindFromError(err error) models.ErrorKind {
	switch {
	case errors.Is(err, codec.ErrMalformed):
		return models.KindSerialization
	case errors.Is(err, service.ErrTransactionImport):
		return models.KindImport
	case errors.Is(err, service.ErrTransactionControl):
		return models.KindControl
	default:
		return models.KindInternal
	}
}

// sendException reports a failed request: it sets the given status, stamps
// the exception media type, and writes the encoded error record. It never
// fails visibly to the client — if the record cannot be written, the failure
// is logged and the already-set status stands with whatever bytes made it
// out. Reporting never touches transaction state.
func (h *Handler) sendException(w http.ResponseWriter, r *http.Request, status int, err error) {
	log := logger.FromRequest(r)
	log.Err(err).Str("kind", kindFromError(err).String()).Msg("request failed")

	record := models.ErrorRecord{Kind: kindFromError(err), Message: err.Error()}

	w.Header().Set("Content-Type", exceptionMediaType.String())
	w.WriteHeader(status)
	if _, writeErr := w.Write(h.wire.EncodeError(record)); writeErr != nil {
		log.Debug().Err(writeErr).Msg("failed to write error record")
	}
}
