package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/txgate/txgate/internal/logger"
	"github.com/txgate/txgate/models"
)

// begin starts a brand-new transaction. Unlike the other operations it
// carries no Xid body and skips content negotiation: the only input is the
// integer timeout header, in seconds. A missing or non-integer timeout is a
// bare 400; directory and encoding failures go through sendException. The
// 200 response body is the new transaction's encoded Xid under the xid
// media type.
func (h *Handler) begin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	timeoutHeader := r.Header.Get(models.TimeoutHeader)
	if timeoutHeader == "" {
		log.Debug().Str("header", models.TimeoutHeader).Msg("missing timeout header")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	seconds, err := strconv.Atoi(timeoutHeader)
	if err != nil {
		log.Debug().Str("timeout", timeoutHeader).Msg("unparsable timeout header")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	xid, err := h.services.Beginner.Begin(ctx, time.Duration(seconds)*time.Second)
	if err != nil {
		h.sendException(w, r, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", xidMediaType.String())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.wire.EncodeXid(xid)); err != nil {
		log.Debug().Err(err).Msg("failed to write begin response body")
	}
}
