package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// the fixed operation table: POST only, one route per lifecycle call
	router.Post("/txn/v1/ut/begin", h.begin)
	router.Post("/txn/v1/ut/rollback", h.utRollback)
	router.Post("/txn/v1/ut/commit", h.utCommit)
	router.Post("/txn/v1/xa/before-completion", h.xaBeforeCompletion)
	router.Post("/txn/v1/xa/commit", h.xaCommit)
	router.Post("/txn/v1/xa/forget", h.xaForget)
	router.Post("/txn/v1/xa/prepare", h.xaPrepare)
	router.Post("/txn/v1/xa/rollback", h.xaRollback)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
