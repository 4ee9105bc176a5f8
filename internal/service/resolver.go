package service

import (
	"context"
	"fmt"

	"github.com/txgate/txgate/internal/logger"
	"github.com/txgate/txgate/internal/txn"
	"github.com/txgate/txgate/models"
)

// txnResolver is the concrete Resolver. It delegates to the directory's
// find-or-import operation with the manager-default import mode and keeps no
// state of its own, so one instance serves all requests concurrently.
type txnResolver struct {
	directory txn.Directory
	logger    *logger.Logger
}

// NewResolver constructs a Resolver backed by directory.
func NewResolver(directory txn.Directory, log *logger.Logger) Resolver {
	return &txnResolver{directory: directory, logger: log}
}

// Resolve returns the control handle for xid. Every failure wraps
// ErrTransactionImport so callers can classify it without knowing the
// directory's error set.
func (s *txnResolver) Resolve(ctx context.Context, xid models.Xid) (txn.Control, error) {
	log := logger.FromContext(ctx)

	result, err := s.directory.FindOrImport(ctx, xid)
	if err != nil {
		log.Err(err).Str("xid", xid.String()).Msg("find-or-import failed")
		return nil, fmt.Errorf("%w: %w", ErrTransactionImport, err)
	}

	log.Debug().Str("xid", xid.String()).Bool("new", result.New).Msg("transaction resolved")
	return result.Control, nil
}
