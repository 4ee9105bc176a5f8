package service

import (
	"context"
	"fmt"
	"time"

	"github.com/txgate/txgate/internal/logger"
	"github.com/txgate/txgate/internal/txn"
	"github.com/txgate/txgate/models"
)

// txnBeginner is the concrete Beginner. It pairs the directory's Begin with
// the manager-supplied Xid resolver so the handler only ever sees the Xid it
// must wire back to the caller.
type txnBeginner struct {
	directory   txn.Directory
	xidResolver txn.XidResolver
	logger      *logger.Logger
}

// NewBeginner constructs a Beginner backed by directory and xidResolver.
func NewBeginner(directory txn.Directory, xidResolver txn.XidResolver, log *logger.Logger) Beginner {
	return &txnBeginner{directory: directory, xidResolver: xidResolver, logger: log}
}

// Begin starts a new transaction with the given timeout and reports its Xid.
// Both the directory call and the Xid resolution wrap ErrTransactionBegin on
// failure; the handle itself is discarded, the caller drives the transaction
// through later requests carrying the Xid.
func (s *txnBeginner) Begin(ctx context.Context, timeout time.Duration) (models.Xid, error) {
	log := logger.FromContext(ctx)

	control, err := s.directory.Begin(ctx, timeout)
	if err != nil {
		log.Err(err).Dur("timeout", timeout).Msg("begin failed")
		return models.Xid{}, fmt.Errorf("%w: %w", ErrTransactionBegin, err)
	}

	xid, err := s.xidResolver(control)
	if err != nil {
		log.Err(err).Msg("xid resolution failed for begun transaction")
		return models.Xid{}, fmt.Errorf("%w: resolving xid: %w", ErrTransactionBegin, err)
	}

	log.Debug().Str("xid", xid.String()).Dur("timeout", timeout).Msg("transaction begun")
	return xid, nil
}
