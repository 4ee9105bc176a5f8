package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/txgate/txgate/internal/txn"
	"github.com/txgate/txgate/models"
)

// Resolver turns a decoded Xid into the control handle of the transaction it
// names, finding or importing it through the transaction directory.
type Resolver interface {
	Resolve(ctx context.Context, xid models.Xid) (txn.Control, error)
}

// Beginner starts a brand-new local transaction and reports its Xid.
type Beginner interface {
	Begin(ctx context.Context, timeout time.Duration) (models.Xid, error)
}
