package service

import (
	"github.com/txgate/txgate/internal/logger"
	"github.com/txgate/txgate/internal/txn"
)

// Services aggregates the transaction services the HTTP handlers depend on.
type Services struct {
	Resolver Resolver
	Beginner Beginner
}

// NewServices wires the services to a transaction directory and the
// manager-supplied Xid resolver.
func NewServices(directory txn.Directory, xidResolver txn.XidResolver, log *logger.Logger) *Services {
	return &Services{
		Resolver: NewResolver(directory, log),
		Beginner: NewBeginner(directory, xidResolver, log),
	}
}
