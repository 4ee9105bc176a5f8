package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidTxnConfigs indicates invalid transaction-directory
	// settings (for example, a negative maximum timeout).
	ErrInvalidTxnConfigs = errors.New("invalid transaction configuration")
)
