// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the gateway.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Txn holds transaction-directory settings.
	Txn Txn `envPrefix:"TXN_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:7600").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds how long the server waits for a request's
	// headers (e.g. "30s", "1m"). It is not a per-transaction deadline;
	// the protocol defines none.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Txn holds settings of the in-memory transaction directory.
type Txn struct {
	// MaxTimeout caps the transaction timeout a Begin request may ask
	// for (e.g. "5m"). Zero disables the cap.
	// Env: TXN_MAX_TIMEOUT
	MaxTimeout time.Duration `env:"MAX_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the gateway
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// validate checks that the final merged [StructuredConfig] satisfies the
// gateway's startup invariants.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.Txn.MaxTimeout < 0 {
		return ErrInvalidTxnConfigs
	}
	return nil
}
