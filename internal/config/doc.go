// Package config loads the gateway configuration from environment
// variables, command-line flags, and an optional JSON file, merging the
// sources with mergo before validation.
package config
