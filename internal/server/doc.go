// Package server wires and runs the gateway's transport server.
//
// It provides the HTTP server lifecycle: startup, signal handling, and
// graceful shutdown.
package server
