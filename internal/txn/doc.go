// Package txn defines the narrow contract between the gateway and the local
// transaction manager: a directory that begins, finds, or imports
// transactions keyed by Xid, and a per-transaction control handle exposing
// the lifecycle calls the wire protocol drives.
//
// The gateway itself keeps no transaction state; all statefulness lives
// behind the Directory. The in-memory directory in this package is a
// reference implementation used by the bundled server binary and the tests.
package txn
