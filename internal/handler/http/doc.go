// SPDX-License-Identifier: Apache-2.0

// Package http exposes the transaction wire protocol over HTTP.
//
// Eight POST operations under /txn/v1 drive the lifecycle of a distributed
// transaction: ut/begin, ut/rollback, ut/commit, xa/before-completion,
// xa/commit, xa/forget, xa/prepare and xa/rollback. Every operation except
// Begin carries a binary-encoded Xid body under the xid media type and maps
// to exactly one control call on the resolved transaction handle. Failures
// after content negotiation are serialized as error records under the
// exception media type.
package http
