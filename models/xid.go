// SPDX-License-Identifier: Apache-2.0

// Package models holds the wire-level types shared by the handler, codec,
// and client packages: the transaction identifier, the error record, and the
// protocol's media-type constants.
package models

import (
	"bytes"
	"fmt"
)

// Xid identifies a distributed transaction branch. FormatID names the scheme
// under which the two byte sequences were generated; GlobalTransactionID is
// shared by every branch of one distributed transaction, BranchQualifier
// distinguishes this branch from its siblings.
type Xid struct {
	FormatID            int32
	GlobalTransactionID []byte
	BranchQualifier     []byte
}

// Equal reports whether x and other carry the same content. A nil sequence
// and an empty one compare equal.
func (x Xid) Equal(other Xid) bool {
	return x.FormatID == other.FormatID &&
		bytes.Equal(x.GlobalTransactionID, other.GlobalTransactionID) &&
		bytes.Equal(x.BranchQualifier, other.BranchQualifier)
}

// Key returns a string usable as a map key. The two sequences are hex-encoded
// and separated, so xids whose concatenated bytes coincide but split
// differently still map to distinct keys.
func (x Xid) Key() string {
	return fmt.Sprintf("%d:%x:%x", x.FormatID, x.GlobalTransactionID, x.BranchQualifier)
}

func (x Xid) String() string {
	return "xid:" + x.Key()
}
