/*
SPDX-License-Identifier: Apache-2.0
*/

// Package ledger narrows the Fabric stub down to the key/value surface the
// contract actually uses. Everything above this package is stateless logic;
// the ledger is the single shared mutable resource.
package ledger

import "time"

// State is one transaction's view of the ledger. Writes become visible
// atomically when the transaction commits; a failed transaction leaves no
// state behind. Per-key serialization of concurrent transactions is the
// platform's job (Fabric invalidates conflicting read-write sets).
type State interface {
	// Get returns the value at key, or nil when the key is unset.
	Get(key string) ([]byte, error)
	// Put stages a write at key.
	Put(key string, value []byte) error
	// Range iterates keys in [startKey, endKey) in lexical order.
	Range(startKey, endKey string) (Iterator, error)
	// SetEvent attaches a chaincode event to the transaction. Delivery is
	// post-commit and fire-and-forget.
	SetEvent(name string, payload []byte) error
	// TxID returns the transaction id.
	TxID() string
	// TxTime returns the client-asserted transaction timestamp.
	TxTime() (time.Time, error)
}

// Iterator walks a range scan result.
type Iterator interface {
	HasNext() bool
	Next() (key string, value []byte, err error)
	Close() error
}
