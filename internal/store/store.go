/*
SPDX-License-Identifier: Apache-2.0
*/

// Package store is the append-only event store for collection events,
// quality tests and processing steps, keyed by generated prefixed ids.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/dhanush-adi/TraceAyur/internal/herberr"
	"github.com/dhanush-adi/TraceAyur/internal/ledger"
)

// rangeEnd closes a prefix scan; '~' sorts after every character used in
// generated ids.
const rangeEnd = "~"

// Store persists immutable records for one transaction.
type Store struct {
	st ledger.State
}

// New binds a store to the transaction's ledger view.
func New(st ledger.State) *Store {
	return &Store{st: st}
}

// Put writes record under id. Ids are freshly generated by every write
// path, so a collision should be impossible; it is still checked and
// surfaces as AlreadyExists.
func (s *Store) Put(kind, id string, record any) error {
	existing, err := s.st.Get(id)
	if err != nil {
		return fmt.Errorf("failed to read %s %s: %w", kind, id, err)
	}
	if existing != nil {
		return herberr.AlreadyExists(kind, id)
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal %s %s: %w", kind, id, err)
	}
	return s.st.Put(id, data)
}

// Get returns the raw record bytes for id or a NotFound error.
func (s *Store) Get(kind, id string) ([]byte, error) {
	data, err := s.st.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s %s: %w", kind, id, err)
	}
	if data == nil {
		return nil, herberr.NotFound(kind, id)
	}
	return data, nil
}

// ScanPrefix returns every record whose id starts with prefix, ordered by
// id. Time-based ids make this insertion order.
func (s *Store) ScanPrefix(prefix string) ([]json.RawMessage, error) {
	return s.scan(prefix, nil)
}

// QueryByField returns every record under prefix whose named top-level
// field equals value. No pagination; every match is returned.
func (s *Store) QueryByField(prefix, field, value string) ([]json.RawMessage, error) {
	return s.scan(prefix, func(record map[string]any) bool {
		got, ok := record[field].(string)
		return ok && got == value
	})
}

func (s *Store) scan(prefix string, match func(map[string]any) bool) ([]json.RawMessage, error) {
	it, err := s.st.Range(prefix, prefix+rangeEnd)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	results := []json.RawMessage{}
	for it.HasNext() {
		key, value, err := it.Next()
		if err != nil {
			return nil, fmt.Errorf("failed during range iteration: %w", err)
		}
		if match != nil {
			var record map[string]any
			if err := json.Unmarshal(value, &record); err != nil {
				return nil, fmt.Errorf("failed to unmarshal record %s: %w", key, err)
			}
			if !match(record) {
				continue
			}
		}
		results = append(results, json.RawMessage(append([]byte(nil), value...)))
	}
	return results, nil
}
