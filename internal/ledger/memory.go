/*
SPDX-License-Identifier: Apache-2.0
*/

package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is a chaincode event captured by the in-memory ledger.
type Event struct {
	Name    string
	Payload []byte
}

// Memory is an in-process ledger mirroring the transaction semantics the
// contract relies on: whole transactions run mutually excluded, writes are
// buffered and only applied when the transaction function returns nil, and
// emitted events are recorded for inspection. It backs the test suites and
// any off-peer embedding of the contract logic.
type Memory struct {
	mu     sync.Mutex
	data   map[string][]byte
	events []Event
	now    time.Time
}

// NewMemory returns an empty ledger whose transaction clock starts at the
// current wall time.
func NewMemory() *Memory {
	return &Memory{
		data: make(map[string][]byte),
		now:  time.Now(),
	}
}

// SetNow pins the timestamp reported to subsequent transactions.
func (m *Memory) SetNow(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Execute runs fn as one transaction. Writes and events staged by fn are
// committed only when fn returns nil; on error the ledger is untouched.
func (m *Memory) Execute(fn func(State) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{
		mem:    m,
		txID:   uuid.NewString(),
		writes: make(map[string][]byte),
	}
	if err := fn(tx); err != nil {
		return err
	}
	for key, value := range tx.writes {
		m.data[key] = value
	}
	m.events = append(m.events, tx.events...)
	return nil
}

// State returns the committed value at key, or nil when unset.
func (m *Memory) State(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return nil
	}
	return append([]byte(nil), value...)
}

// Events returns every event committed so far, in commit order.
func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event(nil), m.events...)
}

type memTx struct {
	mem    *Memory
	txID   string
	writes map[string][]byte
	events []Event
}

func (t *memTx) Get(key string) ([]byte, error) {
	if value, ok := t.writes[key]; ok {
		return append([]byte(nil), value...), nil
	}
	value, ok := t.mem.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (t *memTx) Put(key string, value []byte) error {
	t.writes[key] = append([]byte(nil), value...)
	return nil
}

func (t *memTx) Range(startKey, endKey string) (Iterator, error) {
	merged := make(map[string][]byte, len(t.mem.data)+len(t.writes))
	for key, value := range t.mem.data {
		merged[key] = value
	}
	for key, value := range t.writes {
		merged[key] = value
	}

	keys := make([]string, 0, len(merged))
	for key := range merged {
		if key >= startKey && key < endKey {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	values := make([][]byte, len(keys))
	for i, key := range keys {
		values[i] = append([]byte(nil), merged[key]...)
	}
	return &memIterator{keys: keys, values: values}, nil
}

func (t *memTx) SetEvent(name string, payload []byte) error {
	t.events = append(t.events, Event{Name: name, Payload: append([]byte(nil), payload...)})
	return nil
}

func (t *memTx) TxID() string {
	return t.txID
}

func (t *memTx) TxTime() (time.Time, error) {
	return t.mem.now, nil
}

type memIterator struct {
	keys   []string
	values [][]byte
	pos    int
}

func (i *memIterator) HasNext() bool {
	return i.pos < len(i.keys)
}

func (i *memIterator) Next() (string, []byte, error) {
	key := i.keys[i.pos]
	value := i.values[i.pos]
	i.pos++
	return key, value, nil
}

func (i *memIterator) Close() error {
	return nil
}
