/*
SPDX-License-Identifier: Apache-2.0
*/

package ledger

import (
	"fmt"
	"time"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

// stubState adapts a Fabric chaincode stub to the State interface.
type stubState struct {
	stub shim.ChaincodeStubInterface
}

// NewStubState wraps the invoking transaction's stub.
func NewStubState(stub shim.ChaincodeStubInterface) State {
	return &stubState{stub: stub}
}

func (s *stubState) Get(key string) ([]byte, error) {
	return s.stub.GetState(key)
}

func (s *stubState) Put(key string, value []byte) error {
	return s.stub.PutState(key, value)
}

func (s *stubState) Range(startKey, endKey string) (Iterator, error) {
	it, err := s.stub.GetStateByRange(startKey, endKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get state by range [%s, %s): %w", startKey, endKey, err)
	}
	return &stubIterator{it: it}, nil
}

func (s *stubState) SetEvent(name string, payload []byte) error {
	return s.stub.SetEvent(name, payload)
}

func (s *stubState) TxID() string {
	return s.stub.GetTxID()
}

func (s *stubState) TxTime() (time.Time, error) {
	ts, err := s.stub.GetTxTimestamp()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get tx timestamp: %w", err)
	}
	return ts.AsTime(), nil
}

type stubIterator struct {
	it shim.StateQueryIteratorInterface
}

func (i *stubIterator) HasNext() bool {
	return i.it.HasNext()
}

func (i *stubIterator) Next() (string, []byte, error) {
	kv, err := i.it.Next()
	if err != nil {
		return "", nil, err
	}
	return kv.Key, kv.Value, nil
}

func (i *stubIterator) Close() error {
	return i.it.Close()
}
