/*
SPDX-License-Identifier: Apache-2.0
*/

// Package events emits chaincode events for external consumers. Delivery is
// post-commit and fire-and-forget; nothing in the core waits on a listener.
package events

import (
	"encoding/json"
	"fmt"

	"github.com/dhanush-adi/TraceAyur/internal/ledger"
)

// Domain event names.
const (
	CollectionEventCreated = "CollectionEventCreated"
	QualityTestAdded       = "QualityTestAdded"
	ProcessingStepAdded    = "ProcessingStepAdded"
	ProvenanceCreated      = "ProvenanceCreated"
	CustodyTransferred     = "CustodyTransferred"
)

// CollectionPayload summarizes an admitted collection event.
type CollectionPayload struct {
	EventID       string  `json:"eventId"`
	CollectorID   string  `json:"collectorId"`
	Species       string  `json:"species"`
	Weight        float64 `json:"weight"`
	HarvestZoneID string  `json:"harvestZoneId"`
}

// QualityTestPayload summarizes a recorded quality test.
type QualityTestPayload struct {
	TestID   string `json:"testId"`
	BatchID  string `json:"batchId"`
	TestType string `json:"testType"`
	Passed   bool   `json:"passed"`
	LabID    string `json:"labId"`
}

// ProcessingStepPayload summarizes a recorded processing step.
type ProcessingStepPayload struct {
	StepID      string `json:"stepId"`
	BatchID     string `json:"batchId"`
	StepType    string `json:"stepType"`
	ProcessedBy string `json:"processedBy"`
	FacilityID  string `json:"facilityId"`
}

// ProvenancePayload summarizes a created provenance record.
type ProvenancePayload struct {
	ProvenanceID   string `json:"provenanceId"`
	ProductBatchID string `json:"productBatchId"`
	QRCode         string `json:"qrCode"`
	Manufacturer   string `json:"manufacturer"`
}

// CustodyPayload summarizes a custody transfer.
type CustodyPayload struct {
	ProvenanceID string `json:"provenanceId"`
	From         string `json:"from"`
	To           string `json:"to"`
	FacilityID   string `json:"facilityId"`
}

// Bus attaches domain events to the current transaction.
type Bus struct {
	st ledger.State
}

// NewBus binds a bus to the transaction's ledger view.
func NewBus(st ledger.State) *Bus {
	return &Bus{st: st}
}

// Emit serializes payload and sets it as the transaction's chaincode event.
func (b *Bus) Emit(name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", name, err)
	}
	return b.st.SetEvent(name, data)
}
