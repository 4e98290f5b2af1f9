/*
SPDX-License-Identifier: Apache-2.0
*/

// Package provenance owns provenance records and the QR token index. A
// record aggregates event/test/step references for a product batch and
// carries its custody chain; the QR index is a one-way mapping from an
// opaque token to the record id, created atomically with the record.
package provenance

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dhanush-adi/TraceAyur/internal/herberr"
	"github.com/dhanush-adi/TraceAyur/internal/ledger"
	"github.com/dhanush-adi/TraceAyur/internal/model"
)

// QRPrefix namespaces QR token keys in the state database.
const QRPrefix = "QR_"

// QRToken derives the token for a provenance id. The mapping is one-to-one
// and never reassigned.
func QRToken(provenanceID string) string {
	return QRPrefix + provenanceID
}

// Ledger reads and writes provenance records for one transaction.
type Ledger struct {
	st ledger.State
}

// New binds a provenance ledger to the transaction's ledger view.
func New(st ledger.State) *Ledger {
	return &Ledger{st: st}
}

// Create writes a fully-populated record together with its QR mapping.
// Both writes commit in the same transaction, so either both are visible or
// neither is. Referenced event/test/step ids are stored as given and not
// checked against the event store.
func (l *Ledger) Create(p *model.Provenance) error {
	existing, err := l.st.Get(p.ID)
	if err != nil {
		return fmt.Errorf("failed to read provenance record %s: %w", p.ID, err)
	}
	if existing != nil {
		return herberr.AlreadyExists(herberr.KindProvenance, p.ID)
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal provenance record %s: %w", p.ID, err)
	}
	if err := l.st.Put(p.ID, data); err != nil {
		return err
	}
	return l.st.Put(p.QRCode, []byte(p.ID))
}

// Get returns the record for provenanceID or a NotFound error.
func (l *Ledger) Get(provenanceID string) (*model.Provenance, error) {
	data, err := l.getRaw(provenanceID)
	if err != nil {
		return nil, err
	}
	var p model.Provenance
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal provenance record %s: %w", provenanceID, err)
	}
	return &p, nil
}

// GetRawByQR resolves a QR token to the raw record bytes. It fails NotFound
// when the token is unmapped or the mapped record is missing.
func (l *Ledger) GetRawByQR(token string) ([]byte, error) {
	idBytes, err := l.st.Get(token)
	if err != nil {
		return nil, fmt.Errorf("failed to read QR code %s: %w", token, err)
	}
	if idBytes == nil {
		return nil, herberr.NotFound(herberr.KindQRCode, token)
	}
	return l.getRaw(string(idBytes))
}

// TransferCustody appends a transfer record and moves the ownership pointer
// and location, then rewrites the record. The read-modify-write runs inside
// one transaction; racing transfers on the same id serialize on the record
// key's version. Returns the updated record.
func (l *Ledger) TransferCustody(provenanceID, newOwner string, newLocation model.Location, at time.Time, txID string) (*model.Provenance, error) {
	p, err := l.Get(provenanceID)
	if err != nil {
		return nil, err
	}

	p.Custody.TransferHistory = append(p.Custody.TransferHistory, model.TransferRecord{
		From:      p.Custody.CurrentOwner,
		To:        newOwner,
		Timestamp: at.UTC().Format(time.RFC3339),
		TxID:      txID,
	})
	p.Custody.CurrentOwner = newOwner
	p.CurrentLocation = newLocation

	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal provenance record %s: %w", provenanceID, err)
	}
	if err := l.st.Put(provenanceID, data); err != nil {
		return nil, err
	}
	return p, nil
}

func (l *Ledger) getRaw(provenanceID string) ([]byte, error) {
	data, err := l.st.Get(provenanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to read provenance record %s: %w", provenanceID, err)
	}
	if data == nil {
		return nil, herberr.NotFound(herberr.KindProvenance, provenanceID)
	}
	return data, nil
}
