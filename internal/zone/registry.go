/*
SPDX-License-Identifier: Apache-2.0
*/

// Package zone owns harvest zone definitions and the per-species
// conservation quota embedded in them.
package zone

import (
	"encoding/json"
	"fmt"

	"github.com/dhanush-adi/TraceAyur/internal/herberr"
	"github.com/dhanush-adi/TraceAyur/internal/ledger"
	"github.com/dhanush-adi/TraceAyur/internal/model"
)

// KeyPrefix namespaces zone records in the state database.
const KeyPrefix = "ZONE_"

// Registry reads and writes harvest zones for one transaction.
type Registry struct {
	st ledger.State
}

// NewRegistry binds a registry to the transaction's ledger view.
func NewRegistry(st ledger.State) *Registry {
	return &Registry{st: st}
}

// Get returns the zone for zoneID or a NotFound error.
func (r *Registry) Get(zoneID string) (*model.HarvestZone, error) {
	data, err := r.st.Get(KeyPrefix + zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to read harvest zone %s: %w", zoneID, err)
	}
	if data == nil {
		return nil, herberr.NotFound(herberr.KindHarvestZone, zoneID)
	}
	var zone model.HarvestZone
	if err := json.Unmarshal(data, &zone); err != nil {
		return nil, fmt.Errorf("failed to unmarshal harvest zone %s: %w", zoneID, err)
	}
	return &zone, nil
}

// Put writes the zone back under its key.
func (r *Registry) Put(zone *model.HarvestZone) error {
	data, err := json.Marshal(zone)
	if err != nil {
		return fmt.Errorf("failed to marshal harvest zone %s: %w", zone.ID, err)
	}
	return r.st.Put(KeyPrefix+zone.ID, data)
}

// Create adds a new zone and fails with AlreadyExists when the id is taken.
func (r *Registry) Create(zone *model.HarvestZone) error {
	existing, err := r.st.Get(KeyPrefix + zone.ID)
	if err != nil {
		return fmt.Errorf("failed to read harvest zone %s: %w", zone.ID, err)
	}
	if existing != nil {
		return herberr.AlreadyExists(herberr.KindHarvestZone, zone.ID)
	}
	return r.Put(zone)
}

// Deactivate marks the zone inactive so later admissions fail the zone
// gate. Zones are never deleted.
func (r *Registry) Deactivate(zoneID string) error {
	zone, err := r.Get(zoneID)
	if err != nil {
		return err
	}
	zone.Active = false
	return r.Put(zone)
}

// TryReserve admits weight against the zone's conservation limit for
// species and persists the updated running total. A species without a limit
// entry is uncapped and always admitted without touching state. The
// check-and-increment runs inside the admitting transaction; concurrent
// admissions against the same zone serialize on the zone key's version, so
// two submissions that would jointly exceed the cap can never both commit.
func (r *Registry) TryReserve(zone *model.HarvestZone, species string, weight float64) (bool, error) {
	for i := range zone.ConservationLimits {
		limit := &zone.ConservationLimits[i]
		if limit.Species != species {
			continue
		}
		if limit.CurrentHarvested+weight > limit.MaxHarvestPerSeason {
			return false, nil
		}
		limit.CurrentHarvested += weight
		if err := r.Put(zone); err != nil {
			return false, err
		}
		return true, nil
	}
	return true, nil
}
