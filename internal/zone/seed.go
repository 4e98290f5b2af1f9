/*
SPDX-License-Identifier: Apache-2.0
*/

package zone

import "github.com/dhanush-adi/TraceAyur/internal/model"

// SeedZones returns the harvest zones written at ledger initialization.
func SeedZones() []model.HarvestZone {
	return []model.HarvestZone{
		{
			ID:   "ZONE_001",
			Name: "Western Ghats Ashwagandha Zone",
			Boundaries: []model.GeoPoint{
				{Latitude: 15.2993, Longitude: 74.1240},
				{Latitude: 15.3593, Longitude: 74.1840},
				{Latitude: 15.2393, Longitude: 74.2440},
				{Latitude: 15.1793, Longitude: 74.1640},
			},
			ApprovedSpecies: []string{"Withania somnifera", "Asparagus racemosus"},
			SeasonalRestrictions: []model.SeasonalRestriction{
				{
					Species:   "Withania somnifera",
					StartDate: "2024-10-01",
					EndDate:   "2025-03-31",
				},
			},
			ConservationLimits: []model.ConservationLimit{
				{
					Species:             "Withania somnifera",
					MaxHarvestPerSeason: 1000,
					CurrentHarvested:    0,
				},
			},
			Active: true,
		},
	}
}

// Seed writes every seed zone. Existing zones are overwritten so ledger
// initialization can be re-run safely.
func (r *Registry) Seed() error {
	for _, zone := range SeedZones() {
		z := zone
		if err := r.Put(&z); err != nil {
			return err
		}
	}
	return nil
}
