/*
SPDX-License-Identifier: Apache-2.0
*/

// Package season decides whether harvesting a species is permitted at a
// point in time given a zone's seasonal restrictions.
package season

import (
	"time"

	"github.com/dhanush-adi/TraceAyur/internal/model"
)

// DateLayout is the ISO date format season window bounds are stored in.
const DateLayout = "2006-01-02"

// InSeason reports whether species may be harvested at asOf. A species with
// no restriction entry is unrestricted and always in season. With a
// restriction, the window is inclusive at both ends; bounds parse as
// midnight UTC of the stored date. The first matching restriction wins. A
// restriction whose bounds do not parse closes the season entirely.
func InSeason(species string, asOf time.Time, restrictions []model.SeasonalRestriction) bool {
	for _, r := range restrictions {
		if r.Species != species {
			continue
		}
		start, err := parseBound(r.StartDate)
		if err != nil {
			return false
		}
		end, err := parseBound(r.EndDate)
		if err != nil {
			return false
		}
		return !asOf.Before(start) && !asOf.After(end)
	}
	return true
}

func parseBound(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
