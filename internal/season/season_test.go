/*
SPDX-License-Identifier: Apache-2.0
*/

package season

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dhanush-adi/TraceAyur/internal/model"
)

func restrictions() []model.SeasonalRestriction {
	return []model.SeasonalRestriction{
		{
			Species:   "Withania somnifera",
			StartDate: "2024-10-01",
			EndDate:   "2025-03-31",
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestInSeasonUnrestrictedSpecies(t *testing.T) {
	assert.True(t, InSeason("Asparagus racemosus", date(2020, time.January, 1), restrictions()))
	assert.True(t, InSeason("Asparagus racemosus", date(2030, time.July, 15), restrictions()))
	assert.True(t, InSeason("Withania somnifera", date(2020, time.January, 1), nil))
}

func TestInSeasonWindowInclusive(t *testing.T) {
	assert.True(t, InSeason("Withania somnifera", date(2024, time.October, 1), restrictions()))
	assert.True(t, InSeason("Withania somnifera", date(2025, time.March, 31), restrictions()))
	assert.True(t, InSeason("Withania somnifera", date(2024, time.December, 15), restrictions()))
}

func TestInSeasonOutsideWindow(t *testing.T) {
	assert.False(t, InSeason("Withania somnifera", date(2024, time.September, 30), restrictions()))
	assert.False(t, InSeason("Withania somnifera", date(2025, time.April, 1), restrictions()))
}

func TestInSeasonFirstMatchingRestrictionWins(t *testing.T) {
	doubled := append(restrictions(), model.SeasonalRestriction{
		Species:   "Withania somnifera",
		StartDate: "2020-01-01",
		EndDate:   "2030-12-31",
	})

	assert.False(t, InSeason("Withania somnifera", date(2024, time.May, 1), doubled))
}

func TestInSeasonMalformedWindowClosesSeason(t *testing.T) {
	broken := []model.SeasonalRestriction{
		{Species: "Withania somnifera", StartDate: "not-a-date", EndDate: "2025-03-31"},
	}

	assert.False(t, InSeason("Withania somnifera", date(2024, time.December, 1), broken))
}

func TestInSeasonRFC3339Bounds(t *testing.T) {
	windows := []model.SeasonalRestriction{
		{
			Species:   "Withania somnifera",
			StartDate: "2024-10-01T00:00:00Z",
			EndDate:   "2025-03-31T00:00:00Z",
		},
	}

	assert.True(t, InSeason("Withania somnifera", date(2024, time.November, 5), windows))
	assert.False(t, InSeason("Withania somnifera", date(2025, time.April, 1), windows))
}
