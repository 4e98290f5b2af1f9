/*
SPDX-License-Identifier: Apache-2.0
*/

package zone

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhanush-adi/TraceAyur/internal/herberr"
	"github.com/dhanush-adi/TraceAyur/internal/ledger"
	"github.com/dhanush-adi/TraceAyur/internal/model"
)

func testZone() model.HarvestZone {
	return model.HarvestZone{
		ID:   "ZONE_TEST",
		Name: "Test Zone",
		Boundaries: []model.GeoPoint{
			{Latitude: 0, Longitude: 0},
			{Latitude: 0, Longitude: 10},
			{Latitude: 10, Longitude: 10},
		},
		ApprovedSpecies: []string{"Withania somnifera"},
		ConservationLimits: []model.ConservationLimit{
			{Species: "Withania somnifera", MaxHarvestPerSeason: 1000, CurrentHarvested: 0},
		},
		Active: true,
	}
}

func seed(t *testing.T, mem *ledger.Memory, z model.HarvestZone) {
	t.Helper()
	require.NoError(t, mem.Execute(func(st ledger.State) error {
		return NewRegistry(st).Put(&z)
	}))
}

func TestGetMissingZone(t *testing.T) {
	mem := ledger.NewMemory()

	err := mem.Execute(func(st ledger.State) error {
		_, err := NewRegistry(st).Get("ZONE_NOPE")
		return err
	})
	require.Error(t, err)
	assert.True(t, herberr.IsNotFound(err))
}

func TestCreateRejectsDuplicate(t *testing.T) {
	mem := ledger.NewMemory()
	seed(t, mem, testZone())

	z := testZone()
	err := mem.Execute(func(st ledger.State) error {
		return NewRegistry(st).Create(&z)
	})
	require.Error(t, err)
	assert.True(t, herberr.IsAlreadyExists(err))
}

func TestDeactivate(t *testing.T) {
	mem := ledger.NewMemory()
	seed(t, mem, testZone())

	require.NoError(t, mem.Execute(func(st ledger.State) error {
		return NewRegistry(st).Deactivate("ZONE_TEST")
	}))

	require.NoError(t, mem.Execute(func(st ledger.State) error {
		z, err := NewRegistry(st).Get("ZONE_TEST")
		require.NoError(t, err)
		assert.False(t, z.Active)
		return nil
	}))
}

func TestTryReserveUncappedSpecies(t *testing.T) {
	mem := ledger.NewMemory()
	seed(t, mem, testZone())

	require.NoError(t, mem.Execute(func(st ledger.State) error {
		reg := NewRegistry(st)
		z, err := reg.Get("ZONE_TEST")
		require.NoError(t, err)

		ok, err := reg.TryReserve(z, "Asparagus racemosus", 5000)
		require.NoError(t, err)
		assert.True(t, ok)
		return nil
	}))
}

func TestTryReserveWithinCap(t *testing.T) {
	mem := ledger.NewMemory()
	seed(t, mem, testZone())

	require.NoError(t, mem.Execute(func(st ledger.State) error {
		reg := NewRegistry(st)
		z, err := reg.Get("ZONE_TEST")
		require.NoError(t, err)

		ok, err := reg.TryReserve(z, "Withania somnifera", 400)
		require.NoError(t, err)
		assert.True(t, ok)
		return nil
	}))

	require.NoError(t, mem.Execute(func(st ledger.State) error {
		z, err := NewRegistry(st).Get("ZONE_TEST")
		require.NoError(t, err)
		assert.Equal(t, 400.0, z.ConservationLimits[0].CurrentHarvested)
		return nil
	}))
}

func TestTryReserveExactFill(t *testing.T) {
	mem := ledger.NewMemory()
	z := testZone()
	z.ConservationLimits[0].CurrentHarvested = 990
	seed(t, mem, z)

	require.NoError(t, mem.Execute(func(st ledger.State) error {
		reg := NewRegistry(st)
		zone, err := reg.Get("ZONE_TEST")
		require.NoError(t, err)

		ok, err := reg.TryReserve(zone, "Withania somnifera", 10)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1000.0, zone.ConservationLimits[0].CurrentHarvested)
		return nil
	}))
}

func TestTryReserveOverCap(t *testing.T) {
	mem := ledger.NewMemory()
	z := testZone()
	z.ConservationLimits[0].CurrentHarvested = 995
	seed(t, mem, z)

	errQuota := errors.New("quota")
	err := mem.Execute(func(st ledger.State) error {
		reg := NewRegistry(st)
		zone, err := reg.Get("ZONE_TEST")
		require.NoError(t, err)

		ok, err := reg.TryReserve(zone, "Withania somnifera", 20)
		require.NoError(t, err)
		if !ok {
			return errQuota
		}
		return nil
	})
	require.ErrorIs(t, err, errQuota)

	require.NoError(t, mem.Execute(func(st ledger.State) error {
		zone, err := NewRegistry(st).Get("ZONE_TEST")
		require.NoError(t, err)
		assert.Equal(t, 995.0, zone.ConservationLimits[0].CurrentHarvested)
		return nil
	}))
}

// Concurrent reservations must never drive the running total past the cap:
// with a 1000 cap and 100 per reservation, exactly 10 of the attempts may
// commit regardless of interleaving.
func TestTryReserveConcurrent(t *testing.T) {
	mem := ledger.NewMemory()
	seed(t, mem, testZone())

	const attempts = 25
	errQuota := errors.New("quota")
	var admitted atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := mem.Execute(func(st ledger.State) error {
				reg := NewRegistry(st)
				z, err := reg.Get("ZONE_TEST")
				if err != nil {
					return err
				}
				ok, err := reg.TryReserve(z, "Withania somnifera", 100)
				if err != nil {
					return err
				}
				if !ok {
					return errQuota
				}
				return nil
			})
			if err == nil {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), admitted.Load())

	require.NoError(t, mem.Execute(func(st ledger.State) error {
		z, err := NewRegistry(st).Get("ZONE_TEST")
		require.NoError(t, err)
		limit := z.ConservationLimits[0]
		assert.Equal(t, 1000.0, limit.CurrentHarvested)
		assert.LessOrEqual(t, limit.CurrentHarvested, limit.MaxHarvestPerSeason)
		return nil
	}))
}

func TestSeedZones(t *testing.T) {
	mem := ledger.NewMemory()

	require.NoError(t, mem.Execute(func(st ledger.State) error {
		return NewRegistry(st).Seed()
	}))

	require.NoError(t, mem.Execute(func(st ledger.State) error {
		z, err := NewRegistry(st).Get("ZONE_001")
		require.NoError(t, err)
		assert.Equal(t, "Western Ghats Ashwagandha Zone", z.Name)
		assert.Len(t, z.Boundaries, 4)
		assert.Contains(t, z.ApprovedSpecies, "Withania somnifera")
		assert.True(t, z.Active)
		return nil
	}))
}
