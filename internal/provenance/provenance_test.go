/*
SPDX-License-Identifier: Apache-2.0
*/

package provenance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhanush-adi/TraceAyur/internal/herberr"
	"github.com/dhanush-adi/TraceAyur/internal/ledger"
	"github.com/dhanush-adi/TraceAyur/internal/model"
)

func record(id string) model.Provenance {
	return model.Provenance{
		ID:               id,
		ProductBatchID:   "BATCH_001",
		CollectionEvents: []string{"COL_1_a"},
		QualityTests:     []string{"QT_1_a"},
		ProcessingSteps:  []string{"PS_1_a"},
		CurrentLocation: model.Location{
			Latitude:   15.27,
			Longitude:  74.18,
			FacilityID: "FAC_001",
		},
		Custody: model.Custody{
			CurrentOwner:    "MANUFACTURER_001",
			TransferHistory: []model.TransferRecord{},
		},
		QRCode: QRToken(id),
	}
}

func create(t *testing.T, mem *ledger.Memory, id string) {
	t.Helper()
	p := record(id)
	require.NoError(t, mem.Execute(func(st ledger.State) error {
		return New(st).Create(&p)
	}))
}

func TestCreateWritesRecordAndQRMapping(t *testing.T) {
	mem := ledger.NewMemory()
	create(t, mem, "PROV_1_a")

	assert.NotNil(t, mem.State("PROV_1_a"))
	assert.Equal(t, []byte("PROV_1_a"), mem.State("QR_PROV_1_a"))
}

func TestCreateRejectsDuplicate(t *testing.T) {
	mem := ledger.NewMemory()
	create(t, mem, "PROV_1_a")

	p := record("PROV_1_a")
	err := mem.Execute(func(st ledger.State) error {
		return New(st).Create(&p)
	})
	require.Error(t, err)
	assert.True(t, herberr.IsAlreadyExists(err))
}

func TestGetByQRRoundTrip(t *testing.T) {
	mem := ledger.NewMemory()
	create(t, mem, "PROV_1_a")

	require.NoError(t, mem.Execute(func(st ledger.State) error {
		l := New(st)

		data, err := l.GetRawByQR(QRToken("PROV_1_a"))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"id":"PROV_1_a"`)

		p, err := l.Get("PROV_1_a")
		require.NoError(t, err)
		assert.Equal(t, "PROV_1_a", p.ID)
		assert.Equal(t, "MANUFACTURER_001", p.Custody.CurrentOwner)
		return nil
	}))
}

func TestGetByQRUnmappedToken(t *testing.T) {
	mem := ledger.NewMemory()

	err := mem.Execute(func(st ledger.State) error {
		_, err := New(st).GetRawByQR("QR_PROV_nope")
		return err
	})
	require.Error(t, err)
	assert.True(t, herberr.IsNotFound(err))
}

func TestTransferCustodyChain(t *testing.T) {
	mem := ledger.NewMemory()
	create(t, mem, "PROV_1_a")

	owners := []string{"DISTRIBUTOR_001", "VENDOR_001", "WAREHOUSE_001"}
	at := time.Date(2025, time.January, 10, 8, 0, 0, 0, time.UTC)
	for i, owner := range owners {
		loc := model.Location{Latitude: float64(i), Longitude: float64(i), FacilityID: "FAC_00" + owner[:1]}
		require.NoError(t, mem.Execute(func(st ledger.State) error {
			_, err := New(st).TransferCustody("PROV_1_a", owner, loc, at.AddDate(0, 0, i), "tx-"+owner)
			return err
		}))
	}

	require.NoError(t, mem.Execute(func(st ledger.State) error {
		p, err := New(st).Get("PROV_1_a")
		require.NoError(t, err)

		require.Len(t, p.Custody.TransferHistory, len(owners))
		assert.Equal(t, "MANUFACTURER_001", p.Custody.TransferHistory[0].From)
		for i, transfer := range p.Custody.TransferHistory {
			assert.Equal(t, owners[i], transfer.To)
			if i > 0 {
				assert.Equal(t, p.Custody.TransferHistory[i-1].To, transfer.From)
			}
		}
		assert.Equal(t, owners[len(owners)-1], p.Custody.CurrentOwner)
		assert.Equal(t, owners[len(owners)-1], p.Custody.TransferHistory[len(owners)-1].To)
		return nil
	}))
}

func TestTransferCustodyMissingRecord(t *testing.T) {
	mem := ledger.NewMemory()

	err := mem.Execute(func(st ledger.State) error {
		_, err := New(st).TransferCustody("PROV_nope", "VENDOR_001", model.Location{}, time.Now(), "tx-1")
		return err
	})
	require.Error(t, err)
	assert.True(t, herberr.IsNotFound(err))
	assert.Nil(t, mem.State("PROV_nope"))
	assert.Empty(t, mem.Events())
}
