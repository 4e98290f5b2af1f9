/*
SPDX-License-Identifier: Apache-2.0
*/

package contract

import (
	"github.com/go-playground/validator/v10"

	"github.com/dhanush-adi/TraceAyur/internal/herberr"
)

var validate = validator.New()

// CollectionEventRequest carries the arguments of a collection submission.
type CollectionEventRequest struct {
	CollectorID   string  `validate:"required"`
	Species       string  `validate:"required"`
	Latitude      float64 `validate:"gte=-90,lte=90"`
	Longitude     float64 `validate:"gte=-180,lte=180"`
	HarvestZoneID string  `validate:"required"`
	Moisture      float64 `validate:"gte=0,lte=100"`
	Weight        float64 `validate:"gt=0"`
	Grade         string  `validate:"oneof=A B C D"`
}

// QualityTestRequest carries the arguments of a quality test submission.
type QualityTestRequest struct {
	BatchID     string  `validate:"required"`
	TestType    string  `validate:"oneof=MOISTURE PESTICIDE DNA_BARCODE HEAVY_METALS MICROBIOLOGICAL"`
	LabID       string  `validate:"required"`
	Value       float64 `validate:"gte=0"`
	Unit        string  `validate:"required"`
	Threshold   float64 `validate:"gte=0"`
	Certificate string
	ValidUntil  string `validate:"required"`
}

// ProcessingStepRequest carries the arguments of a processing step
// submission.
type ProcessingStepRequest struct {
	BatchID      string `validate:"required"`
	StepType     string `validate:"oneof=DRYING GRINDING STORAGE PACKAGING TRANSPORT"`
	ProcessedBy  string `validate:"required"`
	StartTime    string `validate:"required"`
	EndTime      string `validate:"required"`
	Temperature  float64
	Humidity     float64 `validate:"gte=0,lte=100"`
	Duration     float64 `validate:"gte=0"`
	InputWeight  float64 `validate:"gt=0"`
	OutputWeight float64 `validate:"gt=0"`
	Latitude     float64 `validate:"gte=-90,lte=90"`
	Longitude    float64 `validate:"gte=-180,lte=180"`
	FacilityID   string  `validate:"required"`
}

// ProvenanceRequest carries the arguments of a provenance creation. The id
// lists are comma-separated and stored as opaque references.
type ProvenanceRequest struct {
	ProductBatchID     string `validate:"required"`
	CollectionEventIDs string
	QualityTestIDs     string
	ProcessingStepIDs  string
	Owner              string  `validate:"required"`
	Latitude           float64 `validate:"gte=-90,lte=90"`
	Longitude          float64 `validate:"gte=-180,lte=180"`
	FacilityID         string  `validate:"required"`
	CarbonFootprint    float64 `validate:"gte=0"`
	WaterUsage         float64 `validate:"gte=0"`
	FairTradeCompliant bool
	ConservationScore  float64 `validate:"gte=0,lte=100"`
	ProductName        string  `validate:"required"`
	Manufacturer       string  `validate:"required"`
	BatchNumber        string  `validate:"required"`
	ExpiryDate         string  `validate:"required"`
	DosageForm         string  `validate:"required"`
}

// TransferRequest carries the arguments of a custody transfer.
type TransferRequest struct {
	ProvenanceID string  `validate:"required"`
	NewOwner     string  `validate:"required"`
	Latitude     float64 `validate:"gte=-90,lte=90"`
	Longitude    float64 `validate:"gte=-180,lte=180"`
	FacilityID   string  `validate:"required"`
}

func validateRequest(what string, req any) error {
	if err := validate.Struct(req); err != nil {
		return herberr.Validation(herberr.GateInput, "invalid %s request: %v", what, err)
	}
	return nil
}
