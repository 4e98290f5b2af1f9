/*
SPDX-License-Identifier: Apache-2.0
*/

package model

// GeoPoint is a single latitude/longitude vertex.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is a geo point tied to a registered facility.
type Location struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	FacilityID string  `json:"facilityId"`
}

// QualityMetrics holds the measurements recorded at collection time.
type QualityMetrics struct {
	Moisture float64 `json:"moisture"`
	Weight   float64 `json:"weight"`
	Grade    Grade   `json:"grade"`
}

// CollectionEvent is a harvest record admitted into the ledger. The two
// compliance flags are audit artifacts: an event is only ever persisted
// after both checks already passed.
type CollectionEvent struct {
	ID                    string         `json:"id"`
	CollectorID           string         `json:"collectorId"`
	Species               string         `json:"species"`
	Latitude              float64        `json:"latitude"`
	Longitude             float64        `json:"longitude"`
	Timestamp             string         `json:"timestamp"`
	HarvestZoneID         string         `json:"harvestZoneId"`
	InitialQualityMetrics QualityMetrics `json:"initialQualityMetrics"`
	SeasonalRestrictions  bool           `json:"seasonalRestrictions"`
	GeoFenceCompliant     bool           `json:"geoFenceCompliant"`
	BlockNumber           int64          `json:"blockNumber"`
	TxID                  string         `json:"txId"`
}

// TestResults holds a single measured value against its threshold.
type TestResults struct {
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Passed    bool    `json:"passed"`
	Threshold float64 `json:"threshold"`
}

// QualityTest is a lab result attached to a batch reference.
type QualityTest struct {
	ID          string      `json:"id"`
	BatchID     string      `json:"batchId"`
	TestType    TestType    `json:"testType"`
	TestDate    string      `json:"testDate"`
	LabID       string      `json:"labId"`
	Results     TestResults `json:"results"`
	Certificate string      `json:"certificate"`
	ValidUntil  string      `json:"validUntil"`
	BlockNumber int64       `json:"blockNumber"`
	TxID        string      `json:"txId"`
}

// StepConditions records the environment a processing step ran under.
type StepConditions struct {
	Temperature float64  `json:"temperature"`
	Humidity    float64  `json:"humidity"`
	Pressure    *float64 `json:"pressure,omitempty"`
	Duration    float64  `json:"duration"`
}

// ProcessingStep is a transformation applied to a batch between
// collection and packaging.
type ProcessingStep struct {
	ID            string         `json:"id"`
	BatchID       string         `json:"batchId"`
	StepType      StepType       `json:"stepType"`
	ProcessedBy   string         `json:"processedBy"`
	StartTime     string         `json:"startTime"`
	EndTime       string         `json:"endTime"`
	Conditions    StepConditions `json:"conditions"`
	InputWeight   float64        `json:"inputWeight"`
	OutputWeight  float64        `json:"outputWeight"`
	Location      Location       `json:"location"`
	QualityChecks []string       `json:"qualityChecks"`
	BlockNumber   int64          `json:"blockNumber"`
	TxID          string         `json:"txId"`
}

// TransferRecord is one entry in a provenance custody chain.
type TransferRecord struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Timestamp string `json:"timestamp"`
	TxID      string `json:"txId"`
}

// Custody tracks the current owner plus the append-only transfer history.
// CurrentOwner always equals the To of the latest transfer record, or the
// creating owner while the history is empty.
type Custody struct {
	CurrentOwner    string           `json:"currentOwner"`
	TransferHistory []TransferRecord `json:"transferHistory"`
}

// SustainabilityMetrics summarizes the environmental profile of a batch.
type SustainabilityMetrics struct {
	CarbonFootprint    float64 `json:"carbonFootprint"`
	WaterUsage         float64 `json:"waterUsage"`
	FairTradeCompliant bool    `json:"fairTradeCompliant"`
	ConservationScore  float64 `json:"conservationScore"`
}

// FinalProduct describes the packaged good a provenance record resolves to.
type FinalProduct struct {
	ProductName  string `json:"productName"`
	Manufacturer string `json:"manufacturer"`
	BatchNumber  string `json:"batchNumber"`
	ExpiryDate   string `json:"expiryDate"`
	DosageForm   string `json:"dosageForm"`
}

// Provenance aggregates event/test/step references for a product batch and
// carries its custody chain. Referenced ids are opaque strings; they are not
// checked against the event store at write time.
type Provenance struct {
	ID                    string                `json:"id"`
	ProductBatchID        string                `json:"productBatchId"`
	CollectionEvents      []string              `json:"collectionEvents"`
	QualityTests          []string              `json:"qualityTests"`
	ProcessingSteps       []string              `json:"processingSteps"`
	CurrentLocation       Location              `json:"currentLocation"`
	Custody               Custody               `json:"custody"`
	SustainabilityMetrics SustainabilityMetrics `json:"sustainabilityMetrics"`
	QRCode                string                `json:"qrCode"`
	FinalProduct          FinalProduct          `json:"finalProduct"`
	BlockNumber           int64                 `json:"blockNumber"`
	TxID                  string                `json:"txId"`
}

// SeasonalRestriction limits harvesting of one species to a calendar window.
// Dates are ISO dates (2006-01-02), both ends inclusive.
type SeasonalRestriction struct {
	Species   string `json:"species"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ConservationLimit caps the cumulative harvested weight of one species for
// a season. CurrentHarvested never exceeds MaxHarvestPerSeason after a
// successful admission.
type ConservationLimit struct {
	Species             string  `json:"species"`
	MaxHarvestPerSeason float64 `json:"maxHarvestPerSeason"`
	CurrentHarvested    float64 `json:"currentHarvested"`
}

// HarvestZone is an approved collection region: polygon boundary, species
// whitelist, season windows and conservation caps. Zones are deactivated
// rather than deleted.
type HarvestZone struct {
	ID                   string                `json:"id"`
	Name                 string                `json:"name"`
	Boundaries           []GeoPoint            `json:"boundaries"`
	ApprovedSpecies      []string              `json:"approvedSpecies"`
	SeasonalRestrictions []SeasonalRestriction `json:"seasonalRestrictions"`
	ConservationLimits   []ConservationLimit   `json:"conservationLimits"`
	Active               bool                  `json:"active"`
}
