/*
SPDX-License-Identifier: Apache-2.0
*/

// Package contract binds the herb traceability operations to the Fabric
// contract API. Each transaction builds a Service over the invoking stub;
// all state lives in the ledger.
package contract

import (
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/rs/zerolog"

	"github.com/dhanush-adi/TraceAyur/internal/ledger"
)

// HerbTraceContract exposes the traceability transactions and queries.
type HerbTraceContract struct {
	contractapi.Contract
	log zerolog.Logger
}

// New returns the contract with its logger wired.
func New(log zerolog.Logger) *HerbTraceContract {
	return &HerbTraceContract{log: log}
}

func (c *HerbTraceContract) service(ctx contractapi.TransactionContextInterface) *Service {
	return NewService(ledger.NewStubState(ctx.GetStub()), c.log)
}

// InitLedger seeds the approved harvest zones.
func (c *HerbTraceContract) InitLedger(ctx contractapi.TransactionContextInterface) error {
	return c.service(ctx).InitLedger()
}

// CreateCollectionEvent admits a harvest submission after geo-fence,
// seasonal and conservation checks, returning the new event id.
func (c *HerbTraceContract) CreateCollectionEvent(
	ctx contractapi.TransactionContextInterface,
	collectorID string,
	species string,
	latitude float64,
	longitude float64,
	harvestZoneID string,
	moisture float64,
	weight float64,
	grade string,
) (string, error) {
	return c.service(ctx).CreateCollectionEvent(CollectionEventRequest{
		CollectorID:   collectorID,
		Species:       species,
		Latitude:      latitude,
		Longitude:     longitude,
		HarvestZoneID: harvestZoneID,
		Moisture:      moisture,
		Weight:        weight,
		Grade:         grade,
	})
}

// AddQualityTest records a lab result, returning the new test id.
func (c *HerbTraceContract) AddQualityTest(
	ctx contractapi.TransactionContextInterface,
	batchID string,
	testType string,
	labID string,
	value float64,
	unit string,
	threshold float64,
	certificate string,
	validUntil string,
) (string, error) {
	return c.service(ctx).AddQualityTest(QualityTestRequest{
		BatchID:     batchID,
		TestType:    testType,
		LabID:       labID,
		Value:       value,
		Unit:        unit,
		Threshold:   threshold,
		Certificate: certificate,
		ValidUntil:  validUntil,
	})
}

// AddProcessingStep records a transformation step, returning the new step id.
func (c *HerbTraceContract) AddProcessingStep(
	ctx contractapi.TransactionContextInterface,
	batchID string,
	stepType string,
	processedBy string,
	startTime string,
	endTime string,
	temperature float64,
	humidity float64,
	duration float64,
	inputWeight float64,
	outputWeight float64,
	latitude float64,
	longitude float64,
	facilityID string,
) (string, error) {
	return c.service(ctx).AddProcessingStep(ProcessingStepRequest{
		BatchID:      batchID,
		StepType:     stepType,
		ProcessedBy:  processedBy,
		StartTime:    startTime,
		EndTime:      endTime,
		Temperature:  temperature,
		Humidity:     humidity,
		Duration:     duration,
		InputWeight:  inputWeight,
		OutputWeight: outputWeight,
		Latitude:     latitude,
		Longitude:    longitude,
		FacilityID:   facilityID,
	})
}

// CreateProvenance writes a provenance record plus its QR mapping and
// returns the new provenance id. The id lists are comma-separated.
func (c *HerbTraceContract) CreateProvenance(
	ctx contractapi.TransactionContextInterface,
	productBatchID string,
	collectionEventIDs string,
	qualityTestIDs string,
	processingStepIDs string,
	currentOwner string,
	currentLatitude float64,
	currentLongitude float64,
	currentFacilityID string,
	carbonFootprint float64,
	waterUsage float64,
	fairTradeCompliant bool,
	conservationScore float64,
	productName string,
	manufacturer string,
	batchNumber string,
	expiryDate string,
	dosageForm string,
) (string, error) {
	return c.service(ctx).CreateProvenance(ProvenanceRequest{
		ProductBatchID:     productBatchID,
		CollectionEventIDs: collectionEventIDs,
		QualityTestIDs:     qualityTestIDs,
		ProcessingStepIDs:  processingStepIDs,
		Owner:              currentOwner,
		Latitude:           currentLatitude,
		Longitude:          currentLongitude,
		FacilityID:         currentFacilityID,
		CarbonFootprint:    carbonFootprint,
		WaterUsage:         waterUsage,
		FairTradeCompliant: fairTradeCompliant,
		ConservationScore:  conservationScore,
		ProductName:        productName,
		Manufacturer:       manufacturer,
		BatchNumber:        batchNumber,
		ExpiryDate:         expiryDate,
		DosageForm:         dosageForm,
	})
}

// TransferCustody appends a transfer record and updates the ownership
// pointer and location of a provenance record.
func (c *HerbTraceContract) TransferCustody(
	ctx contractapi.TransactionContextInterface,
	provenanceID string,
	newOwner string,
	newLatitude float64,
	newLongitude float64,
	newFacilityID string,
) error {
	return c.service(ctx).TransferCustody(TransferRequest{
		ProvenanceID: provenanceID,
		NewOwner:     newOwner,
		Latitude:     newLatitude,
		Longitude:    newLongitude,
		FacilityID:   newFacilityID,
	})
}

// CreateHarvestZone registers a new harvest zone from its JSON document.
func (c *HerbTraceContract) CreateHarvestZone(ctx contractapi.TransactionContextInterface, zoneJSON string) error {
	return c.service(ctx).CreateHarvestZone(zoneJSON)
}

// DeactivateHarvestZone marks a harvest zone inactive.
func (c *HerbTraceContract) DeactivateHarvestZone(ctx contractapi.TransactionContextInterface, zoneID string) error {
	return c.service(ctx).DeactivateHarvestZone(zoneID)
}

// GetProvenanceByQR resolves a QR token to its provenance record JSON.
func (c *HerbTraceContract) GetProvenanceByQR(ctx contractapi.TransactionContextInterface, qrCode string) (string, error) {
	return c.service(ctx).GetProvenanceByQR(qrCode)
}

// GetCollectionEvent returns a collection event by id.
func (c *HerbTraceContract) GetCollectionEvent(ctx contractapi.TransactionContextInterface, eventID string) (string, error) {
	return c.service(ctx).GetCollectionEvent(eventID)
}

// GetQualityTest returns a quality test by id.
func (c *HerbTraceContract) GetQualityTest(ctx contractapi.TransactionContextInterface, testID string) (string, error) {
	return c.service(ctx).GetQualityTest(testID)
}

// GetProcessingStep returns a processing step by id.
func (c *HerbTraceContract) GetProcessingStep(ctx contractapi.TransactionContextInterface, stepID string) (string, error) {
	return c.service(ctx).GetProcessingStep(stepID)
}

// GetAllCollectionEvents returns every collection event as a JSON array.
func (c *HerbTraceContract) GetAllCollectionEvents(ctx contractapi.TransactionContextInterface) (string, error) {
	return c.service(ctx).GetAllCollectionEvents()
}

// GetHarvestZone returns a harvest zone by id.
func (c *HerbTraceContract) GetHarvestZone(ctx contractapi.TransactionContextInterface, zoneID string) (string, error) {
	return c.service(ctx).GetHarvestZone(zoneID)
}

// QueryBySpecies returns every collection event for a species.
func (c *HerbTraceContract) QueryBySpecies(ctx contractapi.TransactionContextInterface, species string) (string, error) {
	return c.service(ctx).QueryBySpecies(species)
}

// QueryByCollector returns every collection event logged by a collector.
func (c *HerbTraceContract) QueryByCollector(ctx contractapi.TransactionContextInterface, collectorID string) (string, error) {
	return c.service(ctx).QueryByCollector(collectorID)
}
