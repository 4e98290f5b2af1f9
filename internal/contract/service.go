/*
SPDX-License-Identifier: Apache-2.0
*/

package contract

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dhanush-adi/TraceAyur/internal/events"
	"github.com/dhanush-adi/TraceAyur/internal/geo"
	"github.com/dhanush-adi/TraceAyur/internal/herberr"
	"github.com/dhanush-adi/TraceAyur/internal/ledger"
	"github.com/dhanush-adi/TraceAyur/internal/model"
	"github.com/dhanush-adi/TraceAyur/internal/provenance"
	"github.com/dhanush-adi/TraceAyur/internal/season"
	"github.com/dhanush-adi/TraceAyur/internal/store"
	"github.com/dhanush-adi/TraceAyur/internal/zone"
)

// Service runs the traceability operations for one transaction. It holds no
// state of its own; the ledger view is the only mutable resource.
type Service struct {
	st    ledger.State
	zones *zone.Registry
	store *store.Store
	prov  *provenance.Ledger
	bus   *events.Bus
	log   zerolog.Logger
}

// NewService wires the components onto one transaction's ledger view.
func NewService(st ledger.State, log zerolog.Logger) *Service {
	return &Service{
		st:    st,
		zones: zone.NewRegistry(st),
		store: store.New(st),
		prov:  provenance.New(st),
		bus:   events.NewBus(st),
		log:   log,
	}
}

// InitLedger seeds the approved harvest zones.
func (s *Service) InitLedger() error {
	return s.zones.Seed()
}

// CreateCollectionEvent admits a harvest submission through five sequential
// gates: zone exists and is active, species is approved, the point is
// inside the boundary, the season is open, and quota remains. The quota
// increment and the event write commit as one transaction; the first
// failing gate rejects the submission with its distinct error kind and
// nothing is written.
func (s *Service) CreateCollectionEvent(req CollectionEventRequest) (string, error) {
	if err := validateRequest("collection event", req); err != nil {
		return "", err
	}

	z, err := s.zones.Get(req.HarvestZoneID)
	if err != nil {
		if herberr.IsNotFound(err) {
			return "", herberr.Validation(herberr.GateZone, "harvest zone %s does not exist", req.HarvestZoneID)
		}
		return "", err
	}
	if !z.Active {
		return "", herberr.Validation(herberr.GateZone, "harvest zone %s is not active", req.HarvestZoneID)
	}
	if !slices.Contains(z.ApprovedSpecies, req.Species) {
		return "", herberr.Validation(herberr.GateSpecies, "species %s is not approved for harvest zone %s", req.Species, req.HarvestZoneID)
	}

	point := model.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude}
	if !geo.Contains(point, z.Boundaries) {
		return "", herberr.Validation(herberr.GateGeoFence, "collection point is outside approved harvest zone boundaries")
	}

	now, err := s.st.TxTime()
	if err != nil {
		return "", err
	}
	if !season.InSeason(req.Species, now, z.SeasonalRestrictions) {
		return "", herberr.Validation(herberr.GateSeason, "collection of %s is not allowed in current season", req.Species)
	}

	ok, err := s.zones.TryReserve(z, req.Species, req.Weight)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", herberr.Validation(herberr.GateQuota, "conservation limit exceeded for %s in zone %s", req.Species, req.HarvestZoneID)
	}

	eventID := store.NewID(store.PrefixCollection, s.st.TxID(), now)
	event := model.CollectionEvent{
		ID:            eventID,
		CollectorID:   req.CollectorID,
		Species:       req.Species,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Timestamp:     now.UTC().Format(time.RFC3339),
		HarvestZoneID: req.HarvestZoneID,
		InitialQualityMetrics: model.QualityMetrics{
			Moisture: req.Moisture,
			Weight:   req.Weight,
			Grade:    model.Grade(req.Grade),
		},
		SeasonalRestrictions: true,
		GeoFenceCompliant:    true,
		BlockNumber:          now.Unix(),
		TxID:                 s.st.TxID(),
	}
	if err := s.store.Put(herberr.KindCollectionEvent, eventID, event); err != nil {
		return "", err
	}

	if err := s.bus.Emit(events.CollectionEventCreated, events.CollectionPayload{
		EventID:       eventID,
		CollectorID:   req.CollectorID,
		Species:       req.Species,
		Weight:        req.Weight,
		HarvestZoneID: req.HarvestZoneID,
	}); err != nil {
		return "", err
	}

	s.log.Info().
		Str("eventId", eventID).
		Str("species", req.Species).
		Str("zone", req.HarvestZoneID).
		Float64("weight", req.Weight).
		Msg("collection event admitted")
	return eventID, nil
}

// AddQualityTest records a lab result against a batch reference. The batch
// id is free text and not checked against other records.
func (s *Service) AddQualityTest(req QualityTestRequest) (string, error) {
	if err := validateRequest("quality test", req); err != nil {
		return "", err
	}

	now, err := s.st.TxTime()
	if err != nil {
		return "", err
	}

	testID := store.NewID(store.PrefixQualityTest, s.st.TxID(), now)
	// Lower-is-better assumption; holds for contaminant-style tests.
	passed := req.Value <= req.Threshold

	test := model.QualityTest{
		ID:       testID,
		BatchID:  req.BatchID,
		TestType: model.TestType(req.TestType),
		TestDate: now.UTC().Format(time.RFC3339),
		LabID:    req.LabID,
		Results: model.TestResults{
			Value:     req.Value,
			Unit:      req.Unit,
			Passed:    passed,
			Threshold: req.Threshold,
		},
		Certificate: req.Certificate,
		ValidUntil:  req.ValidUntil,
		BlockNumber: now.Unix(),
		TxID:        s.st.TxID(),
	}
	if err := s.store.Put(herberr.KindQualityTest, testID, test); err != nil {
		return "", err
	}

	if err := s.bus.Emit(events.QualityTestAdded, events.QualityTestPayload{
		TestID:   testID,
		BatchID:  req.BatchID,
		TestType: req.TestType,
		Passed:   passed,
		LabID:    req.LabID,
	}); err != nil {
		return "", err
	}

	s.log.Info().
		Str("testId", testID).
		Str("batchId", req.BatchID).
		Bool("passed", passed).
		Msg("quality test recorded")
	return testID, nil
}

// AddProcessingStep records a transformation applied to a batch.
func (s *Service) AddProcessingStep(req ProcessingStepRequest) (string, error) {
	if err := validateRequest("processing step", req); err != nil {
		return "", err
	}

	now, err := s.st.TxTime()
	if err != nil {
		return "", err
	}

	stepID := store.NewID(store.PrefixProcessing, s.st.TxID(), now)
	step := model.ProcessingStep{
		ID:          stepID,
		BatchID:     req.BatchID,
		StepType:    model.StepType(req.StepType),
		ProcessedBy: req.ProcessedBy,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Conditions: model.StepConditions{
			Temperature: req.Temperature,
			Humidity:    req.Humidity,
			Duration:    req.Duration,
		},
		InputWeight:  req.InputWeight,
		OutputWeight: req.OutputWeight,
		Location: model.Location{
			Latitude:   req.Latitude,
			Longitude:  req.Longitude,
			FacilityID: req.FacilityID,
		},
		QualityChecks: []string{},
		BlockNumber:   now.Unix(),
		TxID:          s.st.TxID(),
	}
	if err := s.store.Put(herberr.KindProcessingStep, stepID, step); err != nil {
		return "", err
	}

	if err := s.bus.Emit(events.ProcessingStepAdded, events.ProcessingStepPayload{
		StepID:      stepID,
		BatchID:     req.BatchID,
		StepType:    req.StepType,
		ProcessedBy: req.ProcessedBy,
		FacilityID:  req.FacilityID,
	}); err != nil {
		return "", err
	}

	s.log.Info().
		Str("stepId", stepID).
		Str("batchId", req.BatchID).
		Str("stepType", req.StepType).
		Msg("processing step recorded")
	return stepID, nil
}

// CreateProvenance writes a new provenance record and its QR mapping in one
// transaction. Referenced ids are stored as given; existence is not
// cross-checked against the event store.
func (s *Service) CreateProvenance(req ProvenanceRequest) (string, error) {
	if err := validateRequest("provenance", req); err != nil {
		return "", err
	}

	now, err := s.st.TxTime()
	if err != nil {
		return "", err
	}

	provenanceID := store.NewID(store.PrefixProvenance, s.st.TxID(), now)
	record := model.Provenance{
		ID:               provenanceID,
		ProductBatchID:   req.ProductBatchID,
		CollectionEvents: strings.Split(req.CollectionEventIDs, ","),
		QualityTests:     strings.Split(req.QualityTestIDs, ","),
		ProcessingSteps:  strings.Split(req.ProcessingStepIDs, ","),
		CurrentLocation: model.Location{
			Latitude:   req.Latitude,
			Longitude:  req.Longitude,
			FacilityID: req.FacilityID,
		},
		Custody: model.Custody{
			CurrentOwner:    req.Owner,
			TransferHistory: []model.TransferRecord{},
		},
		SustainabilityMetrics: model.SustainabilityMetrics{
			CarbonFootprint:    req.CarbonFootprint,
			WaterUsage:         req.WaterUsage,
			FairTradeCompliant: req.FairTradeCompliant,
			ConservationScore:  req.ConservationScore,
		},
		QRCode: provenance.QRToken(provenanceID),
		FinalProduct: model.FinalProduct{
			ProductName:  req.ProductName,
			Manufacturer: req.Manufacturer,
			BatchNumber:  req.BatchNumber,
			ExpiryDate:   req.ExpiryDate,
			DosageForm:   req.DosageForm,
		},
		BlockNumber: now.Unix(),
		TxID:        s.st.TxID(),
	}
	if err := s.prov.Create(&record); err != nil {
		return "", err
	}

	if err := s.bus.Emit(events.ProvenanceCreated, events.ProvenancePayload{
		ProvenanceID:   provenanceID,
		ProductBatchID: req.ProductBatchID,
		QRCode:         record.QRCode,
		Manufacturer:   req.Manufacturer,
	}); err != nil {
		return "", err
	}

	s.log.Info().
		Str("provenanceId", provenanceID).
		Str("productBatchId", req.ProductBatchID).
		Msg("provenance record created")
	return provenanceID, nil
}

// TransferCustody appends a transfer record to the provenance custody chain
// and moves the ownership pointer and location.
func (s *Service) TransferCustody(req TransferRequest) error {
	if err := validateRequest("custody transfer", req); err != nil {
		return err
	}

	now, err := s.st.TxTime()
	if err != nil {
		return err
	}

	newLocation := model.Location{
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		FacilityID: req.FacilityID,
	}
	updated, err := s.prov.TransferCustody(req.ProvenanceID, req.NewOwner, newLocation, now, s.st.TxID())
	if err != nil {
		return err
	}

	last := updated.Custody.TransferHistory[len(updated.Custody.TransferHistory)-1]
	if err := s.bus.Emit(events.CustodyTransferred, events.CustodyPayload{
		ProvenanceID: req.ProvenanceID,
		From:         last.From,
		To:           req.NewOwner,
		FacilityID:   req.FacilityID,
	}); err != nil {
		return err
	}

	s.log.Info().
		Str("provenanceId", req.ProvenanceID).
		Str("from", last.From).
		Str("to", req.NewOwner).
		Msg("custody transferred")
	return nil
}

// CreateHarvestZone registers a new zone from its JSON document.
func (s *Service) CreateHarvestZone(zoneJSON string) error {
	var z model.HarvestZone
	if err := json.Unmarshal([]byte(zoneJSON), &z); err != nil {
		return herberr.Validation(herberr.GateInput, "invalid harvest zone document: %v", err)
	}
	if z.ID == "" || z.Name == "" {
		return herberr.Validation(herberr.GateInput, "harvest zone id and name are required")
	}
	if len(z.Boundaries) < 3 {
		return herberr.Validation(herberr.GateInput, "harvest zone boundary needs at least 3 vertices")
	}
	if err := s.zones.Create(&z); err != nil {
		return err
	}
	s.log.Info().Str("zone", z.ID).Msg("harvest zone created")
	return nil
}

// DeactivateHarvestZone marks a zone inactive. Subsequent admissions
// against it fail the zone gate.
func (s *Service) DeactivateHarvestZone(zoneID string) error {
	if err := s.zones.Deactivate(zoneID); err != nil {
		return err
	}
	s.log.Info().Str("zone", zoneID).Msg("harvest zone deactivated")
	return nil
}

// GetProvenanceByQR resolves a QR token to the provenance record JSON.
func (s *Service) GetProvenanceByQR(token string) (string, error) {
	data, err := s.prov.GetRawByQR(token)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetCollectionEvent returns the record JSON for eventID.
func (s *Service) GetCollectionEvent(eventID string) (string, error) {
	data, err := s.store.Get(herberr.KindCollectionEvent, eventID)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetQualityTest returns the record JSON for testID.
func (s *Service) GetQualityTest(testID string) (string, error) {
	data, err := s.store.Get(herberr.KindQualityTest, testID)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetProcessingStep returns the record JSON for stepID.
func (s *Service) GetProcessingStep(stepID string) (string, error) {
	data, err := s.store.Get(herberr.KindProcessingStep, stepID)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetHarvestZone returns the zone JSON for zoneID.
func (s *Service) GetHarvestZone(zoneID string) (string, error) {
	z, err := s.zones.Get(zoneID)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(z)
	if err != nil {
		return "", fmt.Errorf("failed to marshal harvest zone %s: %w", zoneID, err)
	}
	return string(data), nil
}

// GetAllCollectionEvents returns every collection event as a JSON array,
// ordered by id.
func (s *Service) GetAllCollectionEvents() (string, error) {
	results, err := s.store.ScanPrefix(store.PrefixCollection)
	if err != nil {
		return "", err
	}
	return marshalResults(results)
}

// QueryBySpecies returns every collection event for the species.
func (s *Service) QueryBySpecies(species string) (string, error) {
	results, err := s.store.QueryByField(store.PrefixCollection, "species", species)
	if err != nil {
		return "", err
	}
	return marshalResults(results)
}

// QueryByCollector returns every collection event logged by the collector.
func (s *Service) QueryByCollector(collectorID string) (string, error) {
	results, err := s.store.QueryByField(store.PrefixCollection, "collectorId", collectorID)
	if err != nil {
		return "", err
	}
	return marshalResults(results)
}

func marshalResults(results []json.RawMessage) (string, error) {
	data, err := json.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("failed to marshal query results: %w", err)
	}
	return string(data), nil
}
