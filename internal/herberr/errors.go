/*
SPDX-License-Identifier: Apache-2.0
*/

// Package herberr defines the error taxonomy shared by every ledger
// operation: NotFound for read-by-id misses, ValidationFailed for admission
// gate rejections, AlreadyExists for key collisions. Callers distinguish
// outcomes by type and gate, never by message string.
package herberr

import (
	"errors"
	"fmt"
)

// Record kinds carried by NotFound/AlreadyExists errors.
const (
	KindCollectionEvent = "collection event"
	KindQualityTest     = "quality test"
	KindProcessingStep  = "processing step"
	KindProvenance      = "provenance record"
	KindHarvestZone     = "harvest zone"
	KindQRCode          = "QR code"
)

// Gate names the admission check a validation error originated from.
type Gate string

const (
	GateInput    Gate = "input"
	GateZone     Gate = "zone"
	GateSpecies  Gate = "species"
	GateGeoFence Gate = "geofence"
	GateSeason   Gate = "season"
	GateQuota    Gate = "quota"
)

// NotFoundError reports a read-by-id miss for a specific record kind.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// NotFound builds a NotFoundError for the given record kind and id.
func NotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var typed *NotFoundError
	return errors.As(err, &typed)
}

// ValidationError reports a rejected admission gate with its detail.
type ValidationError struct {
	Gate   Gate
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// Validation builds a ValidationError for the given gate.
func Validation(gate Gate, format string, args ...any) error {
	return &ValidationError{Gate: gate, Detail: fmt.Sprintf(format, args...)}
}

// GateOf extracts the failed gate from err, or "" when err is not a
// validation error.
func GateOf(err error) Gate {
	var typed *ValidationError
	if errors.As(err, &typed) {
		return typed.Gate
	}
	return ""
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var typed *ValidationError
	return errors.As(err, &typed)
}

// AlreadyExistsError reports a write against an occupied key. Generated ids
// make this near-unreachable; the check is defensive.
type AlreadyExistsError struct {
	Kind string
	ID   string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s %s already exists", e.Kind, e.ID)
}

// AlreadyExists builds an AlreadyExistsError for the given record kind and id.
func AlreadyExists(kind, id string) error {
	return &AlreadyExistsError{Kind: kind, ID: id}
}

// IsAlreadyExists reports whether err is (or wraps) an AlreadyExistsError.
func IsAlreadyExists(err error) bool {
	var typed *AlreadyExistsError
	return errors.As(err, &typed)
}
