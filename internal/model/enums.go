/*
SPDX-License-Identifier: Apache-2.0
*/

package model

import "fmt"

// TestType identifies the kind of quality test performed on a batch.
type TestType string

const (
	TestTypeMoisture        TestType = "MOISTURE"
	TestTypePesticide       TestType = "PESTICIDE"
	TestTypeDNABarcode      TestType = "DNA_BARCODE"
	TestTypeHeavyMetals     TestType = "HEAVY_METALS"
	TestTypeMicrobiological TestType = "MICROBIOLOGICAL"
)

var validTestTypes = []TestType{
	TestTypeMoisture,
	TestTypePesticide,
	TestTypeDNABarcode,
	TestTypeHeavyMetals,
	TestTypeMicrobiological,
}

// String returns the literal string for the test type.
func (t TestType) String() string {
	return string(t)
}

// IsValid reports whether the test type is known.
func (t TestType) IsValid() bool {
	for _, candidate := range validTestTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTestType converts raw input into a TestType.
func ParseTestType(value string) (TestType, error) {
	for _, candidate := range validTestTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("unknown test type %q", value)
}

// StepType identifies the kind of processing step applied to a batch.
type StepType string

const (
	StepTypeDrying    StepType = "DRYING"
	StepTypeGrinding  StepType = "GRINDING"
	StepTypeStorage   StepType = "STORAGE"
	StepTypePackaging StepType = "PACKAGING"
	StepTypeTransport StepType = "TRANSPORT"
)

var validStepTypes = []StepType{
	StepTypeDrying,
	StepTypeGrinding,
	StepTypeStorage,
	StepTypePackaging,
	StepTypeTransport,
}

// String returns the literal string for the step type.
func (s StepType) String() string {
	return string(s)
}

// IsValid reports whether the step type is known.
func (s StepType) IsValid() bool {
	for _, candidate := range validStepTypes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStepType converts raw input into a StepType.
func ParseStepType(value string) (StepType, error) {
	for _, candidate := range validStepTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("unknown step type %q", value)
}

// Grade is the initial visual quality grade assigned at collection.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// IsValid reports whether the grade is within the A-D scale.
func (g Grade) IsValid() bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeD:
		return true
	}
	return false
}
