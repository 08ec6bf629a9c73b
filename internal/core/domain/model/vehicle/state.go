package vehicle

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// State represents the operational lifecycle state of a vehicle.
// It is a value object backed by the state machine in transitions.go,
// which defines which state changes are legal.
//
// Lifecycle:
//
//	Active ──> Maintenance / Repair / Reserved / Inactive
//	Maintenance ──> Active / Repair / Inactive
//	Repair ──> Active / Maintenance / Inactive
//	Reserved ──> Active / Inactive
//	Inactive ──> Active
//
// There is no terminal state: an Inactive vehicle can always be reactivated.
type State int

const (
	// StateUnknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	StateUnknown State = iota

	// StateActive is the initial state assigned when a vehicle is created.
	// Active vehicles are available for operational use.
	StateActive

	// StateMaintenance indicates the vehicle is undergoing scheduled maintenance.
	StateMaintenance

	// StateInactive indicates the vehicle has been withdrawn from operation.
	StateInactive

	// StateRepair indicates the vehicle is being repaired after a failure.
	StateRepair

	// StateReserved indicates the vehicle is held for a planned assignment.
	StateReserved
)

// getStateStrings returns a map of State values to their string representations.
// All states are included for string conversion.
func getStateStrings() map[State]string {
	return map[State]string{
		StateUnknown:     "Unknown",
		StateActive:      "Active",
		StateMaintenance: "Maintenance",
		StateInactive:    "Inactive",
		StateRepair:      "Repair",
		StateReserved:    "Reserved",
	}
}

// getValidStateStrings returns a map of only valid State values.
// Only valid states are included to support validation.
func getValidStateStrings() map[State]string {
	//nolint:exhaustive // StateUnknown is intentionally excluded as it's invalid
	return map[State]string{
		StateActive:      "Active",
		StateMaintenance: "Maintenance",
		StateInactive:    "Inactive",
		StateRepair:      "Repair",
		StateReserved:    "Reserved",
	}
}

// Validate checks if the State value is valid.
//
// Valid states are: Active, Maintenance, Inactive, Repair, Reserved.
// StateUnknown (0) and any other values are invalid.
//
// This method is used to ensure State values from external sources
// (e.g., database, API) are valid before use.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// StateFromString converts a string representation back to a State.
// The comparison is case-sensitive and only valid states resolve.
// Returns false when the string names no known state.
func StateFromString(value string) (State, bool) {
	for state, str := range getValidStateStrings() {
		if str == value {
			return state, true
		}
	}
	return StateUnknown, false
}

// String returns the human-readable name of the state.
// Returns "Unknown" for invalid state values. Implements fmt.Stringer
// and is safe to call on any State value, including invalid ones.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
