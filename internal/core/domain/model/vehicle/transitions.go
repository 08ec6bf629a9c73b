package vehicle

import "fleet/internal/pkg/errs"

// allowedTransitions is the single canonical transition table for the vehicle
// lifecycle. Both the aggregate and the application layer delegate here so the
// rules cannot drift apart.
var allowedTransitions = map[State][]State{
	StateActive:      {StateMaintenance, StateRepair, StateReserved, StateInactive},
	StateMaintenance: {StateActive, StateRepair, StateInactive},
	StateRepair:      {StateActive, StateMaintenance, StateInactive},
	StateReserved:    {StateActive, StateInactive},
	StateInactive:    {StateActive},
}

// CanTransition reports whether moving from the current state to the target
// state is legal. Self-transitions are always rejected.
func CanTransition(from, to State) bool {
	if from == to {
		return false
	}
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CanTransitionWithoutHistory reports whether a vehicle that has never had an
// operational state recorded may move to the target state. Only Active and
// Inactive are reachable from a blank history.
func CanTransitionWithoutHistory(to State) bool {
	return to == StateActive || to == StateInactive
}

// ValidateTransition checks the legality of a state change and returns a
// tagged error describing the rejected pair when it is illegal.
func ValidateTransition(from, to State) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if !CanTransition(from, to) {
		return errs.NewInvalidTransitionError(from.String(), to.String())
	}
	return nil
}
