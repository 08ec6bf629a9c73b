// Package vehicle provides domain entities and business logic for the fleet
// vehicle lifecycle. It implements the Vehicle aggregate root together with its
// operational-state history and the canonical state-transition table.
//
// The package includes:
//   - Vehicle: The aggregate root that owns identity, attributes, odometer and
//     maintenance bookkeeping, and the current lifecycle state
//   - HistoryEntry: An append-only record of one interval spent in a state
//   - State: The lifecycle state enum (Active, Maintenance, Inactive, Repair, Reserved)
//   - MachineryClass: The Light/Heavy classification orthogonal to the lifecycle
//
// Key business rules:
//   - A vehicle is created Active with odometer readings equal
//   - Odometer readings are monotonically non-decreasing
//   - State changes follow one canonical transition table; self-transitions are rejected
//   - A vehicle without recorded history may only become Active or Inactive
//   - Exactly one history entry per vehicle is open at any time, and its state
//     mirrors the vehicle's current state
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package vehicle
