package commands

import (
	"errors"

	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/guard"
)

var (
	ErrChangeVehicleStateCommandIsNotConstructed = errors.New(
		"ChangeVehicleStateCommand must be created via NewChangeVehicleStateCommand constructor",
	)
	ErrVehicleIDIsInvalid = errors.New("vehicle id must be greater than 0")
	ErrReasonIsRequired   = errors.New("reason is required")
	ErrActorIsRequired    = errors.New("actor is required")
)

// Canonical reasons supplied by the convenience constructors for operations
// whose reason is implied by the operation itself.
const (
	ActivationReason         = "vehicle activation"
	ReservationReleaseReason = "reservation release"
)

// ChangeVehicleStateCommand represents a request to move a vehicle to a new
// lifecycle state. Every transition records who requested it and why.
//
// Example:
//
//	cmd, err := NewChangeVehicleStateCommand(7, vehicle.StateMaintenance, "scheduled service", "op1")
//	if err != nil {
//	    return err
//	}
//	handler := NewChangeVehicleStateCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition failed: %w", err)
//	}
type ChangeVehicleStateCommand struct { //nolint:recvcheck //using for validation
	vehicleID   int64
	targetState vehicle.State
	reason      string
	actor       string

	guard guard.ConstructorGuard
}

// NewChangeVehicleStateCommand creates a command to transition a vehicle to
// the target state. Reason and actor are required; state legality is decided
// later, inside the transaction, against the freshly loaded vehicle.
func NewChangeVehicleStateCommand(
	vehicleID int64,
	targetState vehicle.State,
	reason string,
	actor string,
) (ChangeVehicleStateCommand, error) {
	cmd := ChangeVehicleStateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setTargetState(targetState),
		cmd.setReason(reason),
		cmd.setActor(actor),
	); err != nil {
		return ChangeVehicleStateCommand{}, err
	}

	return cmd, nil
}

// NewActivateVehicleCommand creates a transition to Active with the canonical
// activation reason.
func NewActivateVehicleCommand(vehicleID int64, actor string) (ChangeVehicleStateCommand, error) {
	return NewChangeVehicleStateCommand(vehicleID, vehicle.StateActive, ActivationReason, actor)
}

// NewSendToMaintenanceCommand creates a transition to Maintenance.
func NewSendToMaintenanceCommand(vehicleID int64, reason, actor string) (ChangeVehicleStateCommand, error) {
	return NewChangeVehicleStateCommand(vehicleID, vehicle.StateMaintenance, reason, actor)
}

// NewSendToRepairCommand creates a transition to Repair.
func NewSendToRepairCommand(vehicleID int64, reason, actor string) (ChangeVehicleStateCommand, error) {
	return NewChangeVehicleStateCommand(vehicleID, vehicle.StateRepair, reason, actor)
}

// NewDeactivateVehicleCommand creates a transition to Inactive.
func NewDeactivateVehicleCommand(vehicleID int64, reason, actor string) (ChangeVehicleStateCommand, error) {
	return NewChangeVehicleStateCommand(vehicleID, vehicle.StateInactive, reason, actor)
}

// NewReserveVehicleCommand creates a transition to Reserved.
func NewReserveVehicleCommand(vehicleID int64, reason, actor string) (ChangeVehicleStateCommand, error) {
	return NewChangeVehicleStateCommand(vehicleID, vehicle.StateReserved, reason, actor)
}

// Validate ensures the command was created through a constructor.
// Returns ErrChangeVehicleStateCommandIsNotConstructed if validation fails.
func (c ChangeVehicleStateCommand) Validate() error {
	return c.guard.Validate(ErrChangeVehicleStateCommandIsNotConstructed)
}

// VehicleID returns the target vehicle's identity.
func (c ChangeVehicleStateCommand) VehicleID() int64 { return c.vehicleID }

// TargetState returns the requested lifecycle state.
func (c ChangeVehicleStateCommand) TargetState() vehicle.State { return c.targetState }

// Reason returns why the transition was requested.
func (c ChangeVehicleStateCommand) Reason() string { return c.reason }

// Actor returns who requested the transition.
func (c ChangeVehicleStateCommand) Actor() string { return c.actor }

func (c *ChangeVehicleStateCommand) setVehicleID(vehicleID int64) error {
	if vehicleID <= 0 {
		return ErrVehicleIDIsInvalid
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *ChangeVehicleStateCommand) setTargetState(state vehicle.State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	c.targetState = state
	return nil
}

func (c *ChangeVehicleStateCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}
	c.reason = reason
	return nil
}

func (c *ChangeVehicleStateCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
