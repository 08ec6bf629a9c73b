package commands

import (
	"errors"

	"fleet/internal/pkg/guard"
)

var ErrReleaseReservationCommandIsNotConstructed = errors.New(
	"ReleaseReservationCommand must be created via NewReleaseReservationCommand constructor",
)

// ReleaseReservationCommand represents a request to return a reserved vehicle
// to active service. Unlike a plain transition to Active, releasing requires
// the vehicle to actually be Reserved; releasing anything else is an invalid
// operation, not merely an invalid transition.
type ReleaseReservationCommand struct { //nolint:recvcheck //using for validation
	vehicleID int64
	actor     string

	guard guard.ConstructorGuard
}

// NewReleaseReservationCommand creates a command to release a reservation.
// The reason is canonical; only the acting identity is supplied by the caller.
func NewReleaseReservationCommand(vehicleID int64, actor string) (ReleaseReservationCommand, error) {
	cmd := ReleaseReservationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setActor(actor),
	); err != nil {
		return ReleaseReservationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseReservationCommandIsNotConstructed if validation fails.
func (c ReleaseReservationCommand) Validate() error {
	return c.guard.Validate(ErrReleaseReservationCommandIsNotConstructed)
}

// VehicleID returns the target vehicle's identity.
func (c ReleaseReservationCommand) VehicleID() int64 { return c.vehicleID }

// Actor returns who requested the release.
func (c ReleaseReservationCommand) Actor() string { return c.actor }

func (c *ReleaseReservationCommand) setVehicleID(vehicleID int64) error {
	if vehicleID <= 0 {
		return ErrVehicleIDIsInvalid
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *ReleaseReservationCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
