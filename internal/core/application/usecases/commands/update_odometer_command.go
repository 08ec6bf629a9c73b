package commands

import (
	"errors"

	"fleet/internal/pkg/guard"
)

var (
	ErrUpdateOdometerCommandIsNotConstructed = errors.New(
		"UpdateOdometerCommand must be created via NewUpdateOdometerCommand constructor",
	)
	ErrOdometerIsNegative = errors.New("odometer value must not be negative")
)

// UpdateOdometerCommand represents a request to record a new odometer reading
// for a vehicle. Monotonicity against the current reading is enforced by the
// aggregate inside the transaction.
type UpdateOdometerCommand struct { //nolint:recvcheck //using for validation
	vehicleID int64
	value     float64

	guard guard.ConstructorGuard
}

// NewUpdateOdometerCommand creates a command to record an odometer reading.
func NewUpdateOdometerCommand(vehicleID int64, value float64) (UpdateOdometerCommand, error) {
	cmd := UpdateOdometerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setValue(value),
	); err != nil {
		return UpdateOdometerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOdometerCommandIsNotConstructed if validation fails.
func (c UpdateOdometerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOdometerCommandIsNotConstructed)
}

// VehicleID returns the target vehicle's identity.
func (c UpdateOdometerCommand) VehicleID() int64 { return c.vehicleID }

// Value returns the new odometer reading.
func (c UpdateOdometerCommand) Value() float64 { return c.value }

func (c *UpdateOdometerCommand) setVehicleID(vehicleID int64) error {
	if vehicleID <= 0 {
		return ErrVehicleIDIsInvalid
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *UpdateOdometerCommand) setValue(value float64) error {
	if value < 0 {
		return ErrOdometerIsNegative
	}
	c.value = value
	return nil
}
