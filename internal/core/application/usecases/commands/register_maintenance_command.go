package commands

import (
	"errors"
	"time"

	"fleet/internal/pkg/guard"
)

var ErrRegisterMaintenanceCommandIsNotConstructed = errors.New(
	"RegisterMaintenanceCommand must be created via NewRegisterMaintenanceCommand constructor",
)

// RegisterMaintenanceCommand represents a request to record that maintenance
// was performed on a vehicle. The next-maintenance date is optional; when nil
// the aggregate schedules it three months out.
type RegisterMaintenanceCommand struct { //nolint:recvcheck //using for validation
	vehicleID       int64
	nextMaintenance *time.Time

	guard guard.ConstructorGuard
}

// NewRegisterMaintenanceCommand creates a command to register maintenance.
func NewRegisterMaintenanceCommand(vehicleID int64, nextMaintenance *time.Time) (RegisterMaintenanceCommand, error) {
	cmd := RegisterMaintenanceCommand{
		nextMaintenance: nextMaintenance,
		guard:           guard.NewConstructorGuard(),
	}

	if err := cmd.setVehicleID(vehicleID); err != nil {
		return RegisterMaintenanceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterMaintenanceCommandIsNotConstructed if validation fails.
func (c RegisterMaintenanceCommand) Validate() error {
	return c.guard.Validate(ErrRegisterMaintenanceCommandIsNotConstructed)
}

// VehicleID returns the target vehicle's identity.
func (c RegisterMaintenanceCommand) VehicleID() int64 { return c.vehicleID }

// NextMaintenance returns the requested next-maintenance date, if any.
func (c RegisterMaintenanceCommand) NextMaintenance() *time.Time { return c.nextMaintenance }

func (c *RegisterMaintenanceCommand) setVehicleID(vehicleID int64) error {
	if vehicleID <= 0 {
		return ErrVehicleIDIsInvalid
	}
	c.vehicleID = vehicleID
	return nil
}
