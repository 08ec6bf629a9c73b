package commands

import (
	"errors"
	"time"

	"fleet/internal/pkg/guard"
)

var ErrUpdateVehicleCommandIsNotConstructed = errors.New(
	"UpdateVehicleCommand must be created via NewUpdateVehicleCommand constructor",
)

// UpdateVehicleCommand represents a general descriptive-field update of a
// vehicle. The update is independent of lifecycle state; code and creation
// attributes (initial odometer, machinery class) are immutable and cannot be
// changed here.
type UpdateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID      int64
	plate          string
	typeID         int64
	modelID        int64
	year           int
	purchaseDate   time.Time
	fuelCapacity   float64
	engineCapacity string

	guard guard.ConstructorGuard
}

// NewUpdateVehicleCommand creates a command to update a vehicle's descriptive
// attributes. Field invariants are enforced by the aggregate; the handler
// additionally re-checks plate uniqueness when the plate changes.
func NewUpdateVehicleCommand(
	vehicleID int64,
	plate string,
	typeID int64,
	modelID int64,
	year int,
	purchaseDate time.Time,
	fuelCapacity float64,
	engineCapacity string,
) (UpdateVehicleCommand, error) {
	cmd := UpdateVehicleCommand{
		typeID:         typeID,
		modelID:        modelID,
		year:           year,
		purchaseDate:   purchaseDate,
		fuelCapacity:   fuelCapacity,
		engineCapacity: engineCapacity,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setPlate(plate),
	); err != nil {
		return UpdateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateVehicleCommandIsNotConstructed if validation fails.
func (c UpdateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleCommandIsNotConstructed)
}

// VehicleID returns the target vehicle's identity.
func (c UpdateVehicleCommand) VehicleID() int64 { return c.vehicleID }

// Plate returns the (possibly unchanged) license plate.
func (c UpdateVehicleCommand) Plate() string { return c.plate }

// TypeID returns the referenced vehicle type id.
func (c UpdateVehicleCommand) TypeID() int64 { return c.typeID }

// ModelID returns the referenced model id.
func (c UpdateVehicleCommand) ModelID() int64 { return c.modelID }

// Year returns the manufacture year.
func (c UpdateVehicleCommand) Year() int { return c.year }

// PurchaseDate returns the purchase date.
func (c UpdateVehicleCommand) PurchaseDate() time.Time { return c.purchaseDate }

// FuelCapacity returns the fuel tank capacity.
func (c UpdateVehicleCommand) FuelCapacity() float64 { return c.fuelCapacity }

// EngineCapacity returns the engine capacity string.
func (c UpdateVehicleCommand) EngineCapacity() string { return c.engineCapacity }

func (c *UpdateVehicleCommand) setVehicleID(vehicleID int64) error {
	if vehicleID <= 0 {
		return ErrVehicleIDIsInvalid
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *UpdateVehicleCommand) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}
	c.plate = plate
	return nil
}
