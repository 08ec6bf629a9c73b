package commands

import (
	"errors"
	"time"

	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/guard"
)

var (
	ErrCreateVehicleCommandIsNotConstructed = errors.New(
		"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
	)
	ErrCodeIsRequired  = errors.New("code is required")
	ErrPlateIsRequired = errors.New("plate is required")
)

// CreateVehicleCommand represents a request to register a new vehicle in the
// fleet. Field-level invariants (patterns, ranges, dates) are enforced by the
// vehicle aggregate at construction time; the command only guards against
// obviously empty input so handlers fail fast before opening a transaction.
//
// Example:
//
//	cmd, err := NewCreateVehicleCommand(
//	    "VH-001", 1, 2, "ABC-1234", vehicle.MachineryLight,
//	    2023, purchaseDate, 0, 80, "2.5L",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle data: %w", err)
//	}
//
//	handler := NewCreateVehicleCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	code            string
	typeID          int64
	modelID         int64
	plate           string
	machineryClass  vehicle.MachineryClass
	year            int
	purchaseDate    time.Time
	initialOdometer float64
	fuelCapacity    float64
	engineCapacity  string

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new fleet vehicle.
// Code and plate must be non-empty; the remaining invariants are validated by
// the aggregate when the handler constructs it.
func NewCreateVehicleCommand(
	code string,
	typeID int64,
	modelID int64,
	plate string,
	machineryClass vehicle.MachineryClass,
	year int,
	purchaseDate time.Time,
	initialOdometer float64,
	fuelCapacity float64,
	engineCapacity string,
) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
		typeID:          typeID,
		modelID:         modelID,
		machineryClass:  machineryClass,
		year:            year,
		purchaseDate:    purchaseDate,
		initialOdometer: initialOdometer,
		fuelCapacity:    fuelCapacity,
		engineCapacity:  engineCapacity,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCode(code),
		cmd.setPlate(plate),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateVehicleCommandIsNotConstructed if validation fails.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// Code returns the unique vehicle code.
func (c CreateVehicleCommand) Code() string { return c.code }

// TypeID returns the referenced vehicle type id.
func (c CreateVehicleCommand) TypeID() int64 { return c.typeID }

// ModelID returns the referenced model id.
func (c CreateVehicleCommand) ModelID() int64 { return c.modelID }

// Plate returns the unique license plate.
func (c CreateVehicleCommand) Plate() string { return c.plate }

// Machinery returns the machinery class.
func (c CreateVehicleCommand) Machinery() vehicle.MachineryClass { return c.machineryClass }

// Year returns the manufacture year.
func (c CreateVehicleCommand) Year() int { return c.year }

// PurchaseDate returns the purchase date.
func (c CreateVehicleCommand) PurchaseDate() time.Time { return c.purchaseDate }

// InitialOdometer returns the odometer reading at registration.
func (c CreateVehicleCommand) InitialOdometer() float64 { return c.initialOdometer }

// FuelCapacity returns the fuel tank capacity.
func (c CreateVehicleCommand) FuelCapacity() float64 { return c.fuelCapacity }

// EngineCapacity returns the engine capacity string.
func (c CreateVehicleCommand) EngineCapacity() string { return c.engineCapacity }

func (c *CreateVehicleCommand) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	c.code = code
	return nil
}

func (c *CreateVehicleCommand) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}
	c.plate = plate
	return nil
}
