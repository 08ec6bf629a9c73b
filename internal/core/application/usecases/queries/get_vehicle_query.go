// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fleet/internal/pkg/guard"
)

var (
	ErrGetVehicleQueryIsNotConstructed = errors.New(
		"GetVehicleQuery must be created via NewGetVehicleQuery constructor",
	)
	ErrQueryVehicleIDIsInvalid = errors.New("vehicle id must be greater than 0")
)

// GetVehicleQuery retrieves a single vehicle projection by id.
//
// Example:
//
//	query, _ := NewGetVehicleQuery(7)
//	handler := NewGetVehicleQueryHandler(db)
//
//	v, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve vehicle: %w", err)
//	}
//	fmt.Printf("Vehicle %s is %s\n", v.Code, v.State)
type GetVehicleQuery struct {
	vehicleID int64

	guard guard.ConstructorGuard
}

// NewGetVehicleQuery creates a query for one vehicle.
func NewGetVehicleQuery(vehicleID int64) (GetVehicleQuery, error) {
	if vehicleID <= 0 {
		return GetVehicleQuery{}, ErrQueryVehicleIDIsInvalid
	}
	return GetVehicleQuery{vehicleID: vehicleID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetVehicleQueryIsNotConstructed if validation fails.
func (q GetVehicleQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleQueryIsNotConstructed)
}

// VehicleID returns the requested vehicle's identity.
func (q GetVehicleQuery) VehicleID() int64 { return q.vehicleID }

// VehicleResponse represents vehicle information in the read model.
// Contains the full vehicle row shaped for display and decision-making.
type VehicleResponse struct {
	ID              int64
	Code            string
	TypeID          int64
	ModelID         int64
	Plate           string
	MachineryClass  string
	Year            int
	PurchaseDate    time.Time
	InitialOdometer float64
	CurrentOdometer float64
	FuelCapacity    float64
	EngineCapacity  string
	State           string
	LastMaintenance *time.Time
	NextMaintenance *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
