// Package vehiclerepo provides data transfer objects and mapping functions for
// vehicle persistence. This package implements the repository pattern for the
// vehicle domain aggregate, handling the conversion between domain entities
// and database representations.
package vehiclerepo

import (
	"time"

	"fleet/internal/core/domain/model/vehicle"
)

// VehicleDTO represents the database structure for persisting vehicle
// aggregates. Code and plate carry unique indexes so the database enforces
// fleet-wide uniqueness even under concurrent registration.
type VehicleDTO struct {
	ID              int64      `gorm:"primaryKey;autoIncrement"`
	Code            string     `gorm:"size:20;uniqueIndex"`
	TypeID          int64      `gorm:"index"`
	ModelID         int64      `gorm:"index"`
	Plate           string     `gorm:"size:10;uniqueIndex"`
	MachineryClass  int
	ManufactureYear int
	PurchaseDate    time.Time
	InitialOdometer float64
	CurrentOdometer float64
	FuelCapacity    float64
	EngineCapacity  string     `gorm:"size:20"`
	State           int        `gorm:"index"`
	LastMaintenance *time.Time `gorm:"column:last_maintenance_at"`
	NextMaintenance *time.Time `gorm:"column:next_maintenance_at;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int
}

// TableName specifies the database table name for vehicle entities.
// Overrides GORM's default naming convention to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database
// representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:              aggregate.ID(),
		Code:            aggregate.Code(),
		TypeID:          aggregate.TypeID(),
		ModelID:         aggregate.ModelID(),
		Plate:           aggregate.Plate(),
		MachineryClass:  int(aggregate.Machinery()),
		ManufactureYear: aggregate.Year(),
		PurchaseDate:    aggregate.PurchaseDate(),
		InitialOdometer: aggregate.InitialOdometer(),
		CurrentOdometer: aggregate.CurrentOdometer(),
		FuelCapacity:    aggregate.FuelCapacity(),
		EngineCapacity:  aggregate.EngineCapacity(),
		State:           int(aggregate.State()),
		LastMaintenance: aggregate.LastMaintenance(),
		NextMaintenance: aggregate.NextMaintenance(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		Version:         aggregate.Version(),
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate.
// Reconstructs the complete aggregate using RestoreVehicle.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	return vehicle.RestoreVehicle(
		dto.ID,
		dto.Code,
		dto.TypeID,
		dto.ModelID,
		dto.Plate,
		vehicle.MachineryClass(dto.MachineryClass),
		dto.ManufactureYear,
		dto.PurchaseDate,
		dto.InitialOdometer,
		dto.CurrentOdometer,
		dto.FuelCapacity,
		dto.EngineCapacity,
		vehicle.State(dto.State),
		dto.LastMaintenance,
		dto.NextMaintenance,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
