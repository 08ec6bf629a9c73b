// Package catalogrepo provides persistence for the reference data vehicles
// point at: vehicle types and models. These are seeded rows; the lifecycle
// core only checks that referenced ids exist.
package catalogrepo

// VehicleTypeDTO represents a row of the vehicle type reference table.
type VehicleTypeDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:100;uniqueIndex"`
}

// TableName specifies the database table name for vehicle types.
func (VehicleTypeDTO) TableName() string {
	return "vehicle_types"
}

// ModelDTO represents a row of the vehicle model reference table.
type ModelDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:100;uniqueIndex:idx_vehicle_models_make_name"`
	Make string `gorm:"size:100;uniqueIndex:idx_vehicle_models_make_name"`
}

// TableName specifies the database table name for models.
func (ModelDTO) TableName() string {
	return "vehicle_models"
}
