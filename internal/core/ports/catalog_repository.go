package ports

import "context"

// CatalogRepository provides existence checks for the reference data a vehicle
// points at. Types and models are seeded reference rows; the lifecycle core
// only needs to know the referenced ids are real.
type CatalogRepository interface {
	// VehicleTypeExists reports whether a vehicle type with the id exists.
	VehicleTypeExists(ctx context.Context, typeID int64) (bool, error)

	// ModelExists reports whether a model with the id exists.
	ModelExists(ctx context.Context, modelID int64) (bool, error)

	// AddVehicleType inserts a vehicle type by name and returns its id. Adding
	// an existing name returns the id of the existing row, so seeding is
	// idempotent.
	AddVehicleType(ctx context.Context, name string) (int64, error)

	// AddModel inserts a model by make and name and returns its id. Like
	// AddVehicleType it is idempotent on the (make, name) pair.
	AddModel(ctx context.Context, name string, make string) (int64, error)
}
