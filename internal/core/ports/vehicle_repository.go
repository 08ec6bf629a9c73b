package ports

import (
	"context"

	"fleet/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
// Implementations are the only components touching vehicle storage; all writes
// happen within the transaction owned by the enclosing unit of work.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate and assigns its generated identity.
	// The vehicle must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate using
	// optimistic concurrency: the write succeeds only if the stored version
	// matches the aggregate's version, and fails with a conflict error when a
	// concurrent commit got there first.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id int64) (*vehicle.Vehicle, error)

	// GetByCode retrieves a vehicle aggregate by its unique code.
	GetByCode(ctx context.Context, code string) (*vehicle.Vehicle, error)

	// ExistsWithCode reports whether any vehicle already uses the code.
	ExistsWithCode(ctx context.Context, code string) (bool, error)

	// ExistsWithPlate reports whether any vehicle other than excludeID already
	// uses the plate. Pass 0 to check across the whole fleet.
	ExistsWithPlate(ctx context.Context, plate string, excludeID int64) (bool, error)
}
