package ports

import (
	"context"

	"fleet/internal/core/domain/model/vehicle"
)

// HistoryRepository defines the persistence contract for operational-state
// history entries. Entries are append-only: Add inserts a new open entry and
// Update is only ever used to set the end timestamp of the entry being closed.
type HistoryRepository interface {
	// Add persists a new history entry and assigns its generated identity.
	Add(ctx context.Context, entry *vehicle.HistoryEntry) error

	// Update persists the closing of an entry (its end timestamp).
	Update(ctx context.Context, entry *vehicle.HistoryEntry) error

	// GetOpenByVehicle retrieves the single entry with no end timestamp for
	// the vehicle, or a not-found error when the vehicle has no open entry.
	GetOpenByVehicle(ctx context.Context, vehicleID int64) (*vehicle.HistoryEntry, error)

	// ListByVehicle retrieves all entries for the vehicle ordered by start
	// timestamp descending (most recent first).
	ListByVehicle(ctx context.Context, vehicleID int64) ([]*vehicle.HistoryEntry, error)
}
