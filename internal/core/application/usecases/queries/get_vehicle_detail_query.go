package queries

import (
	"errors"
	"time"

	"fleet/internal/pkg/guard"
)

var ErrGetVehicleDetailQueryIsNotConstructed = errors.New(
	"GetVehicleDetailQuery must be created via NewGetVehicleDetailQuery constructor",
)

// GetVehicleDetailQuery retrieves a vehicle together with its complete
// operational-state history, most recent interval first.
type GetVehicleDetailQuery struct {
	vehicleID int64

	guard guard.ConstructorGuard
}

// NewGetVehicleDetailQuery creates a query for one vehicle's full detail.
func NewGetVehicleDetailQuery(vehicleID int64) (GetVehicleDetailQuery, error) {
	if vehicleID <= 0 {
		return GetVehicleDetailQuery{}, ErrQueryVehicleIDIsInvalid
	}
	return GetVehicleDetailQuery{vehicleID: vehicleID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetVehicleDetailQueryIsNotConstructed if validation fails.
func (q GetVehicleDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleDetailQueryIsNotConstructed)
}

// VehicleID returns the requested vehicle's identity.
func (q GetVehicleDetailQuery) VehicleID() int64 { return q.vehicleID }

// HistoryEntryResponse represents one operational-state interval in the read
// model. EndedAt is nil for the open entry.
type HistoryEntryResponse struct {
	ID        int64
	State     string
	StartedAt time.Time
	EndedAt   *time.Time
	Reason    string
	Actor     string
}

// VehicleDetailResponse bundles a vehicle with its reverse-chronological
// state history.
type VehicleDetailResponse struct {
	Vehicle VehicleResponse
	History []HistoryEntryResponse
}
