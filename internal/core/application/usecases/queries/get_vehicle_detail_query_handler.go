package queries

import (
	"context"
	"database/sql"
	"errors"

	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetVehicleDetailQueryHandler retrieves a vehicle and its full state history.
// The history is ordered by start timestamp descending so the open entry comes
// first.
type GetVehicleDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetVehicleDetailQueryHandler creates a handler for detail retrieval.
// Requires a GORM database connection for query execution.
func NewGetVehicleDetailQueryHandler(db *gorm.DB) GetVehicleDetailQueryHandler {
	return GetVehicleDetailQueryHandler{db: db}
}

// Handle executes the query and returns the detail read model.
func (h GetVehicleDetailQueryHandler) Handle(
	ctx context.Context,
	query GetVehicleDetailQuery,
) (VehicleDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return VehicleDetailResponse{}, err
	}

	vehicleRow := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			type_id,
			model_id,
			plate,
			machinery_class,
			manufacture_year,
			purchase_date,
			initial_odometer,
			current_odometer,
			fuel_capacity,
			engine_capacity,
			state,
			last_maintenance_at,
			next_maintenance_at,
			created_at,
			updated_at
		FROM vehicles
		WHERE id = ?
	`, query.VehicleID()).Row()

	vehicleResponse, err := scanVehicleRow(vehicleRow)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return VehicleDetailResponse{}, errs.NewObjectNotFoundError("vehicle", query.VehicleID())
		}
		return VehicleDetailResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			state,
			started_at,
			ended_at,
			reason,
			actor
		FROM vehicle_state_history
		WHERE vehicle_id = ?
		ORDER BY started_at DESC
	`, query.VehicleID()).Rows()
	if err != nil {
		return VehicleDetailResponse{}, err
	}
	defer rows.Close()

	history := make([]HistoryEntryResponse, 0)
	for rows.Next() {
		var entry HistoryEntryResponse
		var state int
		var endedAt sql.NullTime

		err = rows.Scan(
			&entry.ID,
			&state,
			&entry.StartedAt,
			&endedAt,
			&entry.Reason,
			&entry.Actor,
		)
		if err != nil {
			return VehicleDetailResponse{}, err
		}

		entry.State = vehicle.State(state).String()
		if endedAt.Valid {
			t := endedAt.Time
			entry.EndedAt = &t
		}
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return VehicleDetailResponse{}, err
	}

	return VehicleDetailResponse{
		Vehicle: vehicleResponse,
		History: history,
	}, nil
}
