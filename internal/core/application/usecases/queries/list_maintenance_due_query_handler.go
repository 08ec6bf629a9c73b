package queries

import (
	"context"

	"fleet/internal/core/domain/model/vehicle"

	"gorm.io/gorm"
)

const hoursPerDay = 24

// ListMaintenanceDueQueryHandler returns vehicles whose scheduled maintenance
// date is on or before the reference time. Inactive vehicles are excluded:
// they are out of operation and not serviced until reactivated.
type ListMaintenanceDueQueryHandler struct {
	db *gorm.DB
}

// NewListMaintenanceDueQueryHandler creates a handler for the maintenance
// due listing. Requires a GORM database connection for query execution.
func NewListMaintenanceDueQueryHandler(db *gorm.DB) ListMaintenanceDueQueryHandler {
	return ListMaintenanceDueQueryHandler{db: db}
}

// Handle executes the query, most overdue vehicles first.
func (h ListMaintenanceDueQueryHandler) Handle(
	ctx context.Context,
	query ListMaintenanceDueQuery,
) ([]MaintenanceDueResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			plate,
			state,
			next_maintenance_at
		FROM vehicles
		WHERE next_maintenance_at IS NOT NULL
		  AND next_maintenance_at <= ?
		  AND state <> ?
		ORDER BY next_maintenance_at
	`, query.AsOf(), int(vehicle.StateInactive)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	due := make([]MaintenanceDueResponse, 0)
	for rows.Next() {
		var response MaintenanceDueResponse
		var state int

		err = rows.Scan(
			&response.ID,
			&response.Code,
			&response.Plate,
			&state,
			&response.NextMaintenance,
		)
		if err != nil {
			return nil, err
		}

		response.State = vehicle.State(state).String()
		overdue := query.AsOf().Sub(response.NextMaintenance)
		if overdue > 0 {
			response.OverdueDays = int(overdue.Hours() / hoursPerDay)
		}
		due = append(due, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return due, nil
}
