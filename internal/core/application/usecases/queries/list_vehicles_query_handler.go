package queries

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListVehiclesQueryHandler returns a filtered, paginated page of vehicles
// together with the total count matching the filter.
type ListVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewListVehiclesQueryHandler creates a handler for vehicle listing.
// Requires a GORM database connection for query execution.
func NewListVehiclesQueryHandler(db *gorm.DB) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{db: db}
}

// Handle executes the query. An empty result set is returned as an empty
// page, not an error.
func (h ListVehiclesQueryHandler) Handle(
	ctx context.Context,
	query ListVehiclesQuery,
) (VehiclePageResponse, error) {
	if query.IsEmpty() {
		return VehiclePageResponse{}, errs.NewValueIsRequiredError("list vehicles query")
	}

	where, args := buildVehicleFilter(query.Filter())

	var total int64
	countRow := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM vehicles"+where, args...,
	).Row()
	if err := countRow.Scan(&total); err != nil {
		return VehiclePageResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	listArgs := make([]any, 0, len(args)+2)
	listArgs = append(listArgs, args...)
	listArgs = append(listArgs, query.PageSize(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		FROM vehicles`+where+`
		ORDER BY id
		LIMIT ? OFFSET ?
	`, listArgs...).Rows()
	if err != nil {
		return VehiclePageResponse{}, err
	}
	defer rows.Close()

	vehicles := make([]VehicleResponse, 0)
	for rows.Next() {
		response, scanErr := scanVehicleRows(rows)
		if scanErr != nil {
			return VehiclePageResponse{}, scanErr
		}
		vehicles = append(vehicles, response)
	}

	if err = rows.Err(); err != nil {
		return VehiclePageResponse{}, err
	}

	return VehiclePageResponse{
		Vehicles: vehicles,
		Total:    total,
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}, nil
}

// buildVehicleFilter translates the filter into a WHERE clause with
// positional placeholders. Returns an empty string when no criteria apply.
func buildVehicleFilter(filter VehicleFilter) (string, []any) {
	conditions := make([]string, 0)
	args := make([]any, 0)

	if filter.Code != "" {
		conditions = append(conditions, "code = ?")
		args = append(args, filter.Code)
	}
	if filter.Plate != "" {
		conditions = append(conditions, "plate = ?")
		args = append(args, filter.Plate)
	}
	if filter.TypeID != 0 {
		conditions = append(conditions, "type_id = ?")
		args = append(args, filter.TypeID)
	}
	if filter.ModelID != 0 {
		conditions = append(conditions, "model_id = ?")
		args = append(args, filter.ModelID)
	}
	if filter.State != "" {
		if state, ok := vehicle.StateFromString(filter.State); ok {
			conditions = append(conditions, "state = ?")
			args = append(args, int(state))
		}
	}
	if filter.MachineryClass != "" {
		if class, ok := vehicle.MachineryClassFromString(filter.MachineryClass); ok {
			conditions = append(conditions, "machinery_class = ?")
			args = append(args, int(class))
		}
	}
	if filter.PurchasedFrom != nil {
		conditions = append(conditions, "purchase_date >= ?")
		args = append(args, *filter.PurchasedFrom)
	}
	if filter.PurchasedTo != nil {
		conditions = append(conditions, "purchase_date <= ?")
		args = append(args, *filter.PurchasedTo)
	}
	if filter.MaintenanceDue {
		conditions = append(conditions, "next_maintenance_at IS NOT NULL AND next_maintenance_at <= ?")
		args = append(args, time.Now().UTC())
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// scanVehicleRows reads one vehicle from a multi-row result set. Shares the
// column order with scanVehicleRow.
func scanVehicleRows(rows *sql.Rows) (VehicleResponse, error) {
	var response VehicleResponse
	var state int
	var machineryClass int
	var lastMaintenance sql.NullTime
	var nextMaintenance sql.NullTime

	err := rows.Scan(
		&response.ID,
		&response.Code,
		&response.TypeID,
		&response.ModelID,
		&response.Plate,
		&machineryClass,
		&response.Year,
		&response.PurchaseDate,
		&response.InitialOdometer,
		&response.CurrentOdometer,
		&response.FuelCapacity,
		&response.EngineCapacity,
		&state,
		&lastMaintenance,
		&nextMaintenance,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if err != nil {
		return VehicleResponse{}, err
	}

	response.State = vehicle.State(state).String()
	response.MachineryClass = vehicle.MachineryClass(machineryClass).String()
	if lastMaintenance.Valid {
		t := lastMaintenance.Time
		response.LastMaintenance = &t
	}
	if nextMaintenance.Valid {
		t := nextMaintenance.Time
		response.NextMaintenance = &t
	}
	return response, nil
}
