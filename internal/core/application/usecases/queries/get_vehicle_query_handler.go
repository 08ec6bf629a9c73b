package queries

import (
	"context"
	"database/sql"
	"errors"

	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetVehicleQueryHandler retrieves a single vehicle from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetVehicleQueryHandler struct {
	db *gorm.DB
}

// NewGetVehicleQueryHandler creates a handler for single-vehicle retrieval.
// Requires a GORM database connection for query execution.
func NewGetVehicleQueryHandler(db *gorm.DB) GetVehicleQueryHandler {
	return GetVehicleQueryHandler{db: db}
}

// Handle executes the query and returns the vehicle read model.
// Returns an ObjectNotFoundError when the id does not exist.
func (h GetVehicleQueryHandler) Handle(ctx context.Context, query GetVehicleQuery) (VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return VehicleResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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

	response, err := scanVehicleRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return VehicleResponse{}, errs.NewObjectNotFoundError("vehicle", query.VehicleID())
		}
		return VehicleResponse{}, err
	}

	return response, nil
}

// scanVehicleRow maps one vehicles row onto the read model, converting the
// stored enum ordinals to their display strings.
func scanVehicleRow(row *sql.Row) (VehicleResponse, error) {
	var v VehicleResponse
	var state, machineryClass int
	var lastMaintenance, nextMaintenance sql.NullTime

	err := row.Scan(
		&v.ID,
		&v.Code,
		&v.TypeID,
		&v.ModelID,
		&v.Plate,
		&machineryClass,
		&v.Year,
		&v.PurchaseDate,
		&v.InitialOdometer,
		&v.CurrentOdometer,
		&v.FuelCapacity,
		&v.EngineCapacity,
		&state,
		&lastMaintenance,
		&nextMaintenance,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return VehicleResponse{}, err
	}

	v.State = vehicle.State(state).String()
	v.MachineryClass = vehicle.MachineryClass(machineryClass).String()
	if lastMaintenance.Valid {
		t := lastMaintenance.Time
		v.LastMaintenance = &t
	}
	if nextMaintenance.Valid {
		t := nextMaintenance.Time
		v.NextMaintenance = &t
	}

	return v, nil
}
