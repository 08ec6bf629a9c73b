package vehiclerepo

import (
	"context"
	"errors"
	"strings"

	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle to the database and assigns the generated identity
// back to the aggregate. A unique constraint violation on code or plate is
// translated into a duplicate value error.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateStoreError("vehicle insert", err, aggregate)
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing vehicle using optimistic concurrency. The write
// only succeeds when the stored version still matches the aggregate's
// version; zero affected rows means a concurrent commit won and the caller
// gets a conflict error.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ? AND version = ?", aggregate.ID(), aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return translateStoreError("vehicle update", result.Error, aggregate)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&VehicleDTO{}).
			Where("id = ?", aggregate.ID()).
			Count(&count).Error; err != nil {
			return errs.NewStorageError("vehicle update", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("vehicle", aggregate.ID())
		}
		return errs.NewConflictError("vehicle", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id int64) (*vehicle.Vehicle, error) {
	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id)
		}
		return nil, errs.NewStorageError("vehicle lookup", err)
	}

	return toDomain(dto)
}

// GetByCode retrieves a vehicle by its unique code.
func (r *GormVehicleRepository) GetByCode(ctx context.Context, code string) (*vehicle.Vehicle, error) {
	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", code)
		}
		return nil, errs.NewStorageError("vehicle lookup", err)
	}

	return toDomain(dto)
}

// ExistsWithCode reports whether any vehicle already uses the code.
func (r *GormVehicleRepository) ExistsWithCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, errs.NewStorageError("vehicle lookup", err)
	}

	return count > 0, nil
}

// ExistsWithPlate reports whether any vehicle other than excludeID already
// uses the plate.
func (r *GormVehicleRepository) ExistsWithPlate(
	ctx context.Context,
	plate string,
	excludeID int64,
) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("plate = ?", plate)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errs.NewStorageError("vehicle lookup", err)
	}

	return count > 0, nil
}

// translateStoreError maps a PostgreSQL unique constraint violation to a
// duplicate value error on the conflicting column. The GORM postgres driver is
// pgx-backed, so the violation surfaces as *pgconn.PgError. Any other driver
// failure is classified as a storage error.
func translateStoreError(operation string, err error, aggregate *vehicle.Vehicle) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return errs.NewStorageError(operation, err)
	}

	switch {
	case strings.Contains(pgErr.ConstraintName, "code"):
		return errs.NewDuplicateValueErrorWithCause("code", aggregate.Code(), err)
	case strings.Contains(pgErr.ConstraintName, "plate"):
		return errs.NewDuplicateValueErrorWithCause("plate", aggregate.Plate(), err)
	default:
		return errs.NewDuplicateValueErrorWithCause("vehicle", aggregate.Code(), err)
	}
}
