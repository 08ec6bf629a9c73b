package catalogrepo

import (
	"context"

	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// VehicleTypeExists reports whether a vehicle type with the id exists.
func (r *GormCatalogRepository) VehicleTypeExists(ctx context.Context, typeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&VehicleTypeDTO{}).
		Where("id = ?", typeID).
		Count(&count).Error
	if err != nil {
		return false, errs.NewStorageError("catalog lookup", err)
	}

	return count > 0, nil
}

// ModelExists reports whether a model with the id exists.
func (r *GormCatalogRepository) ModelExists(ctx context.Context, modelID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ModelDTO{}).
		Where("id = ?", modelID).
		Count(&count).Error
	if err != nil {
		return false, errs.NewStorageError("catalog lookup", err)
	}

	return count > 0, nil
}

// AddVehicleType inserts a vehicle type by name, reusing the existing row when
// the name is already present.
func (r *GormCatalogRepository) AddVehicleType(ctx context.Context, name string) (int64, error) {
	dto := VehicleTypeDTO{Name: name}
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		FirstOrCreate(&dto).Error
	if err != nil {
		return 0, errs.NewStorageError("catalog insert", err)
	}

	return dto.ID, nil
}

// AddModel inserts a model by make and name, reusing the existing row when the
// pair is already present.
func (r *GormCatalogRepository) AddModel(ctx context.Context, name string, make string) (int64, error) {
	dto := ModelDTO{Name: name, Make: make}
	err := r.db.WithContext(ctx).
		Where("name = ? AND make = ?", name, make).
		FirstOrCreate(&dto).Error
	if err != nil {
		return 0, errs.NewStorageError("catalog insert", err)
	}

	return dto.ID, nil
}
