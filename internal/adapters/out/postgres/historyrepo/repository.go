package historyrepo

import (
	"context"
	"errors"

	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
type GormHistoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB, tracker aggregateTracker) *GormHistoryRepository {
	return &GormHistoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new history entry and assigns the generated identity back to
// the entry.
func (r *GormHistoryRepository) Add(ctx context.Context, entry *vehicle.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageError("history insert", err)
	}

	if err := entry.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// Update persists the closing of an entry. Only the end timestamp ever
// changes after insertion.
func (r *GormHistoryRepository) Update(ctx context.Context, entry *vehicle.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&HistoryEntryDTO{}).
		Where("id = ?", entry.ID()).
		Update("ended_at", entry.EndedAt())
	if result.Error != nil {
		return errs.NewStorageError("history update", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("history entry", entry.ID())
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// GetOpenByVehicle retrieves the single open entry for the vehicle.
func (r *GormHistoryRepository) GetOpenByVehicle(
	ctx context.Context,
	vehicleID int64,
) (*vehicle.HistoryEntry, error) {
	var dto HistoryEntryDTO
	err := r.db.WithContext(ctx).
		First(&dto, "vehicle_id = ? AND ended_at IS NULL", vehicleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("open history entry", vehicleID)
		}
		return nil, errs.NewStorageError("history lookup", err)
	}

	return toDomain(dto)
}

// ListByVehicle retrieves all entries for the vehicle, most recent first.
func (r *GormHistoryRepository) ListByVehicle(
	ctx context.Context,
	vehicleID int64,
) ([]*vehicle.HistoryEntry, error) {
	var dtos []HistoryEntryDTO
	err := r.db.WithContext(ctx).
		Order("started_at DESC").
		Find(&dtos, "vehicle_id = ?", vehicleID).Error
	if err != nil {
		return nil, errs.NewStorageError("history lookup", err)
	}

	entries := make([]*vehicle.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
