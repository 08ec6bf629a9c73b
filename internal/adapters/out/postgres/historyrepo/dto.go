// Package historyrepo provides data transfer objects and mapping functions
// for state-history persistence. History entries are an append-only record of
// every operational state a vehicle has been in; only the open entry's end
// timestamp is ever written after insertion.
package historyrepo

import (
	"time"

	"fleet/internal/core/domain/model/vehicle"
)

// HistoryEntryDTO represents the database structure for persisting history
// entries. The vehicle id is indexed because every lookup is per vehicle.
type HistoryEntryDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	VehicleID int64 `gorm:"index"`
	State     int
	StartedAt time.Time
	EndedAt   *time.Time `gorm:"index"`
	Reason    string     `gorm:"size:255"`
	Actor     string     `gorm:"size:100"`
	CreatedAt time.Time
}

// TableName specifies the database table name for history entries.
func (HistoryEntryDTO) TableName() string {
	return "vehicle_state_history"
}

func fromDomain(entry *vehicle.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:        entry.ID(),
		VehicleID: entry.VehicleID(),
		State:     int(entry.State()),
		StartedAt: entry.StartedAt(),
		EndedAt:   entry.EndedAt(),
		Reason:    entry.Reason(),
		Actor:     entry.Actor(),
		CreatedAt: entry.CreatedAt(),
	}
}

func toDomain(dto HistoryEntryDTO) (*vehicle.HistoryEntry, error) {
	return vehicle.RestoreHistoryEntry(
		dto.ID,
		dto.VehicleID,
		vehicle.State(dto.State),
		dto.StartedAt,
		dto.EndedAt,
		dto.Reason,
		dto.Actor,
		dto.CreatedAt,
	)
}
