// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fleet/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// HistoryRepoFactory provides access to the history repository within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// CatalogRepoFactory provides access to the catalog repository within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// VehicleUoW manages transactions for vehicle-only operations.
	// Used when commands only modify the vehicle aggregate (odometer,
	// maintenance bookkeeping, descriptive updates).
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// TransitionUoW manages transactions for lifecycle state transitions,
	// which always touch the vehicle and its history as one atomic unit.
	TransitionUoW interface {
		TxManager
		VehicleRepoFactory
		HistoryRepoFactory
	}

	// TransitionUoWFactory creates new transition unit of work instances.
	TransitionUoWFactory interface {
		Create() TransitionUoW
	}

	// RegistrationUoW manages transactions for vehicle creation, which also
	// needs the reference catalog to verify type and model ids.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   vehicleRepo := uow.VehicleRepository()
	//   historyRepo := uow.HistoryRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	RegistrationUoW interface {
		TxManager
		VehicleRepoFactory
		HistoryRepoFactory
		CatalogRepoFactory
	}

	// RegistrationUoWFactory creates new registration unit of work instances.
	RegistrationUoWFactory interface {
		Create() RegistrationUoW
	}
)
