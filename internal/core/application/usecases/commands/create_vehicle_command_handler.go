package commands

import (
	"context"
	"time"

	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"
)

// CreateVehicleCommandHandler handles the business logic for vehicle creation.
// Verifies code/plate uniqueness and catalog references, constructs the
// aggregate, and persists the vehicle together with its initial open history
// entry in one transaction. A vehicle must never exist without an open entry,
// so a failure at any step rolls back both writes.
//
// Example:
//
//	handler := NewCreateVehicleCommandHandler(uowFactory)
//	cmd, _ := NewCreateVehicleCommand("VH-001", 1, 2, "ABC-1234",
//	    vehicle.MachineryLight, 2023, purchaseDate, 0, 80, "2.5L")
//
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("vehicle creation failed: %w", err)
//	}
type CreateVehicleCommandHandler struct {
	uowFactory RegistrationUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle creation.
// Requires a RegistrationUoWFactory for transactional persistence.
func NewCreateVehicleCommandHandler(uowFactory RegistrationUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle creation command and returns the generated
// vehicle id. Uniqueness violations surface as DuplicateValueError and missing
// catalog references as ObjectNotFoundError.
func (h *CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	catalogRepo := uow.CatalogRepository()

	exists, err := vehicleRepo.ExistsWithCode(ctx, cmd.Code())
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errs.NewDuplicateValueError("code", cmd.Code())
	}

	exists, err = vehicleRepo.ExistsWithPlate(ctx, cmd.Plate(), 0)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errs.NewDuplicateValueError("plate", cmd.Plate())
	}

	typeExists, err := catalogRepo.VehicleTypeExists(ctx, cmd.TypeID())
	if err != nil {
		return 0, err
	}
	if !typeExists {
		return 0, errs.NewObjectNotFoundError("vehicle type", cmd.TypeID())
	}

	modelExists, err := catalogRepo.ModelExists(ctx, cmd.ModelID())
	if err != nil {
		return 0, err
	}
	if !modelExists {
		return 0, errs.NewObjectNotFoundError("model", cmd.ModelID())
	}

	now := time.Now().UTC()
	aggregate, err := vehicle.NewVehicle(
		cmd.Code(),
		cmd.TypeID(),
		cmd.ModelID(),
		cmd.Plate(),
		cmd.Machinery(),
		cmd.Year(),
		cmd.PurchaseDate(),
		cmd.InitialOdometer(),
		cmd.FuelCapacity(),
		cmd.EngineCapacity(),
		now,
	)
	if err != nil {
		return 0, err
	}

	// Save the vehicle first to obtain its generated id.
	if err = vehicleRepo.Add(ctx, aggregate); err != nil {
		return 0, err
	}

	entry, err := vehicle.NewInitialHistoryEntry(aggregate.ID(), now)
	if err != nil {
		return 0, err
	}

	if err = uow.HistoryRepository().Add(ctx, entry); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}
