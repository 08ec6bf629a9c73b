package commands

import (
	"context"
	"time"

	"fleet/internal/pkg/errs"
)

// UpdateVehicleCommandHandler applies a general descriptive-field update.
// Plate uniqueness is re-checked when the plate changes, and type/model
// references are verified against the catalog, all inside one transaction.
type UpdateVehicleCommandHandler struct {
	uowFactory RegistrationUoWFactory
}

// NewUpdateVehicleCommandHandler creates a handler for vehicle updates.
// Requires a RegistrationUoWFactory since updates verify catalog references.
func NewUpdateVehicleCommandHandler(uowFactory RegistrationUoWFactory) UpdateVehicleCommandHandler {
	return UpdateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
func (h *UpdateVehicleCommandHandler) Handle(ctx context.Context, cmd UpdateVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	catalogRepo := uow.CatalogRepository()

	aggregate, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if cmd.Plate() != aggregate.Plate() {
		taken, plateErr := vehicleRepo.ExistsWithPlate(ctx, cmd.Plate(), aggregate.ID())
		if plateErr != nil {
			return plateErr
		}
		if taken {
			return errs.NewDuplicateValueError("plate", cmd.Plate())
		}
	}

	typeExists, err := catalogRepo.VehicleTypeExists(ctx, cmd.TypeID())
	if err != nil {
		return err
	}
	if !typeExists {
		return errs.NewObjectNotFoundError("vehicle type", cmd.TypeID())
	}

	modelExists, err := catalogRepo.ModelExists(ctx, cmd.ModelID())
	if err != nil {
		return err
	}
	if !modelExists {
		return errs.NewObjectNotFoundError("model", cmd.ModelID())
	}

	err = aggregate.UpdateDetails(
		cmd.Plate(),
		cmd.TypeID(),
		cmd.ModelID(),
		cmd.Year(),
		cmd.PurchaseDate(),
		cmd.FuelCapacity(),
		cmd.EngineCapacity(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
