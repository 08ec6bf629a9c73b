package commands

import (
	"context"
	"time"
)

// UpdateOdometerCommandHandler records a new odometer reading for a vehicle.
// Odometer updates never touch the operational-state history.
type UpdateOdometerCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewUpdateOdometerCommandHandler creates a handler for odometer updates.
// Requires a VehicleUoWFactory for transactional persistence.
func NewUpdateOdometerCommandHandler(uowFactory VehicleUoWFactory) UpdateOdometerCommandHandler {
	return UpdateOdometerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the odometer update. A reading below the current value is
// rejected by the aggregate and leaves the stored reading unchanged.
func (h *UpdateOdometerCommandHandler) Handle(ctx context.Context, cmd UpdateOdometerCommand) error {
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
	aggregate, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if err = aggregate.SetOdometer(cmd.Value(), time.Now().UTC()); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
