package commands

import (
	"context"
	"time"
)

// RegisterMaintenanceCommandHandler records performed maintenance on a
// vehicle: last-maintenance becomes now, next-maintenance the requested date
// or the default interval. Maintenance bookkeeping never touches the
// operational-state history.
type RegisterMaintenanceCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewRegisterMaintenanceCommandHandler creates a handler for maintenance registration.
// Requires a VehicleUoWFactory for transactional persistence.
func NewRegisterMaintenanceCommandHandler(uowFactory VehicleUoWFactory) RegisterMaintenanceCommandHandler {
	return RegisterMaintenanceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the maintenance registration. A next-maintenance date that
// is not strictly in the future is rejected by the aggregate.
func (h *RegisterMaintenanceCommandHandler) Handle(ctx context.Context, cmd RegisterMaintenanceCommand) error {
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

	if err = aggregate.RegisterMaintenance(cmd.NextMaintenance(), time.Now().UTC()); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
