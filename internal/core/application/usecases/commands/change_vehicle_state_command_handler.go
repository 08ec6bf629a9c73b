package commands

import (
	"context"
	"errors"
	"time"

	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
)

// ChangeVehicleStateCommandHandler performs a complete lifecycle transition as
// a single atomic operation: load the vehicle and its open history entry,
// validate the transition, close the open entry, apply the new state, open the
// successor entry, and commit everything as one unit. A rejection or a failure
// at any step leaves no partial state behind.
//
// Concurrent transitions on the same vehicle are serialized by the store:
// the vehicle row carries an optimistic-concurrency version, so the losing
// transaction fails with a conflict error instead of committing a transition
// validated against a stale snapshot.
//
// Example:
//
//	handler := NewChangeVehicleStateCommandHandler(uowFactory)
//	cmd, _ := NewSendToMaintenanceCommand(7, "scheduled service", "op1")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition failed: %w", err)
//	}
type ChangeVehicleStateCommandHandler struct {
	uowFactory TransitionUoWFactory
}

// NewChangeVehicleStateCommandHandler creates a handler for lifecycle transitions.
// Requires a TransitionUoWFactory for transactional persistence.
func NewChangeVehicleStateCommandHandler(uowFactory TransitionUoWFactory) ChangeVehicleStateCommandHandler {
	return ChangeVehicleStateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command. Illegal transitions abort before
// any write and surface as InvalidTransitionError; a missing vehicle surfaces
// as ObjectNotFoundError.
func (h *ChangeVehicleStateCommandHandler) Handle(ctx context.Context, cmd ChangeVehicleStateCommand) error {
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

	if err := applyTransition(ctx, uow, cmd.VehicleID(), cmd.TargetState(), cmd.Reason(), cmd.Actor(), nil); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// applyTransition runs the transition algorithm against an already-begun unit
// of work. precondition, when non-nil, is checked against the loaded vehicle
// before the transition itself is validated; it lets semantically narrower
// operations (release reservation) reject with their own error kind.
func applyTransition(
	ctx context.Context,
	uow TransitionUoW,
	vehicleID int64,
	targetState vehicle.State,
	reason string,
	actor string,
	precondition func(*vehicle.Vehicle) error,
) error {
	vehicleRepo := uow.VehicleRepository()
	historyRepo := uow.HistoryRepository()

	aggregate, err := vehicleRepo.Get(ctx, vehicleID)
	if err != nil {
		return err
	}

	if precondition != nil {
		if err = precondition(aggregate); err != nil {
			return err
		}
	}

	open, err := openEntryOrNil(ctx, historyRepo, vehicleID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = aggregate.ChangeState(targetState, open != nil, now); err != nil {
		return err
	}

	if open != nil {
		if err = open.Close(now); err != nil {
			return err
		}
		if err = historyRepo.Update(ctx, open); err != nil {
			return err
		}
	}

	if err = vehicleRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := vehicle.NewHistoryEntry(vehicleID, targetState, reason, actor, now)
	if err != nil {
		return err
	}

	return historyRepo.Add(ctx, entry)
}

// openEntryOrNil loads the vehicle's open history entry, mapping "no open
// entry" to nil rather than an error: a blank history is a legal starting
// point that only restricts which states are reachable.
func openEntryOrNil(ctx context.Context, repo ports.HistoryRepository, vehicleID int64) (*vehicle.HistoryEntry, error) {
	open, err := repo.GetOpenByVehicle(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return open, nil
}
