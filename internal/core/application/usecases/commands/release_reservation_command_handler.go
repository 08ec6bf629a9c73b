package commands

import (
	"context"
	"fmt"

	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"
)

// ReleaseReservationCommandHandler returns a reserved vehicle to Active.
// The Reserved precondition is checked inside the same transaction that
// performs the transition, so a concurrent state change cannot slip between
// the check and the write.
type ReleaseReservationCommandHandler struct {
	uowFactory TransitionUoWFactory
}

// NewReleaseReservationCommandHandler creates a handler for reservation releases.
// Requires a TransitionUoWFactory for transactional persistence.
func NewReleaseReservationCommandHandler(uowFactory TransitionUoWFactory) ReleaseReservationCommandHandler {
	return ReleaseReservationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the release command. A vehicle that is not currently
// Reserved fails with InvalidOperationError, distinct from the generic
// InvalidTransitionError of an illegal state change.
func (h *ReleaseReservationCommandHandler) Handle(ctx context.Context, cmd ReleaseReservationCommand) error {
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

	mustBeReserved := func(aggregate *vehicle.Vehicle) error {
		if aggregate.State() != vehicle.StateReserved {
			return errs.NewInvalidOperationErrorWithCause(
				"release reservation",
				fmt.Errorf("vehicle %d is %s, not Reserved", aggregate.ID(), aggregate.State()),
			)
		}
		return nil
	}

	err := applyTransition(
		ctx, uow,
		cmd.VehicleID(), vehicle.StateActive, ReservationReleaseReason, cmd.Actor(),
		mustBeReserved,
	)
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
