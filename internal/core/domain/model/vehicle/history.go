package vehicle

import (
	"errors"
	"fmt"
	"time"

	"fleet/internal/pkg/errs"
)

var (
	// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
	// created through one of its factory functions.
	ErrHistoryEntryIsNotConstructed = errors.New(
		"HistoryEntry must be created via NewHistoryEntry, NewInitialHistoryEntry or RestoreHistoryEntry")

	// ErrHistoryEntryAlreadyClosed is returned when closing an entry that
	// already has an end timestamp. Closed entries are immutable.
	ErrHistoryEntryAlreadyClosed = errors.New("history entry is already closed")

	// ErrHistoryEntryIDAlreadyAssigned is returned when AssignID is called on
	// an entry that already carries a persistent identity.
	ErrHistoryEntryIDAlreadyAssigned = errors.New("history entry ID is already assigned")
)

const (
	// InitialStateReason is the canonical reason recorded on the history entry
	// opened when a vehicle is created.
	InitialStateReason = "initial state"

	// SystemActor identifies the system itself as the actor of a history entry.
	SystemActor = "system"
)

// HistoryEntry records one contiguous interval during which a vehicle held a
// given lifecycle state. An entry with no end timestamp is "open" and mirrors
// the vehicle's present state; at most one entry per vehicle is open at a time.
// Once closed, an entry is append-only history and never mutated again.
type HistoryEntry struct {
	id        int64
	vehicleID int64
	state     State
	startedAt time.Time
	endedAt   *time.Time
	reason    string
	actor     string
	createdAt time.Time

	isConstructed bool
}

// NewInitialHistoryEntry creates the open entry recorded when a vehicle is
// created: state Active, canonical reason, system actor.
func NewInitialHistoryEntry(vehicleID int64, now time.Time) (*HistoryEntry, error) {
	return NewHistoryEntry(vehicleID, StateActive, InitialStateReason, SystemActor, now)
}

// NewHistoryEntry creates an open entry for a vehicle entering the given state.
// Reason and actor are required; the entry starts now.
func NewHistoryEntry(vehicleID int64, state State, reason, actor string, now time.Time) (*HistoryEntry, error) {
	entry := &HistoryEntry{
		startedAt:     now,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		entry.setVehicleID(vehicleID),
		entry.setState(state),
		entry.setReason(reason),
		entry.setActor(actor),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// RestoreHistoryEntry reconstructs an entry from its persisted representation.
func RestoreHistoryEntry(
	id int64,
	vehicleID int64,
	state State,
	startedAt time.Time,
	endedAt *time.Time,
	reason string,
	actor string,
	createdAt time.Time,
) (*HistoryEntry, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}
	if endedAt != nil && endedAt.Before(startedAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"end timestamp",
			fmt.Errorf("%s is before the start %s",
				endedAt.Format(time.RFC3339), startedAt.Format(time.RFC3339)),
		)
	}

	return &HistoryEntry{
		id:            id,
		vehicleID:     vehicleID,
		state:         state,
		startedAt:     startedAt,
		endedAt:       endedAt,
		reason:        reason,
		actor:         actor,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was produced by one of the factory functions.
func (h *HistoryEntry) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's persistent identity, or 0 before the first save.
func (h *HistoryEntry) ID() int64 { return h.id }

// VehicleID returns the owning vehicle's identity.
func (h *HistoryEntry) VehicleID() int64 { return h.vehicleID }

// State returns the lifecycle state recorded by this entry.
func (h *HistoryEntry) State() State { return h.state }

// StartedAt returns the instant at which the interval began.
func (h *HistoryEntry) StartedAt() time.Time { return h.startedAt }

// EndedAt returns the end of the interval, or nil while the entry is open.
func (h *HistoryEntry) EndedAt() *time.Time { return h.endedAt }

// Reason returns the reason the state was entered.
func (h *HistoryEntry) Reason() string { return h.reason }

// Actor returns who or what triggered the state.
func (h *HistoryEntry) Actor() string { return h.actor }

// CreatedAt returns the entry's creation timestamp.
func (h *HistoryEntry) CreatedAt() time.Time { return h.createdAt }

// IsOpen reports whether the entry has no end timestamp.
func (h *HistoryEntry) IsOpen() bool { return h.endedAt == nil }

// AssignID sets the persistent identity generated by the store on first save.
func (h *HistoryEntry) AssignID(id int64) error {
	if h.id != 0 {
		return ErrHistoryEntryIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("history entry id", fmt.Errorf("%d is not a positive id", id))
	}
	h.id = id
	return nil
}

// Close ends the interval at the given instant. Closing is the only mutation
// an entry ever receives, and it happens exactly once when the entry is
// superseded by its successor.
func (h *HistoryEntry) Close(end time.Time) error {
	if h.endedAt != nil {
		return ErrHistoryEntryAlreadyClosed
	}
	if end.Before(h.startedAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"end timestamp",
			fmt.Errorf("%s is before the start %s",
				end.Format(time.RFC3339), h.startedAt.Format(time.RFC3339)),
		)
	}
	closed := end
	h.endedAt = &closed
	return nil
}

func (h *HistoryEntry) setVehicleID(vehicleID int64) error {
	if vehicleID <= 0 {
		return errs.NewValueIsRequiredError("vehicle id")
	}
	h.vehicleID = vehicleID
	return nil
}

func (h *HistoryEntry) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	h.state = state
	return nil
}

func (h *HistoryEntry) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	h.reason = reason
	return nil
}

func (h *HistoryEntry) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	h.actor = actor
	return nil
}
