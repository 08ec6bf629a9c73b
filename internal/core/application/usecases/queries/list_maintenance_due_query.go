package queries

import (
	"errors"
	"time"

	"fleet/internal/pkg/guard"
)

var ErrListMaintenanceDueQueryIsNotConstructed = errors.New(
	"list maintenance due query must be created via NewListMaintenanceDueQuery",
)

// ListMaintenanceDueQuery requests vehicles whose next maintenance date has
// been reached. The reference time is supplied by the caller so the job
// scheduler and the HTTP layer report against the same instant.
type ListMaintenanceDueQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewListMaintenanceDueQuery creates the query. A zero asOf defaults to the
// current time.
func NewListMaintenanceDueQuery(asOf time.Time) ListMaintenanceDueQuery {
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	return ListMaintenanceDueQuery{asOf: asOf, guard: guard.NewConstructorGuard()}
}

func (q ListMaintenanceDueQuery) AsOf() time.Time {
	return q.asOf
}

func (q ListMaintenanceDueQuery) Validate() error {
	return q.guard.Validate(ErrListMaintenanceDueQueryIsNotConstructed)
}

// MaintenanceDueResponse is a compact read model listing a vehicle due for
// maintenance, for scheduler reports and operational dashboards.
type MaintenanceDueResponse struct {
	ID              int64
	Code            string
	Plate           string
	State           string
	NextMaintenance time.Time
	OverdueDays     int
}
