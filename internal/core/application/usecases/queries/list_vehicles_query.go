package queries

import (
	"strings"
	"time"

	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"
)

const (
	// DefaultPage is used when the requested page is not positive.
	DefaultPage = 1
	// DefaultPageSize is used when the requested page size is not positive.
	DefaultPageSize = 10
	// MaxPageSize caps the number of vehicles returned per page.
	MaxPageSize = 100
)

// VehicleFilter narrows the vehicle listing. Zero values mean the
// corresponding criterion is not applied.
type VehicleFilter struct {
	Code           string
	Plate          string
	TypeID         int64
	ModelID        int64
	State          string
	MachineryClass string
	PurchasedFrom  *time.Time
	PurchasedTo    *time.Time
	MaintenanceDue bool
}

// ListVehiclesQuery requests a filtered, paginated page of vehicles.
type ListVehiclesQuery struct {
	filter   VehicleFilter
	page     int
	pageSize int

	isSet bool
}

// NewListVehiclesQuery creates a listing query. Out-of-range pagination
// values are normalized to defaults rather than rejected. Filter values for
// state and machinery class must name known enum members when present.
func NewListVehiclesQuery(filter VehicleFilter, page int, pageSize int) (ListVehiclesQuery, error) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	filter.Code = strings.TrimSpace(filter.Code)
	filter.Plate = strings.TrimSpace(filter.Plate)
	filter.State = strings.TrimSpace(filter.State)
	filter.MachineryClass = strings.TrimSpace(filter.MachineryClass)

	if filter.State != "" {
		if _, ok := vehicle.StateFromString(filter.State); !ok {
			return ListVehiclesQuery{}, errs.NewValueIsInvalidError("filter state")
		}
	}
	if filter.MachineryClass != "" {
		if _, ok := vehicle.MachineryClassFromString(filter.MachineryClass); !ok {
			return ListVehiclesQuery{}, errs.NewValueIsInvalidError("filter machinery class")
		}
	}
	if filter.PurchasedFrom != nil && filter.PurchasedTo != nil &&
		filter.PurchasedTo.Before(*filter.PurchasedFrom) {
		return ListVehiclesQuery{}, errs.NewValueIsInvalidError("purchase date range")
	}

	return ListVehiclesQuery{
		filter:   filter,
		page:     page,
		pageSize: pageSize,

		isSet: true,
	}, nil
}

func (q ListVehiclesQuery) Filter() VehicleFilter {
	return q.filter
}

func (q ListVehiclesQuery) Page() int {
	return q.page
}

func (q ListVehiclesQuery) PageSize() int {
	return q.pageSize
}

func (q ListVehiclesQuery) IsEmpty() bool {
	return !q.isSet
}

// VehiclePageResponse is a page of vehicles together with totals needed by
// the caller to render pagination controls.
type VehiclePageResponse struct {
	Vehicles []VehicleResponse
	Total    int64
	Page     int
	PageSize int
}
