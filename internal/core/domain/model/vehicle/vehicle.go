package vehicle

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"fleet/internal/pkg/errs"
)

var (
	// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not created
	// through the NewVehicle or RestoreVehicle factory functions.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle")

	// ErrVehicleIDAlreadyAssigned is returned when AssignID is called on a vehicle
	// that already carries a persistent identity.
	ErrVehicleIDAlreadyAssigned = errors.New("vehicle ID is already assigned")

	codePattern   = regexp.MustCompile(`^[A-Z0-9-]{3,20}$`)
	platePattern  = regexp.MustCompile(`^[A-Z0-9-]{6,10}$`)
	enginePattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?(L|CC|HP|KW)$`)
)

const (
	// MinManufactureYear is the oldest accepted manufacture year.
	MinManufactureYear = 1990

	// MaxFuelCapacity is the upper bound for fuel tank capacity, exclusive of zero.
	MaxFuelCapacity = 1000.0

	// DefaultMaintenanceInterval is applied when maintenance is registered
	// without an explicit next-maintenance date.
	DefaultMaintenanceInterval = 3 // months
)

// Vehicle is the aggregate root for a fleet vehicle. It owns the vehicle's
// identity, descriptive attributes, odometer readings, maintenance dates, and
// current lifecycle state.
//
// Vehicle maintains these invariants:
//   - code matches [A-Z0-9-]{3,20} and plate matches [A-Z0-9-]{6,10}
//   - manufacture year is between 1990 and the year after the current one
//   - purchase date is never in the future
//   - currentOdometer >= initialOdometer, and currentOdometer never decreases
//   - fuel capacity is in (0, 1000]
//   - engine capacity matches <number>(L|CC|HP|KW)
//   - state changes follow the transition table in transitions.go
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through validated methods that refresh updatedAt. Instances can only be
// created through NewVehicle (new aggregates) or RestoreVehicle (persistence).
type Vehicle struct {
	id             int64
	code           string
	typeID         int64
	modelID        int64
	plate          string
	machineryClass MachineryClass
	year           int
	purchaseDate   time.Time

	initialOdometer float64
	currentOdometer float64
	fuelCapacity    float64
	engineCapacity  string

	state           State
	lastMaintenance *time.Time
	nextMaintenance *time.Time

	createdAt time.Time
	updatedAt time.Time
	version   int

	isConstructed bool
}

// NewVehicle creates a new Vehicle in the Active state with both odometer
// readings equal to the initial value. All field invariants are validated and
// the first violation set is returned as a joined error.
//
// The caller supplies now so that year and purchase-date bounds are evaluated
// against a single consistent instant.
func NewVehicle(
	code string,
	typeID int64,
	modelID int64,
	plate string,
	machineryClass MachineryClass,
	year int,
	purchaseDate time.Time,
	initialOdometer float64,
	fuelCapacity float64,
	engineCapacity string,
	now time.Time,
) (*Vehicle, error) {
	v := &Vehicle{
		state:         StateActive,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		v.setCode(code),
		v.setTypeID(typeID),
		v.setModelID(modelID),
		v.setPlate(plate),
		v.setMachineryClass(machineryClass),
		v.setYear(year, now),
		v.setPurchaseDate(purchaseDate, now),
		v.setInitialOdometer(initialOdometer),
		v.setFuelCapacity(fuelCapacity),
		v.setEngineCapacity(engineCapacity),
	); err != nil {
		return nil, err
	}

	v.currentOdometer = v.initialOdometer
	return v, nil
}

// RestoreVehicle reconstructs a Vehicle from its persisted representation.
// Unlike NewVehicle it accepts historical values as-is for time-dependent
// bounds (a vehicle bought in 1995 stays valid forever), but it still rejects
// structurally broken data such as an odometer regression or an invalid state.
func RestoreVehicle(
	id int64,
	code string,
	typeID int64,
	modelID int64,
	plate string,
	machineryClass MachineryClass,
	year int,
	purchaseDate time.Time,
	initialOdometer float64,
	currentOdometer float64,
	fuelCapacity float64,
	engineCapacity string,
	state State,
	lastMaintenance *time.Time,
	nextMaintenance *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Vehicle, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}
	if err := machineryClass.Validate(); err != nil {
		return nil, err
	}
	if currentOdometer < initialOdometer {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"current odometer",
			fmt.Errorf("%v is less than the initial odometer %v", currentOdometer, initialOdometer),
		)
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("vehicle version", fmt.Errorf("%d is not a positive version", version))
	}

	return &Vehicle{
		id:              id,
		code:            code,
		typeID:          typeID,
		modelID:         modelID,
		plate:           plate,
		machineryClass:  machineryClass,
		year:            year,
		purchaseDate:    purchaseDate,
		initialOdometer: initialOdometer,
		currentOdometer: currentOdometer,
		fuelCapacity:    fuelCapacity,
		engineCapacity:  engineCapacity,
		state:           state,
		lastMaintenance: lastMaintenance,
		nextMaintenance: nextMaintenance,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		version:         version,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Vehicle was produced by one of the factory functions.
// Repositories call this before persisting to prevent bypassed invariants.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// IsEqual compares two vehicles by identity.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id == other.id
}

// ID returns the vehicle's persistent identity, or 0 before the first save.
func (v *Vehicle) ID() int64 { return v.id }

// Code returns the unique vehicle code.
func (v *Vehicle) Code() string { return v.code }

// TypeID returns the referenced vehicle type.
func (v *Vehicle) TypeID() int64 { return v.typeID }

// ModelID returns the referenced model.
func (v *Vehicle) ModelID() int64 { return v.modelID }

// Plate returns the unique license plate.
func (v *Vehicle) Plate() string { return v.plate }

// Machinery returns the vehicle's machinery class.
func (v *Vehicle) Machinery() MachineryClass { return v.machineryClass }

// Year returns the manufacture year.
func (v *Vehicle) Year() int { return v.year }

// PurchaseDate returns the purchase date.
func (v *Vehicle) PurchaseDate() time.Time { return v.purchaseDate }

// InitialOdometer returns the odometer reading at registration.
func (v *Vehicle) InitialOdometer() float64 { return v.initialOdometer }

// CurrentOdometer returns the latest odometer reading.
func (v *Vehicle) CurrentOdometer() float64 { return v.currentOdometer }

// FuelCapacity returns the fuel tank capacity.
func (v *Vehicle) FuelCapacity() float64 { return v.fuelCapacity }

// EngineCapacity returns the engine capacity string, e.g. "2.5L" or "150HP".
func (v *Vehicle) EngineCapacity() string { return v.engineCapacity }

// State returns the current lifecycle state.
func (v *Vehicle) State() State { return v.state }

// LastMaintenance returns the date maintenance was last registered, if any.
func (v *Vehicle) LastMaintenance() *time.Time { return v.lastMaintenance }

// NextMaintenance returns the scheduled next maintenance date, if any.
func (v *Vehicle) NextMaintenance() *time.Time { return v.nextMaintenance }

// CreatedAt returns the creation timestamp.
func (v *Vehicle) CreatedAt() time.Time { return v.createdAt }

// UpdatedAt returns the timestamp of the last mutation.
func (v *Vehicle) UpdatedAt() time.Time { return v.updatedAt }

// Version returns the optimistic-concurrency version of the aggregate.
func (v *Vehicle) Version() int { return v.version }

// AssignID sets the persistent identity generated by the store on first save.
// It fails if the vehicle already has one.
func (v *Vehicle) AssignID(id int64) error {
	if v.id != 0 {
		return ErrVehicleIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("vehicle id", fmt.Errorf("%d is not a positive id", id))
	}
	v.id = id
	return nil
}

// SetOdometer records a new odometer reading. Readings are monotonically
// non-decreasing: a value below the current reading is rejected, never clamped.
func (v *Vehicle) SetOdometer(value float64, now time.Time) error {
	if value < v.currentOdometer {
		return errs.NewValueIsInvalidErrorWithCause(
			"odometer",
			fmt.Errorf("%v is less than the current reading %v", value, v.currentOdometer),
		)
	}
	v.currentOdometer = value
	v.touch(now)
	return nil
}

// SetNextMaintenance schedules the next maintenance date, which must be
// strictly in the future.
func (v *Vehicle) SetNextMaintenance(date time.Time, now time.Time) error {
	if !date.After(now) {
		return errs.NewValueIsInvalidErrorWithCause(
			"next maintenance date",
			fmt.Errorf("%s is not in the future", date.Format(time.RFC3339)),
		)
	}
	next := date
	v.nextMaintenance = &next
	v.touch(now)
	return nil
}

// RegisterMaintenance records that maintenance was performed now and schedules
// the next one. When next is nil the next maintenance defaults to three months
// from now. The resulting next-maintenance date must be strictly in the future.
func (v *Vehicle) RegisterMaintenance(next *time.Time, now time.Time) error {
	nextDate := now.AddDate(0, DefaultMaintenanceInterval, 0)
	if next != nil {
		nextDate = *next
	}
	if !nextDate.After(now) {
		return errs.NewValueIsInvalidErrorWithCause(
			"next maintenance date",
			fmt.Errorf("%s is not in the future", nextDate.Format(time.RFC3339)),
		)
	}

	last := now
	v.lastMaintenance = &last
	v.nextMaintenance = &nextDate
	v.touch(now)
	return nil
}

// ChangeState moves the vehicle to a new lifecycle state. Legality is decided
// by the canonical transition table; hasHistory gates the first-ever transition
// of a vehicle with no recorded operational state, which may only go to Active
// or Inactive. ChangeState does not touch the history collection; opening and
// closing history entries is the caller's responsibility.
func (v *Vehicle) ChangeState(newState State, hasHistory bool, now time.Time) error {
	if err := newState.Validate(); err != nil {
		return err
	}
	if newState == v.state {
		return errs.NewInvalidTransitionError(v.state.String(), newState.String())
	}
	if !hasHistory {
		if !CanTransitionWithoutHistory(newState) {
			return errs.NewInvalidTransitionErrorWithCause(
				v.state.String(), newState.String(),
				errors.New("a vehicle without history may only become Active or Inactive"),
			)
		}
	} else if err := ValidateTransition(v.state, newState); err != nil {
		return err
	}

	v.state = newState
	v.touch(now)
	return nil
}

// UpdateDetails replaces the vehicle's descriptive attributes. The update is
// independent of lifecycle state. Plate uniqueness across the fleet is checked
// by the application layer; all field-level invariants are enforced here.
func (v *Vehicle) UpdateDetails(
	plate string,
	typeID int64,
	modelID int64,
	year int,
	purchaseDate time.Time,
	fuelCapacity float64,
	engineCapacity string,
	now time.Time,
) error {
	if err := errors.Join(
		v.setPlate(plate),
		v.setTypeID(typeID),
		v.setModelID(modelID),
		v.setYear(year, now),
		v.setPurchaseDate(purchaseDate, now),
		v.setFuelCapacity(fuelCapacity),
		v.setEngineCapacity(engineCapacity),
	); err != nil {
		return err
	}
	v.touch(now)
	return nil
}

func (v *Vehicle) touch(now time.Time) {
	v.updatedAt = now
}

func (v *Vehicle) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if !codePattern.MatchString(code) {
		return errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("%q does not match [A-Z0-9-]{3,20}", code))
	}
	v.code = code
	return nil
}

func (v *Vehicle) setPlate(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}
	if !platePattern.MatchString(plate) {
		return errs.NewValueIsInvalidErrorWithCause("plate",
			fmt.Errorf("%q does not match [A-Z0-9-]{6,10}", plate))
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setTypeID(typeID int64) error {
	if typeID <= 0 {
		return errs.NewValueIsRequiredError("type id")
	}
	v.typeID = typeID
	return nil
}

func (v *Vehicle) setModelID(modelID int64) error {
	if modelID <= 0 {
		return errs.NewValueIsRequiredError("model id")
	}
	v.modelID = modelID
	return nil
}

func (v *Vehicle) setMachineryClass(class MachineryClass) error {
	if err := class.Validate(); err != nil {
		return err
	}
	v.machineryClass = class
	return nil
}

func (v *Vehicle) setYear(year int, now time.Time) error {
	maxYear := now.Year() + 1
	if year < MinManufactureYear || year > maxYear {
		return errs.NewValueIsOutOfRangeError("manufacture year", year, MinManufactureYear, maxYear)
	}
	v.year = year
	return nil
}

func (v *Vehicle) setPurchaseDate(date time.Time, now time.Time) error {
	if date.After(now) {
		return errs.NewValueIsInvalidErrorWithCause("purchase date",
			fmt.Errorf("%s is in the future", date.Format(time.RFC3339)))
	}
	v.purchaseDate = date
	return nil
}

func (v *Vehicle) setInitialOdometer(value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause("initial odometer",
			fmt.Errorf("%v is negative", value))
	}
	v.initialOdometer = value
	return nil
}

func (v *Vehicle) setFuelCapacity(capacity float64) error {
	if capacity <= 0 || capacity > MaxFuelCapacity {
		return errs.NewValueIsOutOfRangeError("fuel capacity", capacity, 0, MaxFuelCapacity)
	}
	v.fuelCapacity = capacity
	return nil
}

func (v *Vehicle) setEngineCapacity(capacity string) error {
	if capacity == "" {
		return errs.NewValueIsRequiredError("engine capacity")
	}
	if !enginePattern.MatchString(capacity) {
		return errs.NewValueIsInvalidErrorWithCause("engine capacity",
			fmt.Errorf("%q does not match <number>(L|CC|HP|KW)", capacity))
	}
	v.engineCapacity = capacity
	return nil
}
