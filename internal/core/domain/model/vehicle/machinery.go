package vehicle

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// MachineryClass is a secondary classification of a vehicle, orthogonal to its
// lifecycle state and assigned once at creation.
type MachineryClass int

const (
	// MachineryUnknown represents an invalid or undefined class.
	MachineryUnknown MachineryClass = iota

	// MachineryLight covers light vehicles such as pickups and vans.
	MachineryLight

	// MachineryHeavy covers heavy machinery such as excavators and loaders.
	MachineryHeavy
)

func getMachineryClassStrings() map[MachineryClass]string {
	return map[MachineryClass]string{
		MachineryUnknown: "Unknown",
		MachineryLight:   "Light",
		MachineryHeavy:   "Heavy",
	}
}

// Validate checks if the MachineryClass value is valid.
func (m MachineryClass) Validate() error {
	if m != MachineryLight && m != MachineryHeavy {
		return errs.NewValueIsInvalidErrorWithCause(
			"machinery class is invalid",
			fmt.Errorf("%d is not a valid machinery class", m),
		)
	}
	return nil
}

// MachineryClassFromString converts a string representation back to a
// MachineryClass. Returns false when the string names no valid class.
func MachineryClassFromString(value string) (MachineryClass, bool) {
	for class, str := range getMachineryClassStrings() {
		if class != MachineryUnknown && str == value {
			return class, true
		}
	}
	return MachineryUnknown, false
}

// String returns the human-readable name of the class.
// Returns "Unknown" for invalid values.
func (m MachineryClass) String() string {
	if str, ok := getMachineryClassStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
