package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the stable classification targets for errors.Is.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrVersionIsInvalid   = errors.New("version is invalid")
	ErrDuplicateValue     = errors.New("value already exists")
	ErrInvalidTransition  = errors.New("state transition is invalid")
	ErrInvalidOperation   = errors.New("operation is invalid")
	ErrConflict           = errors.New("concurrent modification detected")
	ErrStorageUnavailable = errors.New("storage is unavailable")
)

// sanitize strips newlines from values embedded in error messages so that
// a single error always renders as a single log line.
func sanitize(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	return strings.ReplaceAll(value, "\r", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value violates a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value is outside its allowed range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is invalid: %v is %s, min value is %v, max value is %v (cause: %s)",
			e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is invalid: %v is %s, min value is %v, max value is %v",
		e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that an aggregate version does not match expectations.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without a cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// DuplicateValueError indicates a uniqueness violation for a value that must be
// globally unique, such as a vehicle code or plate.
type DuplicateValueError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewDuplicateValueError creates a DuplicateValueError without a cause.
func NewDuplicateValueError(paramName string, value any) *DuplicateValueError {
	return &DuplicateValueError{ParamName: paramName, Value: value}
}

// NewDuplicateValueErrorWithCause creates a DuplicateValueError wrapping an underlying cause.
func NewDuplicateValueErrorWithCause(paramName string, value any, cause error) *DuplicateValueError {
	return &DuplicateValueError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *DuplicateValueError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s (cause: %s)", ErrDuplicateValue, e.Value, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s", ErrDuplicateValue, e.Value, e.ParamName))
}

func (e *DuplicateValueError) Unwrap() error {
	return ErrDuplicateValue
}

// InvalidTransitionError indicates that a requested lifecycle state change is not
// permitted from the current state.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError without a cause.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s -> %s (cause: %s)", ErrInvalidTransition, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidOperationError indicates that an operation's own precondition failed,
// distinct from a generic illegal state transition.
type InvalidOperationError struct {
	Operation string
	Cause     error
}

// NewInvalidOperationError creates an InvalidOperationError without a cause.
func NewInvalidOperationError(operation string) *InvalidOperationError {
	return &InvalidOperationError{Operation: operation}
}

// NewInvalidOperationErrorWithCause creates an InvalidOperationError wrapping an underlying cause.
func NewInvalidOperationErrorWithCause(operation string, cause error) *InvalidOperationError {
	return &InvalidOperationError{Operation: operation, Cause: cause}
}

func (e *InvalidOperationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidOperation, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrInvalidOperation, e.Operation))
}

func (e *InvalidOperationError) Unwrap() error {
	return ErrInvalidOperation
}

// ConflictError indicates that a concurrent commit invalidated the snapshot this
// operation validated against. The caller may retry with a fresh read.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)", ErrConflict, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v", ErrConflict, e.ParamName, e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// StorageError indicates that the backing store failed for reasons unrelated to
// domain rules, such as lost connectivity or a timeout.
type StorageError struct {
	Operation string
	Cause     error
}

// NewStorageError creates a StorageError wrapping an underlying cause.
func NewStorageError(operation string, cause error) *StorageError {
	return &StorageError{Operation: operation, Cause: cause}
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrStorageUnavailable, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrStorageUnavailable, e.Operation))
}

func (e *StorageError) Unwrap() error {
	return ErrStorageUnavailable
}
