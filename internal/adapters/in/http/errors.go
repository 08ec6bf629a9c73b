package http

import (
	"errors"
	"net/http"

	"fleet/internal/pkg/errs"
)

// statusFromError maps domain error kinds onto HTTP status codes: missing
// objects are 404, business-rule rejections (duplicates, illegal transitions,
// version conflicts, invalid operations) are 409, bad input is 400 and
// anything unrecognized is 500.
func statusFromError(err error) int {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}

	var duplicate *errs.DuplicateValueError
	var transition *errs.InvalidTransitionError
	var operation *errs.InvalidOperationError
	var conflict *errs.ConflictError
	if errors.As(err, &duplicate) || errors.As(err, &transition) ||
		errors.As(err, &operation) || errors.As(err, &conflict) {
		return http.StatusConflict
	}

	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError
	var badVersion *errs.VersionIsInvalidError
	if errors.As(err, &invalid) || errors.As(err, &required) ||
		errors.As(err, &outOfRange) || errors.As(err, &badVersion) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
