package apierror

import (
	"errors"
	"net/http"
)

// Domain error taxonomy. Services wrap these sentinels with %w so handlers can
// map any error to an HTTP status without inspecting message text.
var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation error")
	ErrConflict            = errors.New("conflict")
	ErrInvalidDiscountType = errors.New("invalid discount type")
)

// StatusFor maps a domain error to its HTTP status code.
// Unrecognized errors are treated as internal.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidDiscountType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
