package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrMissingField is returned when a required form field is absent.
	ErrMissingField = errors.New("product name and amount are required")
	// ErrInvalidAmount is returned when the amount is not a number.
	ErrInvalidAmount = errors.New("amount must be a number")
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrOrderNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error())
	case ErrMissingField, ErrInvalidAmount:
		return NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
