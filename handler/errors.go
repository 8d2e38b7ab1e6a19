package handler

import (
	"errors"
	"net/http"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response.
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrSSENotInitialized indicates SSE was used on a request the Datastar client did not send.
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
)

// HTTPError carries a status code and a translation key for the message.
type HTTPError struct {
	Code int
	Key  string
}

// Error returns the translation key.
func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// Predefined HTTP errors. Their keys are looked up by the error handler's
// translator.
var (
	// ErrBadRequest is returned when the request cannot be bound.
	ErrBadRequest = HTTPError{Code: http.StatusBadRequest, Key: "errors.bad_request"}
	// ErrNotFound is returned for unknown routes.
	ErrNotFound = HTTPError{Code: http.StatusNotFound, Key: "errors.not_found"}
	// ErrMethodNotAllowed is returned when the route exists for other methods.
	ErrMethodNotAllowed = HTTPError{Code: http.StatusMethodNotAllowed, Key: "errors.method_not_allowed"}
	// ErrConflict is returned when the request clashes with work in progress.
	ErrConflict = HTTPError{Code: http.StatusConflict, Key: "errors.conflict"}
	// ErrInternalServerError is returned for unexpected failures.
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "errors.internal"}
)
