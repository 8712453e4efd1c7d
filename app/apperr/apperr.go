// Package apperr maps service failures onto HTTP responses.
//
// Every error that leaves the service layer is an [*AppError]. The Message
// is safe to send to clients; the Cause is for server-side logs only.
package apperr

import (
	"errors"
	"net/http"
)

// InternalMessage is the fixed client message for server-side failures.
const InternalMessage = "Internal server error"

// NotFoundMessage is the client message for unknown resources and routes.
const NotFoundMessage = "Not Found"

// AppError carries an HTTP status, a machine code and a client-safe message.
type AppError struct {
	Code       string `json:"-"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Cause      error  `json:"-"`
}

// Error returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *AppError) Unwrap() error { return e.Cause }

// BadRequest creates a 400 error.
func BadRequest(msg string) *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NotFound creates a 404 error with the generic message.
func NotFound() *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    NotFoundMessage,
		HTTPStatus: http.StatusNotFound,
	}
}

// Internal creates a 500 error. The cause is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    InternalMessage,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// As extracts the *AppError from err's chain. Anything else becomes Internal.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}
