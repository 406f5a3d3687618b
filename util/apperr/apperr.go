// Package apperr carries status-coded errors from services up to the HTTP
// error handler.
package apperr

import (
	"errors"
	"net/http"
)

type Error struct {
	Status  int
	Message string
	Detail  any
}

func (e *Error) Error() string { return e.Message }

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error { return New(http.StatusBadRequest, message) }
func NotFound(message string) *Error  { return New(http.StatusNotFound, message) }
func Conflict(message string) *Error  { return New(http.StatusConflict, message) }

// Validation wraps field-level violations under the fixed envelope message.
func Validation(detail any) *Error {
	return &Error{Status: http.StatusBadRequest, Message: "Validation failed", Detail: detail}
}

// From extracts an *Error from err's chain.
func From(err error) (*Error, bool) {
	var ae *Error
	ok := errors.As(err, &ae)
	return ae, ok
}
