// Package apperrors defines the domain error hierarchy. Every error carries
// the HTTP status it maps to; the handlers translate anything else to 500.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BookNotFound(id int64) *Error {
	return New(http.StatusNotFound, fmt.Sprintf("book not found with id %d", id))
}

func BookNotFoundISBN(isbn string) *Error {
	return New(http.StatusNotFound, fmt.Sprintf("book not found with isbn %s", isbn))
}

func UserNotFound(id int64) *Error {
	return New(http.StatusNotFound, fmt.Sprintf("user not found with id %d", id))
}

func UserNotFoundEmail(email string) *Error {
	return New(http.StatusNotFound, fmt.Sprintf("user not found with email %s", email))
}

func LoanNotFound(id int64) *Error {
	return New(http.StatusNotFound, fmt.Sprintf("loan not found with id %d", id))
}

func ResourceUnavailable(resource, reason string) *Error {
	return New(http.StatusConflict, fmt.Sprintf("resource %s is not available: %s", resource, reason))
}

func InvalidData(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// StatusOf returns the HTTP status carried by err, or 500 for untyped errors.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}
