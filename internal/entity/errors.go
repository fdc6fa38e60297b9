package entity

import "net/http"

// Error pairs a client-facing message with the HTTP status it should be
// answered with. Services return it for request-level failures; anything
// else reaching the boundary is treated as a 500.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// BadRequest is the common case: missing fields, unknown ids, bad roles.
func BadRequest(message string) *Error {
	return NewError(http.StatusBadRequest, message)
}
