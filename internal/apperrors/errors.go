package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the record belongs to a different customer.
var ErrForbidden = errors.New("access forbidden")

// ErrUnauthenticated indicates that no authenticated session is present.
var ErrUnauthenticated = errors.New("not authenticated")

// ErrNotLinked indicates that the authenticated portal user has no customer linked.
var ErrNotLinked = errors.New("no customer linked to user")

// ErrInactive indicates that the referenced scale device is deactivated.
var ErrInactive = errors.New("device is deactivated")

// ErrMalformed indicates that an ingestion payload could not be parsed.
var ErrMalformed = errors.New("malformed payload")

// AppError wraps an underlying cause with a status code and a message suitable
// for the response envelope.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
