package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that a resource with the same identity already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNoChange indicates that an update would leave the stored resource identical.
var ErrNoChange = errors.New("no changes to apply")

// ErrInternal indicates a broken internal invariant.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code and a message alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError that matches ErrNotFound with errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError returns an AppError that matches ErrValidation with errors.Is.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewNoChangeError returns an AppError that matches ErrNoChange with errors.Is.
func NewNoChangeError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrNoChange}
}

// NewDuplicateError returns an AppError that matches ErrDuplicate with errors.Is.
func NewDuplicateError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}
