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

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates a valid identity without the required permission.
var ErrForbidden = errors.New("forbidden")

// ErrTokenExpired indicates a token that was valid but is past its expiry.
var ErrTokenExpired = errors.New("token expired")

// ErrImmutableUser indicates an attempt to modify or delete a system account.
var ErrImmutableUser = errors.New("user is immutable")

// AppError carries an HTTP-ish status code alongside a message and the
// underlying cause. Repositories use it for infrastructure failures that
// handlers should surface as 500s.
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
