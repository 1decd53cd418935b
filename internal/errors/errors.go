package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeStorage    = "STORAGE_ERROR"
)

// ErrStorageUnavailable is returned by the storage layer when no connection
// string was configured at startup.
var ErrStorageUnavailable = stderrors.New("storage is not configured")

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Message string // Human-readable error message, safe to show to users
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  http.StatusNotFound,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  http.StatusBadRequest,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewStorageError wraps a persistence fault. The message is the generic text
// shown to users; the cause stays in Err for logs only.
func NewStorageError(message string, err error) *AppError {
	status := http.StatusInternalServerError
	if stderrors.Is(err, ErrStorageUnavailable) {
		status = http.StatusServiceUnavailable
	}
	return &AppError{
		Code:    ErrCodeStorage,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// As converts any error into an AppError, wrapping unknown errors as internal.
func As(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError(err)
}
