package domain

import "errors"

// Author and post errors
var (
	// Author errors
	ErrAuthorNotFound    = errors.New("author not found")
	ErrAuthorEmailExists = errors.New("author email already exists")

	// Post errors
	ErrPostNotFound           = errors.New("post not found")
	ErrInvalidAuthorReference = errors.New("referenced author does not exist")

	// Validation errors
	ErrInvalidInput     = errors.New("invalid input")
	ErrValidationFailed = errors.New("validation failed")

	// General errors
	ErrInternal         = errors.New("internal error")
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("resource conflict")
)

// ValidationError represents validation errors with field-specific details
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}
