package errors

import (
	"fmt"
)

// ValidationError captures a rejected story request or configuration field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ProviderError represents a failed call to the generation provider.
type ProviderError struct {
	Call string
	Err  error
}

// NewProviderError constructs a ProviderError for the named call ("text" or "images").
func NewProviderError(call string, err error) error {
	return &ProviderError{Call: call, Err: err}
}

func (e *ProviderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Call != "" {
		return fmt.Sprintf("provider error [%s]: %v", e.Call, e.Err)
	}
	return fmt.Sprintf("provider error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ProviderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StorageError indicates a failure reading or writing local state.
type StorageError struct {
	Path string
	Op   string
	Err  error
}

// NewStorageError constructs a StorageError.
func NewStorageError(op, path string, err error) error {
	return &StorageError{Path: path, Op: op, Err: err}
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *StorageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
