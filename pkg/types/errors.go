package types

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "validation"
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypeReferential ErrorType = "referential_integrity"
	ErrorTypeInvariant   ErrorType = "invariant"
	ErrorTypeInternal    ErrorType = "internal"
)

// EMRError represents a structured error raised by the record store or
// the workflow engine. Validation and referential failures are
// recoverable; anything internal propagates to the caller unmodified.
type EMRError struct {
	Type    ErrorType              `json:"type"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *EMRError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *EMRError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(code, message string, details map[string]interface{}) *EMRError {
	return &EMRError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(code, message string) *EMRError {
	return &EMRError{
		Type:    ErrorTypeNotFound,
		Code:    code,
		Message: message,
	}
}

// NewReferentialError creates a new referential integrity error
func NewReferentialError(code, message string, details map[string]interface{}) *EMRError {
	return &EMRError{
		Type:    ErrorTypeReferential,
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewInvariantError creates a new invariant violation error
func NewInvariantError(code, message string, details map[string]interface{}) *EMRError {
	return &EMRError{
		Type:    ErrorTypeInvariant,
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(code, message string, cause error) *EMRError {
	return &EMRError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ErrorTypeOf extracts the error category from err, unwrapping as
// needed. Errors that are not EMRErrors are reported as internal.
func ErrorTypeOf(err error) ErrorType {
	var emrErr *EMRError
	if errors.As(err, &emrErr) {
		return emrErr.Type
	}
	return ErrorTypeInternal
}

// Common error codes
const (
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeUnknownPatient    = "UNKNOWN_PATIENT"
	ErrCodeUnknownFamilyFile = "UNKNOWN_FAMILY_FILE"
	ErrCodeAlreadyDeceased   = "ALREADY_DECEASED"
	ErrCodeInvalidDate       = "INVALID_DATE"
	ErrCodeInvalidAmount     = "INVALID_AMOUNT"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)
