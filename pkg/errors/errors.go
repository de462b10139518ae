package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Pack errors
	ErrPackInvalid   ErrorCode = "PACK_INVALID"
	ErrPackDuplicate ErrorCode = "PACK_DUPLICATE"
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"

	// Card errors
	ErrCardLoad      ErrorCode = "CARD_LOAD"
	ErrCardInvalid   ErrorCode = "CARD_INVALID"
	ErrCardDuplicate ErrorCode = "CARD_DUPLICATE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// HashdoError represents a structured error with code and details
type HashdoError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HashdoError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HashdoError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a HashdoError carrying the same code
func (e *HashdoError) Is(target error) bool {
	var targetErr *HashdoError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HashdoError with the given code and message
func New(code ErrorCode, message string) *HashdoError {
	return &HashdoError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HashdoError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HashdoError {
	return &HashdoError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HashdoError
func Wrap(err error, code ErrorCode, message string) *HashdoError {
	if err == nil {
		return nil
	}
	return &HashdoError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HashdoError {
	if err == nil {
		return nil
	}
	return &HashdoError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HashdoError) WithDetail(key string, value interface{}) *HashdoError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *HashdoError) WithDetails(details map[string]interface{}) *HashdoError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var hashdoErr *HashdoError
	if errors.As(err, &hashdoErr) {
		return hashdoErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HashdoError
func GetErrorCode(err error) ErrorCode {
	var hashdoErr *HashdoError
	if errors.As(err, &hashdoErr) {
		return hashdoErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HashdoError
func GetErrorDetails(err error) map[string]interface{} {
	var hashdoErr *HashdoError
	if errors.As(err, &hashdoErr) {
		return hashdoErr.Details
	}
	return nil
}
