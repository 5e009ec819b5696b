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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Resolution errors
	ErrMissingStage      ErrorCode = "MISSING_STAGE"
	ErrNoMatch           ErrorCode = "NO_MATCH"
	ErrMalformedPipeline ErrorCode = "MALFORMED_PIPELINE"

	// Plugin errors
	ErrPluginNotFound ErrorCode = "PLUGIN_NOT_FOUND"
	ErrPluginLoad     ErrorCode = "PLUGIN_LOAD"
)

// PaktError represents a structured error with code and details
type PaktError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PaktError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PaktError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PaktError) Is(target error) bool {
	var targetErr *PaktError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PaktError with the given code and message
func New(code ErrorCode, message string) *PaktError {
	return &PaktError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PaktError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PaktError {
	return &PaktError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PaktError
func Wrap(err error, code ErrorCode, message string) *PaktError {
	if err == nil {
		return nil
	}
	return &PaktError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PaktError {
	if err == nil {
		return nil
	}
	return &PaktError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PaktError) WithDetail(key string, value interface{}) *PaktError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var paktErr *PaktError
	if errors.As(err, &paktErr) {
		return paktErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PaktError
func GetErrorCode(err error) ErrorCode {
	var paktErr *PaktError
	if errors.As(err, &paktErr) {
		return paktErr.Code
	}
	return ErrUnknown
}
