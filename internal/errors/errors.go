package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrNegativeParam   = errors.New("parameter must not be negative")
	ErrUnknownMode     = errors.New("unknown mode")
	ErrUnsupportedLeaf = errors.New("value is not a supported JSON leaf type")
	ErrEmptyKey        = errors.New("key must not be empty")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrInvalidOutput   = errors.New("invalid output destination")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeParameter ErrorType = "parameter"
	ErrorTypeSerialize ErrorType = "serialize"
	ErrorTypeConfig    ErrorType = "config"
	ErrorTypeOutput    ErrorType = "output"
	ErrorTypeUnknown   ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewParameterError creates a new error for an invalid generator parameter
func NewParameterError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParameter,
		Message: message,
		Err:     err,
	}
}

// NewSerializeError creates a new error for a value that cannot be
// canonically serialized
func NewSerializeError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeSerialize,
		Message: message,
		Err:     err,
	}
}

// NewConfigError creates a new error related to configuration loading
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to writing output
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeParameter:
			return fmt.Sprintf("Parameter error: %s", appErr.Message)
		case ErrorTypeSerialize:
			return fmt.Sprintf("Serialization error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	if errors.Is(err, ErrNegativeParam) {
		return "Error: A size parameter was negative. Depth, count and length must be zero or greater."
	}
	if errors.Is(err, ErrUnknownMode) {
		return "Error: Unknown mode. Run with --help to see the accepted values."
	}
	if errors.Is(err, ErrUnsupportedLeaf) {
		return "Error: A structured value contained a leaf outside string/int/bool/null."
	}

	return fmt.Sprintf("Error: %v", err)
}
