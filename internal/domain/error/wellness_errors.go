// Package error defines domain-specific errors for the Financial Tracker application.
package error

import "errors"

// Wellness scoring domain errors.
var (
	// ErrInvalidWellnessTarget is returned when a score is requested against a
	// zero or negative cashflow target.
	ErrInvalidWellnessTarget = errors.New("wellness target must be positive")
)

// WellnessErrorCode defines error codes for wellness errors.
// Format: WEL-XXYYYY where XX is category and YYYY is specific error.
type WellnessErrorCode string

const (
	ErrCodeInvalidWellnessTarget WellnessErrorCode = "WEL-010001"
)

// WellnessError represents a wellness scoring error with code and message.
type WellnessError struct {
	Code    WellnessErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WellnessError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WellnessError) Unwrap() error {
	return e.Err
}

// NewWellnessError creates a new WellnessError with the given code and message.
func NewWellnessError(code WellnessErrorCode, message string, err error) *WellnessError {
	return &WellnessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
