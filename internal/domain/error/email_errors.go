// Package error defines domain-specific errors for the Financial Tracker application.
package error

import "errors"

// Email domain errors.
var (
	// ErrEmailSendFailed is returned when a backup email fails to be sent.
	ErrEmailSendFailed = errors.New("failed to send email")

	// ErrPermanentEmailFailure is returned when an email fails with a permanent error.
	ErrPermanentEmailFailure = errors.New("permanent email failure")

	// ErrTemporaryEmailFailure is returned when an email fails with a temporary error.
	ErrTemporaryEmailFailure = errors.New("temporary email failure")
)

// EmailErrorCode defines error codes for email errors.
// Format: EMAIL-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Send errors (01XXXX)
	ErrCodeEmailSendFailed       EmailErrorCode = "EMAIL-010001"
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-010002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-010003"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
