// Package error defines domain-specific errors for the Financial Tracker application.
package error

import "errors"

// Session token domain errors.
var (
	// ErrInvalidToken is returned when a session token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a session token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// SessionErrorCode defines error codes for session errors.
// Format: SES-XXYYYY where XX is category and YYYY is specific error.
type SessionErrorCode string

const (
	// Token errors (01XXXX)
	ErrCodeInvalidToken SessionErrorCode = "SES-010001"
	ErrCodeExpiredToken SessionErrorCode = "SES-010002"
	ErrCodeMissingToken SessionErrorCode = "SES-010003"

	// Throttling errors (02XXXX)
	ErrCodeRateLimited SessionErrorCode = "SES-020001"
)

// SessionError represents a session error with code and message.
type SessionError struct {
	Code    SessionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SessionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SessionError) Unwrap() error {
	return e.Err
}

// NewSessionError creates a new SessionError with the given code and message.
func NewSessionError(code SessionErrorCode, message string, err error) *SessionError {
	return &SessionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
