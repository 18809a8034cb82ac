// Package error defines domain-specific errors for the Financial Tracker application.
package error

import "errors"

// Profile and persistence domain errors.
var (
	// ErrProfileNotFound is returned when no profile exists for the given identity.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrEmptyProfileName is returned when a profile name is empty.
	ErrEmptyProfileName = errors.New("profile name cannot be empty")

	// ErrInvalidCurrencyCode is returned when the currency code is not a known ISO code.
	ErrInvalidCurrencyCode = errors.New("invalid currency code")

	// ErrCorruptDocument is returned when an imported document fails structural
	// or invariant validation.
	ErrCorruptDocument = errors.New("document failed validation")

	// ErrSnapshotNotFound is returned by snapshot stores when no document
	// exists under the requested key.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// ProfileErrorCode defines error codes for profile errors.
// Format: PRF-XXYYYY where XX is category and YYYY is specific error.
type ProfileErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyProfileName    ProfileErrorCode = "PRF-010001"
	ErrCodeInvalidCurrencyCode ProfileErrorCode = "PRF-010002"
	ErrCodeCorruptDocument     ProfileErrorCode = "PRF-010003"
	ErrCodeMissingProfileFields ProfileErrorCode = "PRF-010004"

	// Lookup errors (02XXXX)
	ErrCodeProfileNotFound      ProfileErrorCode = "PRF-020001"
	ErrCodeProfileAlreadyExists ProfileErrorCode = "PRF-020002"

	// Storage errors (03XXXX)
	ErrCodeSnapshotNotFound ProfileErrorCode = "PRF-030001"
	ErrCodeSnapshotFailure  ProfileErrorCode = "PRF-030002"
)

// ProfileError represents a profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError with the given code and message.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
