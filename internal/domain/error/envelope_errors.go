// Package error defines domain-specific errors for the Financial Tracker application.
package error

import "errors"

// Envelope / allocation plan domain errors.
var (
	// ErrInvalidEnvelopePercentage is returned when a percentage is zero, negative or above 100.
	ErrInvalidEnvelopePercentage = errors.New("envelope percentage must be between 0 and 100")

	// ErrPlanOverAllocated is returned when adding an envelope would push the percentage sum past 100.
	ErrPlanOverAllocated = errors.New("envelope percentages cannot exceed 100")

	// ErrPlanNotBalanced is returned when the percentage sum is not exactly 100.
	ErrPlanNotBalanced = errors.New("envelope percentages must sum to exactly 100")

	// ErrEmptyEnvelopeName is returned when an envelope name is empty.
	ErrEmptyEnvelopeName = errors.New("envelope name cannot be empty")

	// ErrDuplicateEnvelopeName is returned when an envelope name is already in use.
	ErrDuplicateEnvelopeName = errors.New("envelope name already exists")

	// ErrEnvelopeNotFound is returned when an envelope reference is stale.
	ErrEnvelopeNotFound = errors.New("envelope not found")
)

// EnvelopeErrorCode defines error codes for envelope errors.
// Format: ENV-XXYYYY where XX is category and YYYY is specific error.
type EnvelopeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEnvelopePercentage EnvelopeErrorCode = "ENV-010001"
	ErrCodePlanOverAllocated         EnvelopeErrorCode = "ENV-010002"
	ErrCodePlanNotBalanced           EnvelopeErrorCode = "ENV-010003"
	ErrCodeEmptyEnvelopeName         EnvelopeErrorCode = "ENV-010004"
	ErrCodeDuplicateEnvelopeName     EnvelopeErrorCode = "ENV-010005"
	ErrCodeMissingEnvelopeFields     EnvelopeErrorCode = "ENV-010006"

	// Lookup errors (02XXXX)
	ErrCodeEnvelopeNotFound EnvelopeErrorCode = "ENV-020001"
)

// EnvelopeError represents an envelope error with code and message.
type EnvelopeError struct {
	Code    EnvelopeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EnvelopeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EnvelopeError) Unwrap() error {
	return e.Err
}

// NewEnvelopeError creates a new EnvelopeError with the given code and message.
func NewEnvelopeError(code EnvelopeErrorCode, message string, err error) *EnvelopeError {
	return &EnvelopeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
