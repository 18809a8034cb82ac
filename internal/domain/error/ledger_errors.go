// Package error defines domain-specific errors for the Financial Tracker application.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrInvalidEntryAmount is returned when an entry amount is zero or negative.
	ErrInvalidEntryAmount = errors.New("entry amount must be positive")

	// ErrEmptyEntryDescription is returned when an entry description is empty.
	ErrEmptyEntryDescription = errors.New("entry description cannot be empty")

	// ErrInvalidEntryKind is returned when the entry kind is neither income nor expense.
	ErrInvalidEntryKind = errors.New("invalid entry kind")

	// ErrEmptyCategoryName is returned when an expense entry has no category name.
	ErrEmptyCategoryName = errors.New("category name cannot be empty")

	// ErrEntryNotFound is returned when an entry reference is stale.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidBalanceSheetKind is returned when the kind is neither asset nor liability.
	ErrInvalidBalanceSheetKind = errors.New("invalid balance sheet kind")

	// ErrBalanceSheetEntryNotFound is returned when a balance sheet reference is stale.
	ErrBalanceSheetEntryNotFound = errors.New("balance sheet entry not found")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LED-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEntryAmount      LedgerErrorCode = "LED-010001"
	ErrCodeEmptyEntryDescription   LedgerErrorCode = "LED-010002"
	ErrCodeInvalidEntryKind        LedgerErrorCode = "LED-010003"
	ErrCodeEmptyCategoryName       LedgerErrorCode = "LED-010004"
	ErrCodeInvalidBalanceSheetKind LedgerErrorCode = "LED-010005"
	ErrCodeMissingEntryFields      LedgerErrorCode = "LED-010006"

	// Lookup errors (02XXXX)
	ErrCodeEntryNotFound             LedgerErrorCode = "LED-020001"
	ErrCodeBalanceSheetEntryNotFound LedgerErrorCode = "LED-020002"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
