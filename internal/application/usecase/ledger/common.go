// Package ledger contains the month/category/entry ledger use cases.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
)

// EntryOutput represents a ledger entry in use case outputs, together with the
// month and category it lives in.
type EntryOutput struct {
	ID           uuid.UUID
	MonthLabel   string
	CategoryName string
	Date         time.Time
	Description  string
	Amount       decimal.Decimal
	Kind         entity.EntryKind
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ToEntryOutput converts an entry entity to its output form.
func ToEntryOutput(monthLabel, categoryName string, e *entity.Entry) *EntryOutput {
	return &EntryOutput{
		ID:           e.ID,
		MonthLabel:   monthLabel,
		CategoryName: categoryName,
		Date:         e.Date,
		Description:  e.Description,
		Amount:       e.Amount,
		Kind:         e.Kind,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// validateEntryFields checks the shared entry validation rules before any
// mutation is applied.
func validateEntryFields(amount decimal.Decimal, description string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidEntryAmount,
			"entry amount must be positive",
			domainerror.ErrInvalidEntryAmount,
		)
	}
	if description == "" {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeEmptyEntryDescription,
			"entry description cannot be empty",
			domainerror.ErrEmptyEntryDescription,
		)
	}
	return nil
}

// entryNotFound builds the stale-reference error shared by the entry use cases.
func entryNotFound() error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeEntryNotFound,
		"entry not found",
		domainerror.ErrEntryNotFound,
	)
}

// isValidEntryKind validates the entry kind.
func isValidEntryKind(kind entity.EntryKind) bool {
	return kind == entity.EntryKindIncome || kind == entity.EntryKindExpense
}
