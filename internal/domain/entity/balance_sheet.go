// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceSheetKind represents the kind of balance sheet entry.
type BalanceSheetKind string

const (
	BalanceSheetKindAsset     BalanceSheetKind = "asset"
	BalanceSheetKindLiability BalanceSheetKind = "liability"
)

// BalanceSheetEntry represents one asset or liability line. The balance sheet
// is a flat list, independent of the month/category hierarchy.
type BalanceSheetEntry struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Kind        BalanceSheetKind
	Amount      decimal.Decimal // Always positive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBalanceSheetEntry creates a new balance sheet entry with a stable
// identifier.
func NewBalanceSheetEntry(kind BalanceSheetKind, description string, amount decimal.Decimal, date time.Time) *BalanceSheetEntry {
	now := time.Now().UTC()

	return &BalanceSheetEntry{
		ID:          uuid.New(),
		Date:        date,
		Description: description,
		Kind:        kind,
		Amount:      amount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
