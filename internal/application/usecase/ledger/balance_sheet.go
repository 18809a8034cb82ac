// Package ledger contains the month/category/entry ledger use cases.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
)

// BalanceSheetEntryOutput represents a balance sheet line in use case outputs.
type BalanceSheetEntryOutput struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Kind        entity.BalanceSheetKind
	Amount      decimal.Decimal
}

// ToBalanceSheetEntryOutput converts a balance sheet entity to its output form.
func ToBalanceSheetEntryOutput(b *entity.BalanceSheetEntry) *BalanceSheetEntryOutput {
	return &BalanceSheetEntryOutput{
		ID:          b.ID,
		Date:        b.Date,
		Description: b.Description,
		Kind:        b.Kind,
		Amount:      b.Amount,
	}
}

// ListBalanceSheetInput represents the input for listing the balance sheet.
type ListBalanceSheetInput struct {
	ProfileID uuid.UUID
}

// ListBalanceSheetOutput represents the balance sheet with per-kind totals.
type ListBalanceSheetOutput struct {
	Entries          []*BalanceSheetEntryOutput
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	NetWorth         decimal.Decimal
}

// ListBalanceSheetUseCase handles balance sheet listing logic.
type ListBalanceSheetUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewListBalanceSheetUseCase creates a new ListBalanceSheetUseCase instance.
func NewListBalanceSheetUseCase(profileRepo adapter.ProfileRepository) *ListBalanceSheetUseCase {
	return &ListBalanceSheetUseCase{profileRepo: profileRepo}
}

// Execute returns the balance sheet list with asset/liability totals.
func (uc *ListBalanceSheetUseCase) Execute(ctx context.Context, input ListBalanceSheetInput) (*ListBalanceSheetOutput, error) {
	output := ListBalanceSheetOutput{
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
	}
	err := uc.profileRepo.View(ctx, input.ProfileID, func(p *entity.Profile) error {
		output.Entries = make([]*BalanceSheetEntryOutput, len(p.BalanceSheet))
		for i, b := range p.BalanceSheet {
			output.Entries[i] = ToBalanceSheetEntryOutput(b)
			if b.Kind == entity.BalanceSheetKindAsset {
				output.TotalAssets = output.TotalAssets.Add(b.Amount)
			} else {
				output.TotalLiabilities = output.TotalLiabilities.Add(b.Amount)
			}
		}
		output.NetWorth = output.TotalAssets.Sub(output.TotalLiabilities)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &output, nil
}

// balanceSheetEntryNotFound builds the stale-reference error shared by the
// balance sheet use cases.
func balanceSheetEntryNotFound() error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeBalanceSheetEntryNotFound,
		"balance sheet entry not found",
		domainerror.ErrBalanceSheetEntryNotFound,
	)
}

// isValidBalanceSheetKind validates the balance sheet kind.
func isValidBalanceSheetKind(kind entity.BalanceSheetKind) bool {
	return kind == entity.BalanceSheetKindAsset || kind == entity.BalanceSheetKindLiability
}
