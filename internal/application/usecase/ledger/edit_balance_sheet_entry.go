// Package ledger contains the month/category/entry ledger use cases.
package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
)

// EditBalanceSheetEntryInput represents the input for editing a balance sheet
// entry. Nil fields are left unchanged.
type EditBalanceSheetEntryInput struct {
	ProfileID   uuid.UUID
	EntryID     uuid.UUID
	Description *string
	Amount      *decimal.Decimal
	Date        *time.Time
}

// EditBalanceSheetEntryOutput represents the output of editing a balance
// sheet entry.
type EditBalanceSheetEntryOutput struct {
	Entry *BalanceSheetEntryOutput
}

// EditBalanceSheetEntryUseCase handles balance sheet entry edit logic.
type EditBalanceSheetEntryUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewEditBalanceSheetEntryUseCase creates a new EditBalanceSheetEntryUseCase instance.
func NewEditBalanceSheetEntryUseCase(profileRepo adapter.ProfileRepository) *EditBalanceSheetEntryUseCase {
	return &EditBalanceSheetEntryUseCase{profileRepo: profileRepo}
}

// Execute mutates the balance sheet entry in place.
func (uc *EditBalanceSheetEntryUseCase) Execute(ctx context.Context, input EditBalanceSheetEntryInput) (*EditBalanceSheetEntryOutput, error) {
	var description string
	if input.Description != nil {
		description = strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeEmptyEntryDescription,
				"entry description cannot be empty",
				domainerror.ErrEmptyEntryDescription,
			)
		}
	}
	if input.Amount != nil && input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidEntryAmount,
			"entry amount must be positive",
			domainerror.ErrInvalidEntryAmount,
		)
	}

	var output EditBalanceSheetEntryOutput
	err := uc.profileRepo.Update(ctx, input.ProfileID, func(p *entity.Profile) error {
		entry, idx := p.FindBalanceSheetEntry(input.EntryID)
		if idx < 0 {
			return balanceSheetEntryNotFound()
		}

		if input.Description != nil {
			entry.Description = description
		}
		if input.Amount != nil {
			entry.Amount = *input.Amount
		}
		if input.Date != nil {
			entry.Date = *input.Date
		}
		entry.UpdatedAt = time.Now().UTC()

		output.Entry = ToBalanceSheetEntryOutput(entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &output, nil
}
