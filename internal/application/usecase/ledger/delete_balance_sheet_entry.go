// Package ledger contains the month/category/entry ledger use cases.
package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
)

// DeleteBalanceSheetEntryInput represents the input for deleting a balance
// sheet entry.
type DeleteBalanceSheetEntryInput struct {
	ProfileID uuid.UUID
	EntryID   uuid.UUID
}

// DeleteBalanceSheetEntryUseCase handles balance sheet entry deletion logic.
type DeleteBalanceSheetEntryUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewDeleteBalanceSheetEntryUseCase creates a new DeleteBalanceSheetEntryUseCase instance.
func NewDeleteBalanceSheetEntryUseCase(profileRepo adapter.ProfileRepository) *DeleteBalanceSheetEntryUseCase {
	return &DeleteBalanceSheetEntryUseCase{profileRepo: profileRepo}
}

// Execute removes the entry from the balance sheet list.
func (uc *DeleteBalanceSheetEntryUseCase) Execute(ctx context.Context, input DeleteBalanceSheetEntryInput) error {
	return uc.profileRepo.Update(ctx, input.ProfileID, func(p *entity.Profile) error {
		_, idx := p.FindBalanceSheetEntry(input.EntryID)
		if idx < 0 {
			return balanceSheetEntryNotFound()
		}
		p.BalanceSheet = append(p.BalanceSheet[:idx], p.BalanceSheet[idx+1:]...)
		return nil
	})
}
