// Package ledger contains the month/category/entry ledger use cases.
package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/allocation"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
)

// DeleteEntryInput represents the input for deleting a ledger entry.
type DeleteEntryInput struct {
	ProfileID uuid.UUID
	EntryID   uuid.UUID
}

// DeleteEntryUseCase handles entry deletion logic.
type DeleteEntryUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(profileRepo adapter.ProfileRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{profileRepo: profileRepo}
}

// Execute removes the entry, backs its amount out of the category and month
// totals, and reverses the derived envelope and pool effects. Months and
// categories stay in place even when emptied.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) error {
	return uc.profileRepo.Update(ctx, input.ProfileID, func(p *entity.Profile) error {
		month, category, entry, _, ok := p.FindEntry(input.EntryID)
		if !ok {
			return entryNotFound()
		}

		category.AdjustTotals(entry.Kind, entry.Amount.Neg())
		month.AdjustTotals(entry.Kind, entry.Amount.Neg())
		category.RemoveEntry(category.EntryIndex(entry.ID))

		allocation.ReverseEntry(p, entry.ID)
		return nil
	})
}
