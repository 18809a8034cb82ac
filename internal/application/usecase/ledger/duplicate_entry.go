// Package ledger contains the month/category/entry ledger use cases.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/allocation"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
)

// duplicateSuffix is appended to the description of a duplicated entry.
const duplicateSuffix = " (copy)"

// DuplicateEntryInput represents the input for duplicating a ledger entry.
type DuplicateEntryInput struct {
	ProfileID uuid.UUID
	EntryID   uuid.UUID
}

// DuplicateEntryOutput represents the output of duplicating a ledger entry.
type DuplicateEntryOutput struct {
	Entry    *EntryOutput
	Location entity.EntryLocation
}

// DuplicateEntryUseCase handles entry duplication logic.
type DuplicateEntryUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewDuplicateEntryUseCase creates a new DuplicateEntryUseCase instance.
func NewDuplicateEntryUseCase(profileRepo adapter.ProfileRepository) *DuplicateEntryUseCase {
	return &DuplicateEntryUseCase{profileRepo: profileRepo}
}

// Execute appends a copy of the entry to its own category: same amount and
// kind, today's date, description suffixed "(copy)". Totals and allocations
// are applied the same way as for a freshly recorded entry.
func (uc *DuplicateEntryUseCase) Execute(ctx context.Context, input DuplicateEntryInput) (*DuplicateEntryOutput, error) {
	var output DuplicateEntryOutput
	err := uc.profileRepo.Update(ctx, input.ProfileID, func(p *entity.Profile) error {
		month, category, entry, _, ok := p.FindEntry(input.EntryID)
		if !ok {
			return entryNotFound()
		}

		copied := entity.NewEntry(entry.Kind, entry.Description+duplicateSuffix, entry.Amount, time.Now().UTC())
		category.Entries = append(category.Entries, copied)
		category.AdjustTotals(copied.Kind, copied.Amount)
		month.AdjustTotals(copied.Kind, copied.Amount)

		if copied.Kind == entity.EntryKindIncome {
			allocation.ApplyIncome(p, copied)
		} else {
			allocation.ApplyExpense(p, copied, category.Name)
		}

		_, _, _, loc, _ := p.FindEntry(copied.ID)
		output.Entry = ToEntryOutput(month.Label, category.Name, copied)
		output.Location = loc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &output, nil
}
