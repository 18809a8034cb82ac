// Package ledger contains the month/category/entry ledger use cases.
package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/allocation"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
)

// EditEntryInput represents the input for editing a ledger entry. Nil fields
// are left unchanged.
type EditEntryInput struct {
	ProfileID   uuid.UUID
	EntryID     uuid.UUID
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
}

// EditEntryOutput represents the output of editing a ledger entry.
type EditEntryOutput struct {
	Entry    *EntryOutput
	Location entity.EntryLocation
}

// EditEntryUseCase handles entry edit logic.
type EditEntryUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewEditEntryUseCase creates a new EditEntryUseCase instance.
func NewEditEntryUseCase(profileRepo adapter.ProfileRepository) *EditEntryUseCase {
	return &EditEntryUseCase{profileRepo: profileRepo}
}

// Execute edits the entry in place, adjusts the category and month totals by
// the amount diff, and retargets the derived envelope and pool transactions.
// When the new date lands in a different calendar month the entry relocates to
// that month's bucket.
func (uc *EditEntryUseCase) Execute(ctx context.Context, input EditEntryInput) (*EditEntryOutput, error) {
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

	var output EditEntryOutput
	err := uc.profileRepo.Update(ctx, input.ProfileID, func(p *entity.Profile) error {
		month, category, entry, _, ok := p.FindEntry(input.EntryID)
		if !ok {
			return entryNotFound()
		}

		newAmount := entry.Amount
		if input.Amount != nil {
			newAmount = *input.Amount
		}
		newDescription := entry.Description
		if input.Description != nil {
			newDescription = description
		}
		newDate := entry.Date
		if input.Date != nil {
			newDate = *input.Date
		}

		// Back the old amount out of the owning buckets, then add the new
		// amount to the (possibly different) target buckets. When the month
		// is unchanged this nets out to the plain diff.
		category.AdjustTotals(entry.Kind, entry.Amount.Neg())
		month.AdjustTotals(entry.Kind, entry.Amount.Neg())

		targetMonth := month
		targetCategory := category
		if entity.MonthLabelFor(newDate) != month.Label {
			category.RemoveEntry(category.EntryIndex(entry.ID))
			targetMonth = p.EnsureMonth(newDate)
			targetCategory = targetMonth.EnsureCategory(category.Name)
			targetCategory.Entries = append(targetCategory.Entries, entry)
		}
		targetCategory.AdjustTotals(entry.Kind, newAmount)
		targetMonth.AdjustTotals(entry.Kind, newAmount)

		entry.Amount = newAmount
		entry.Description = newDescription
		entry.Date = newDate
		entry.UpdatedAt = time.Now().UTC()

		allocation.Retarget(p, entry.ID, entry.Kind, newAmount, newDescription, newDate)

		_, _, _, loc, _ := p.FindEntry(entry.ID)
		output.Entry = ToEntryOutput(targetMonth.Label, targetCategory.Name, entry)
		output.Location = loc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &output, nil
}
