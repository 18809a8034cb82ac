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

// RecordEntryInput represents the input for recording a ledger entry.
type RecordEntryInput struct {
	ProfileID   uuid.UUID
	Kind        entity.EntryKind
	Category    string // Ignored for income; forced to the reserved category
	Description string
	Amount      decimal.Decimal
	Date        time.Time // Zero value means today
}

// RecordEntryOutput represents the output of recording a ledger entry.
type RecordEntryOutput struct {
	Entry *EntryOutput
	// Location is the entry's position at creation time. It stays valid only
	// until the next structural mutation; the entry ID is the durable handle.
	Location entity.EntryLocation
}

// RecordEntryUseCase handles entry recording logic.
type RecordEntryUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewRecordEntryUseCase creates a new RecordEntryUseCase instance.
func NewRecordEntryUseCase(profileRepo adapter.ProfileRepository) *RecordEntryUseCase {
	return &RecordEntryUseCase{profileRepo: profileRepo}
}

// Execute records the entry into the month/category hierarchy, maintains the
// category and month totals, and runs the allocation engine so the envelope
// balances and the general pool mirror the entry.
func (uc *RecordEntryUseCase) Execute(ctx context.Context, input RecordEntryInput) (*RecordEntryOutput, error) {
	description := strings.TrimSpace(input.Description)
	if err := validateEntryFields(input.Amount, description); err != nil {
		return nil, err
	}
	if !isValidEntryKind(input.Kind) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidEntryKind,
			"entry kind must be 'income' or 'expense'",
			domainerror.ErrInvalidEntryKind,
		)
	}

	categoryName := strings.TrimSpace(input.Category)
	if input.Kind == entity.EntryKindIncome {
		categoryName = entity.GeneralIncomeCategory
	} else if categoryName == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEmptyCategoryName,
			"expense entries require a category name",
			domainerror.ErrEmptyCategoryName,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	var output RecordEntryOutput
	err := uc.profileRepo.Update(ctx, input.ProfileID, func(p *entity.Profile) error {
		month := p.EnsureMonth(date)
		category := month.EnsureCategory(categoryName)

		entry := entity.NewEntry(input.Kind, description, input.Amount, date)
		category.Entries = append(category.Entries, entry)
		category.AdjustTotals(input.Kind, input.Amount)
		month.AdjustTotals(input.Kind, input.Amount)

		if input.Kind == entity.EntryKindIncome {
			allocation.ApplyIncome(p, entry)
		} else {
			allocation.ApplyExpense(p, entry, categoryName)
		}

		_, _, _, loc, _ := p.FindEntry(entry.ID)
		output.Entry = ToEntryOutput(month.Label, category.Name, entry)
		output.Location = loc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &output, nil
}
