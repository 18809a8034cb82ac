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

// RecordBalanceSheetEntryInput represents the input for recording an asset or
// liability.
type RecordBalanceSheetEntryInput struct {
	ProfileID   uuid.UUID
	Kind        entity.BalanceSheetKind
	Description string
	Amount      decimal.Decimal
	Date        time.Time // Zero value means today
}

// RecordBalanceSheetEntryOutput represents the output of recording a balance
// sheet entry.
type RecordBalanceSheetEntryOutput struct {
	Entry *BalanceSheetEntryOutput
}

// RecordBalanceSheetEntryUseCase handles balance sheet entry recording logic.
type RecordBalanceSheetEntryUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewRecordBalanceSheetEntryUseCase creates a new RecordBalanceSheetEntryUseCase instance.
func NewRecordBalanceSheetEntryUseCase(profileRepo adapter.ProfileRepository) *RecordBalanceSheetEntryUseCase {
	return &RecordBalanceSheetEntryUseCase{profileRepo: profileRepo}
}

// Execute appends the entry to the balance sheet list. The balance sheet has
// no relation to the month/category hierarchy or the allocation engine.
func (uc *RecordBalanceSheetEntryUseCase) Execute(ctx context.Context, input RecordBalanceSheetEntryInput) (*RecordBalanceSheetEntryOutput, error) {
	description := strings.TrimSpace(input.Description)
	if err := validateEntryFields(input.Amount, description); err != nil {
		return nil, err
	}
	if !isValidBalanceSheetKind(input.Kind) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidBalanceSheetKind,
			"balance sheet kind must be 'asset' or 'liability'",
			domainerror.ErrInvalidBalanceSheetKind,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	var output RecordBalanceSheetEntryOutput
	err := uc.profileRepo.Update(ctx, input.ProfileID, func(p *entity.Profile) error {
		entry := entity.NewBalanceSheetEntry(input.Kind, description, input.Amount, date)
		p.BalanceSheet = append(p.BalanceSheet, entry)
		output.Entry = ToBalanceSheetEntryOutput(entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &output, nil
}
