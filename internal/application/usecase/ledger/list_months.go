// Package ledger contains the month/category/entry ledger use cases.
package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
)

// CategoryOutput represents one category with its entries and totals.
type CategoryOutput struct {
	Name          string
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Entries       []*EntryOutput
}

// MonthOutput represents one month bucket with its categories and totals.
type MonthOutput struct {
	Label         string
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Categories    []*CategoryOutput
}

// ListMonthsInput represents the input for listing the ledger hierarchy.
type ListMonthsInput struct {
	ProfileID uuid.UUID
}

// ListMonthsOutput represents the full month/category/entry hierarchy.
type ListMonthsOutput struct {
	Months []*MonthOutput
}

// ListMonthsUseCase handles ledger hierarchy listing logic.
type ListMonthsUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewListMonthsUseCase creates a new ListMonthsUseCase instance.
func NewListMonthsUseCase(profileRepo adapter.ProfileRepository) *ListMonthsUseCase {
	return &ListMonthsUseCase{profileRepo: profileRepo}
}

// Execute returns the month buckets sorted ascending by label, each with its
// categories and entries in recording order.
func (uc *ListMonthsUseCase) Execute(ctx context.Context, input ListMonthsInput) (*ListMonthsOutput, error) {
	var output ListMonthsOutput
	err := uc.profileRepo.View(ctx, input.ProfileID, func(p *entity.Profile) error {
		output.Months = make([]*MonthOutput, len(p.Months))
		for i, m := range p.Months {
			mo := &MonthOutput{
				Label:         m.Label,
				TotalIncome:   m.TotalIncome,
				TotalExpenses: m.TotalExpenses,
				Categories:    make([]*CategoryOutput, len(m.Categories)),
			}
			for j, c := range m.Categories {
				co := &CategoryOutput{
					Name:          c.Name,
					TotalIncome:   c.TotalIncome,
					TotalExpenses: c.TotalExpenses,
					Entries:       make([]*EntryOutput, len(c.Entries)),
				}
				for k, e := range c.Entries {
					co.Entries[k] = ToEntryOutput(m.Label, c.Name, e)
				}
				mo.Categories[j] = co
			}
			output.Months[i] = mo
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &output, nil
}
