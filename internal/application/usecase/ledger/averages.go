// Package ledger contains the month/category/entry ledger use cases.
package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
)

// AveragesInput represents the input for computing monthly averages.
type AveragesInput struct {
	ProfileID uuid.UUID
}

// AveragesOutput represents the per-month averages over all recorded months.
type AveragesOutput struct {
	AvgIncome   decimal.Decimal
	AvgExpenses decimal.Decimal
	AvgCashflow decimal.Decimal
	MonthCount  int
}

// AveragesUseCase handles monthly average computation.
type AveragesUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewAveragesUseCase creates a new AveragesUseCase instance.
func NewAveragesUseCase(profileRepo adapter.ProfileRepository) *AveragesUseCase {
	return &AveragesUseCase{profileRepo: profileRepo}
}

// Execute computes the average monthly income and expenses. The divisor is
// clamped to 1 so an empty ledger yields zero averages instead of a division
// by zero.
func (uc *AveragesUseCase) Execute(ctx context.Context, input AveragesInput) (*AveragesOutput, error) {
	var output AveragesOutput
	err := uc.profileRepo.View(ctx, input.ProfileID, func(p *entity.Profile) error {
		output = Averages(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &output, nil
}

// Averages computes the monthly averages directly from the aggregate. Shared
// with the overview use case.
func Averages(p *entity.Profile) AveragesOutput {
	sumIncome := decimal.Zero
	sumExpenses := decimal.Zero
	for _, m := range p.Months {
		sumIncome = sumIncome.Add(m.TotalIncome)
		sumExpenses = sumExpenses.Add(m.TotalExpenses)
	}

	divisor := decimal.NewFromInt(int64(max(1, len(p.Months))))
	avgIncome := sumIncome.Div(divisor)
	avgExpenses := sumExpenses.Div(divisor)

	return AveragesOutput{
		AvgIncome:   avgIncome,
		AvgExpenses: avgExpenses,
		AvgCashflow: avgIncome.Sub(avgExpenses),
		MonthCount:  len(p.Months),
	}
}
