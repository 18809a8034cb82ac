// Package profile contains profile lifecycle use cases.
package profile

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/allocation"
	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/ledger"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
)

// MonthSummary is one month line in the overview.
type MonthSummary struct {
	Label         string
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
}

// GetOverviewInput represents the input for the profile overview.
type GetOverviewInput struct {
	ProfileID uuid.UUID
}

// GetOverviewOutput aggregates the dashboard-level view of a profile.
type GetOverviewOutput struct {
	Profile     *ProfileOutput
	Months      []MonthSummary
	Averages    ledger.AveragesOutput
	Envelopes   []*allocation.EnvelopeOutput
	PoolBalance decimal.Decimal
	PlanState   entity.PlanState
}

// GetOverviewUseCase handles the profile overview logic.
type GetOverviewUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(profileRepo adapter.ProfileRepository) *GetOverviewUseCase {
	return &GetOverviewUseCase{profileRepo: profileRepo}
}

// Execute returns the profile identity with its month totals, averages and
// envelope balances in one read.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	var output GetOverviewOutput
	err := uc.profileRepo.View(ctx, input.ProfileID, func(p *entity.Profile) error {
		output.Profile = ToProfileOutput(p)
		output.Months = make([]MonthSummary, len(p.Months))
		for i, m := range p.Months {
			output.Months[i] = MonthSummary{
				Label:         m.Label,
				TotalIncome:   m.TotalIncome,
				TotalExpenses: m.TotalExpenses,
			}
		}
		output.Averages = ledger.Averages(p)
		output.Envelopes = make([]*allocation.EnvelopeOutput, len(p.Envelopes))
		for i, env := range p.Envelopes {
			output.Envelopes[i] = allocation.ToEnvelopeOutput(env)
		}
		output.PoolBalance = p.Pool.Balance
		output.PlanState = p.PlanState
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &output, nil
}
