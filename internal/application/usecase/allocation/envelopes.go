// Package allocation contains the envelope allocation engine and the
// allocation plan use cases.
package allocation

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
)

// EnvelopeOutput represents one envelope in use case outputs.
type EnvelopeOutput struct {
	ID               uuid.UUID
	Name             string
	Percentage       decimal.Decimal
	Balance          decimal.Decimal
	TransactionCount int
}

// ToEnvelopeOutput converts an envelope entity to its output form.
func ToEnvelopeOutput(env *entity.Envelope) *EnvelopeOutput {
	return &EnvelopeOutput{
		ID:               env.ID,
		Name:             env.Name,
		Percentage:       env.Percentage,
		Balance:          env.Balance,
		TransactionCount: len(env.Transactions),
	}
}

// ListEnvelopesInput represents the input for listing envelopes.
type ListEnvelopesInput struct {
	ProfileID uuid.UUID
}

// ListEnvelopesOutput represents the output of listing envelopes.
type ListEnvelopesOutput struct {
	Envelopes     []*EnvelopeOutput
	PercentageSum decimal.Decimal
	PlanState     entity.PlanState
	PoolBalance   decimal.Decimal
}

// ListEnvelopesUseCase handles envelope listing logic.
type ListEnvelopesUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewListEnvelopesUseCase creates a new ListEnvelopesUseCase instance.
func NewListEnvelopesUseCase(profileRepo adapter.ProfileRepository) *ListEnvelopesUseCase {
	return &ListEnvelopesUseCase{profileRepo: profileRepo}
}

// Execute returns the envelope plan with balances and state.
func (uc *ListEnvelopesUseCase) Execute(ctx context.Context, input ListEnvelopesInput) (*ListEnvelopesOutput, error) {
	var output ListEnvelopesOutput
	err := uc.profileRepo.View(ctx, input.ProfileID, func(p *entity.Profile) error {
		output.Envelopes = make([]*EnvelopeOutput, len(p.Envelopes))
		for i, env := range p.Envelopes {
			output.Envelopes[i] = ToEnvelopeOutput(env)
		}
		output.PercentageSum = p.PercentageSum()
		output.PlanState = p.PlanState
		output.PoolBalance = p.Pool.Balance
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &output, nil
}
