// Package allocation contains the envelope allocation engine and the
// allocation plan use cases.
package allocation

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
)

// AddEnvelopeInput represents the input for envelope creation.
type AddEnvelopeInput struct {
	ProfileID  uuid.UUID
	Name       string
	Percentage decimal.Decimal
}

// AddEnvelopeOutput represents the output of envelope creation.
type AddEnvelopeOutput struct {
	Envelope  *EnvelopeOutput
	PlanState entity.PlanState
}

// AddEnvelopeUseCase handles envelope creation logic.
type AddEnvelopeUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewAddEnvelopeUseCase creates a new AddEnvelopeUseCase instance.
func NewAddEnvelopeUseCase(profileRepo adapter.ProfileRepository) *AddEnvelopeUseCase {
	return &AddEnvelopeUseCase{profileRepo: profileRepo}
}

// Execute performs the envelope creation. Adding an envelope moves the plan
// back to draft until it is committed again.
func (uc *AddEnvelopeUseCase) Execute(ctx context.Context, input AddEnvelopeInput) (*AddEnvelopeOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewEnvelopeError(
			domainerror.ErrCodeEmptyEnvelopeName,
			"envelope name cannot be empty",
			domainerror.ErrEmptyEnvelopeName,
		)
	}
	if input.Percentage.LessThanOrEqual(decimal.Zero) || input.Percentage.GreaterThan(oneHundred) {
		return nil, domainerror.NewEnvelopeError(
			domainerror.ErrCodeInvalidEnvelopePercentage,
			"envelope percentage must be between 0 and 100",
			domainerror.ErrInvalidEnvelopePercentage,
		)
	}

	var output AddEnvelopeOutput
	err := uc.profileRepo.Update(ctx, input.ProfileID, func(p *entity.Profile) error {
		if p.EnvelopeByName(name) != nil {
			return domainerror.NewEnvelopeError(
				domainerror.ErrCodeDuplicateEnvelopeName,
				fmt.Sprintf("an envelope named %q already exists", name),
				domainerror.ErrDuplicateEnvelopeName,
			)
		}

		if p.PercentageSum().Add(input.Percentage).GreaterThan(oneHundred) {
			return domainerror.NewEnvelopeError(
				domainerror.ErrCodePlanOverAllocated,
				"envelope percentages cannot exceed 100",
				domainerror.ErrPlanOverAllocated,
			)
		}

		env := entity.NewEnvelope(name, input.Percentage)
		p.Envelopes = append(p.Envelopes, env)
		p.PlanState = entity.PlanStateDraft

		output.Envelope = ToEnvelopeOutput(env)
		output.PlanState = p.PlanState
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &output, nil
}
