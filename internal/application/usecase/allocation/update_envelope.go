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

// UpdateEnvelopeInput represents the input for renaming or reweighting an
// envelope. Nil fields are left unchanged.
type UpdateEnvelopeInput struct {
	ProfileID  uuid.UUID
	EnvelopeID uuid.UUID
	Name       *string
	Percentage *decimal.Decimal
}

// UpdateEnvelopeOutput represents the output of an envelope update.
type UpdateEnvelopeOutput struct {
	Envelope  *EnvelopeOutput
	PlanState entity.PlanState
}

// UpdateEnvelopeUseCase handles envelope rename/reweight logic.
type UpdateEnvelopeUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewUpdateEnvelopeUseCase creates a new UpdateEnvelopeUseCase instance.
func NewUpdateEnvelopeUseCase(profileRepo adapter.ProfileRepository) *UpdateEnvelopeUseCase {
	return &UpdateEnvelopeUseCase{profileRepo: profileRepo}
}

// Execute performs the envelope update. A reweight is only accepted when the
// post-change percentage sum equals exactly 100; the plan still returns to
// draft until committed again.
func (uc *UpdateEnvelopeUseCase) Execute(ctx context.Context, input UpdateEnvelopeInput) (*UpdateEnvelopeOutput, error) {
	var name string
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewEnvelopeError(
				domainerror.ErrCodeEmptyEnvelopeName,
				"envelope name cannot be empty",
				domainerror.ErrEmptyEnvelopeName,
			)
		}
	}
	if input.Percentage != nil {
		if input.Percentage.LessThanOrEqual(decimal.Zero) || input.Percentage.GreaterThan(oneHundred) {
			return nil, domainerror.NewEnvelopeError(
				domainerror.ErrCodeInvalidEnvelopePercentage,
				"envelope percentage must be between 0 and 100",
				domainerror.ErrInvalidEnvelopePercentage,
			)
		}
	}

	var output UpdateEnvelopeOutput
	err := uc.profileRepo.Update(ctx, input.ProfileID, func(p *entity.Profile) error {
		env := p.Envelope(input.EnvelopeID)
		if env == nil {
			return domainerror.NewEnvelopeError(
				domainerror.ErrCodeEnvelopeNotFound,
				"envelope not found",
				domainerror.ErrEnvelopeNotFound,
			)
		}

		if input.Name != nil && name != env.Name {
			if p.EnvelopeByName(name) != nil {
				return domainerror.NewEnvelopeError(
					domainerror.ErrCodeDuplicateEnvelopeName,
					fmt.Sprintf("an envelope named %q already exists", name),
					domainerror.ErrDuplicateEnvelopeName,
				)
			}
		}

		if input.Percentage != nil {
			postSum := p.PercentageSum().Sub(env.Percentage).Add(*input.Percentage)
			if !postSum.Equal(oneHundred) {
				return domainerror.NewEnvelopeError(
					domainerror.ErrCodePlanNotBalanced,
					"envelope percentages must sum to exactly 100 after the change",
					domainerror.ErrPlanNotBalanced,
				)
			}
			env.Percentage = *input.Percentage
		}
		if input.Name != nil {
			env.Name = name
		}

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
