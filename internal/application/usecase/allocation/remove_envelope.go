// Package allocation contains the envelope allocation engine and the
// allocation plan use cases.
package allocation

import (
	"context"

	"github.com/google/uuid"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
)

// RemoveEnvelopeInput represents the input for envelope removal.
type RemoveEnvelopeInput struct {
	ProfileID  uuid.UUID
	EnvelopeID uuid.UUID
}

// RemoveEnvelopeOutput represents the output of envelope removal.
type RemoveEnvelopeOutput struct {
	PlanState entity.PlanState
}

// RemoveEnvelopeUseCase handles envelope removal logic.
type RemoveEnvelopeUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewRemoveEnvelopeUseCase creates a new RemoveEnvelopeUseCase instance.
func NewRemoveEnvelopeUseCase(profileRepo adapter.ProfileRepository) *RemoveEnvelopeUseCase {
	return &RemoveEnvelopeUseCase{profileRepo: profileRepo}
}

// Execute removes the envelope unconditionally. The general pool is
// independent of envelope existence and is not reconciled.
func (uc *RemoveEnvelopeUseCase) Execute(ctx context.Context, input RemoveEnvelopeInput) (*RemoveEnvelopeOutput, error) {
	var output RemoveEnvelopeOutput
	err := uc.profileRepo.Update(ctx, input.ProfileID, func(p *entity.Profile) error {
		for i, env := range p.Envelopes {
			if env.ID == input.EnvelopeID {
				p.Envelopes = append(p.Envelopes[:i], p.Envelopes[i+1:]...)
				p.PlanState = entity.PlanStateDraft
				output.PlanState = p.PlanState
				return nil
			}
		}
		return domainerror.NewEnvelopeError(
			domainerror.ErrCodeEnvelopeNotFound,
			"envelope not found",
			domainerror.ErrEnvelopeNotFound,
		)
	})
	if err != nil {
		return nil, err
	}
	return &output, nil
}
