// Package allocation contains the envelope allocation engine and the
// allocation plan use cases.
package allocation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
)

// CommitPlanInput represents the input for committing the allocation plan.
type CommitPlanInput struct {
	ProfileID uuid.UUID
}

// CommitPlanOutput represents the output of committing the allocation plan.
type CommitPlanOutput struct {
	PlanState     entity.PlanState
	PercentageSum decimal.Decimal
}

// CommitPlanUseCase handles allocation plan commit logic.
type CommitPlanUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewCommitPlanUseCase creates a new CommitPlanUseCase instance.
func NewCommitPlanUseCase(profileRepo adapter.ProfileRepository) *CommitPlanUseCase {
	return &CommitPlanUseCase{profileRepo: profileRepo}
}

// Execute commits the plan. The plan is only considered saved when the
// envelope percentages sum to exactly 100.
func (uc *CommitPlanUseCase) Execute(ctx context.Context, input CommitPlanInput) (*CommitPlanOutput, error) {
	var output CommitPlanOutput
	err := uc.profileRepo.Update(ctx, input.ProfileID, func(p *entity.Profile) error {
		sum := p.PercentageSum()
		if !sum.Equal(oneHundred) {
			return domainerror.NewEnvelopeError(
				domainerror.ErrCodePlanNotBalanced,
				fmt.Sprintf("envelope percentages sum to %s, expected exactly 100", sum.String()),
				domainerror.ErrPlanNotBalanced,
			)
		}
		p.PlanState = entity.PlanStateCommitted
		output.PlanState = p.PlanState
		output.PercentageSum = sum
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &output, nil
}
