// Package wellness derives the financial wellness score and its narrative
// tips from average cashflow versus the profile target.
package wellness

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/application/usecase/ledger"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
)

var oneHundred = decimal.NewFromInt(100)

// DisplayCeiling is the upper bound shown to the user. The unclamped value is
// retained so overshooting cashflow still routes to the exceeds-target
// narrative.
const DisplayCeiling = 100

// ScoreResult holds the computed wellness score.
type ScoreResult struct {
	Display       int // Raw clamped to DisplayCeiling
	Raw           int // round(avgCashflow / target * 100), unclamped
	ExceedsTarget bool
}

// Score computes the wellness score of an average cashflow against a target.
// A zero or negative target has no defined ratio and fails instead of
// producing a nonsense value.
func Score(avgCashflow, target decimal.Decimal) (*ScoreResult, error) {
	if target.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewWellnessError(
			domainerror.ErrCodeInvalidWellnessTarget,
			"wellness target must be positive",
			domainerror.ErrInvalidWellnessTarget,
		)
	}

	raw := int(avgCashflow.Div(target).Mul(oneHundred).Round(0).IntPart())
	display := raw
	if display > DisplayCeiling {
		display = DisplayCeiling
	}

	return &ScoreResult{
		Display:       display,
		Raw:           raw,
		ExceedsTarget: avgCashflow.GreaterThanOrEqual(target),
	}, nil
}

// ComputeWellnessInput represents the input for the wellness computation.
type ComputeWellnessInput struct {
	ProfileID uuid.UUID
}

// ComputeWellnessOutput represents the computed score and narrative.
type ComputeWellnessOutput struct {
	Score            *ScoreResult
	Band             Band
	PrimaryTip       string
	SupplementaryTip string
	AvgCashflow      decimal.Decimal
	Target           decimal.Decimal
}

// ComputeWellnessUseCase derives the wellness score and tips for a profile.
type ComputeWellnessUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewComputeWellnessUseCase creates a new ComputeWellnessUseCase instance.
func NewComputeWellnessUseCase(profileRepo adapter.ProfileRepository) *ComputeWellnessUseCase {
	return &ComputeWellnessUseCase{profileRepo: profileRepo}
}

// Execute computes the score from the monthly averages and the profile target
// and picks the narrative tips. Tip selection is deliberately random; only the
// band routing is deterministic.
func (uc *ComputeWellnessUseCase) Execute(ctx context.Context, input ComputeWellnessInput) (*ComputeWellnessOutput, error) {
	var avgCashflow, target decimal.Decimal
	err := uc.profileRepo.View(ctx, input.ProfileID, func(p *entity.Profile) error {
		avgCashflow = ledger.Averages(p).AvgCashflow
		target = p.Target
		return nil
	})
	if err != nil {
		return nil, err
	}

	score, err := Score(avgCashflow, target)
	if err != nil {
		return nil, err
	}

	primary, supplementary := TipFor(score, avgCashflow, target)

	return &ComputeWellnessOutput{
		Score:            score,
		Band:             BandFor(score.Display),
		PrimaryTip:       primary,
		SupplementaryTip: supplementary,
		AvgCashflow:      avgCashflow,
		Target:           target,
	}, nil
}
