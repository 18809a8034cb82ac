// Package profile contains profile lifecycle use cases.
package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
)

// ResetProfileInput represents the input for resetting a profile.
type ResetProfileInput struct {
	ProfileID uuid.UUID
}

// ResetProfileUseCase handles the full-clear logic.
type ResetProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewResetProfileUseCase creates a new ResetProfileUseCase instance.
func NewResetProfileUseCase(profileRepo adapter.ProfileRepository) *ResetProfileUseCase {
	return &ResetProfileUseCase{profileRepo: profileRepo}
}

// Execute empties every collection of the aggregate while keeping the profile
// identity (name, currency, target).
func (uc *ResetProfileUseCase) Execute(ctx context.Context, input ResetProfileInput) error {
	return uc.profileRepo.Update(ctx, input.ProfileID, func(p *entity.Profile) error {
		p.Clear()
		return nil
	})
}
