// Package profile contains profile lifecycle use cases.
package profile

import (
	"context"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
)

// ProfileOutput represents the profile identity in use case outputs.
type ProfileOutput struct {
	ID           uuid.UUID
	Name         string
	CurrencyCode string
	Target       decimal.Decimal
	Revision     uint64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ToProfileOutput converts a profile entity to its output form.
func ToProfileOutput(p *entity.Profile) *ProfileOutput {
	return &ProfileOutput{
		ID:           p.ID,
		Name:         p.Name,
		CurrencyCode: p.CurrencyCode,
		Target:       p.Target,
		Revision:     p.Revision,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// CreateProfileInput represents the input for profile creation.
type CreateProfileInput struct {
	Name         string
	CurrencyCode string
	Target       decimal.Decimal
}

// CreateProfileOutput represents the output of profile creation.
type CreateProfileOutput struct {
	Profile *ProfileOutput
}

// CreateProfileUseCase handles profile creation logic.
type CreateProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewCreateProfileUseCase creates a new CreateProfileUseCase instance.
func NewCreateProfileUseCase(profileRepo adapter.ProfileRepository) *CreateProfileUseCase {
	return &CreateProfileUseCase{profileRepo: profileRepo}
}

// Execute creates an empty profile aggregate. The currency code must be a
// known ISO 4217 code; all ledger amounts stay in this currency.
func (uc *CreateProfileUseCase) Execute(ctx context.Context, input CreateProfileInput) (*CreateProfileOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeEmptyProfileName,
			"profile name cannot be empty",
			domainerror.ErrEmptyProfileName,
		)
	}

	code := strings.ToUpper(strings.TrimSpace(input.CurrencyCode))
	if money.GetCurrency(code) == nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeInvalidCurrencyCode,
			"currency code is not a known ISO 4217 code",
			domainerror.ErrInvalidCurrencyCode,
		)
	}

	p := entity.NewProfile(name, code, input.Target)
	if err := uc.profileRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	return &CreateProfileOutput{Profile: ToProfileOutput(p)}, nil
}
