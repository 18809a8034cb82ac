// Package currency provides display-only currency conversion backed by an
// external rate feed. Ledger amounts are never converted in place.
package currency

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
)

// ErrUnknownRate is returned when the feed carries no rate for a code.
var ErrUnknownRate = errors.New("no rate for currency code")

// ConvertInput represents the input for a display conversion.
type ConvertInput struct {
	ProfileID uuid.UUID
	Amount    decimal.Decimal // In the profile's currency
	ToCode    string
}

// ConvertOutput represents a converted, formatted amount.
type ConvertOutput struct {
	FromCode  string
	ToCode    string
	Amount    decimal.Decimal
	Converted decimal.Decimal
	Formatted string // Converted amount rendered in the target currency
}

// ConvertUseCase converts a profile-currency amount for on-screen display.
type ConvertUseCase struct {
	profileRepo adapter.ProfileRepository
	rates       *GetRatesUseCase
}

// NewConvertUseCase creates a new ConvertUseCase instance.
func NewConvertUseCase(profileRepo adapter.ProfileRepository, rates *GetRatesUseCase) *ConvertUseCase {
	return &ConvertUseCase{
		profileRepo: profileRepo,
		rates:       rates,
	}
}

// Execute converts through the USD-relative multipliers:
// usd = amount / rate(from); converted = usd * rate(to).
func (uc *ConvertUseCase) Execute(ctx context.Context, input ConvertInput) (*ConvertOutput, error) {
	toCode := strings.ToUpper(strings.TrimSpace(input.ToCode))
	toCurrency := money.GetCurrency(toCode)
	if toCurrency == nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeInvalidCurrencyCode,
			"currency code is not a known ISO 4217 code",
			domainerror.ErrInvalidCurrencyCode,
		)
	}

	var fromCode string
	err := uc.profileRepo.View(ctx, input.ProfileID, func(p *entity.Profile) error {
		fromCode = p.CurrencyCode
		return nil
	})
	if err != nil {
		return nil, err
	}

	table, err := uc.rates.Execute(ctx)
	if err != nil {
		return nil, err
	}

	fromRate, ok := table.Rates[fromCode]
	if !ok || fromRate.IsZero() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRate, fromCode)
	}
	toRate, ok := table.Rates[toCode]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRate, toCode)
	}

	converted := input.Amount.Div(fromRate).Mul(toRate)
	minor := converted.Shift(int32(toCurrency.Fraction)).Round(0).IntPart()

	return &ConvertOutput{
		FromCode:  fromCode,
		ToCode:    toCode,
		Amount:    input.Amount,
		Converted: converted,
		Formatted: money.New(minor, toCode).Display(),
	}, nil
}
