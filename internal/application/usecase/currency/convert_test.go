// Package currency provides display-only currency conversion backed by an
// external rate feed. Ledger amounts are never converted in place.
package currency

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/domain/entity"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/persistence"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/persistence/model"
)

// stubRateProvider serves a fixed table and counts fetches.
type stubRateProvider struct {
	rates   map[string]decimal.Decimal
	err     error
	fetches int
}

func (s *stubRateProvider) FetchRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	s.fetches++
	if s.err != nil {
		return nil, s.err
	}
	return s.rates, nil
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func seedProfile(t *testing.T, currencyCode string) (*persistence.ProfileStore, *entity.Profile) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := persistence.NewProfileStore(persistence.NewMemorySnapshotStore(), model.NewCodec(), logger)
	p := entity.NewProfile("Test", currencyCode, decimal.NewFromInt(500))
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
	return repo, p
}

func TestGetRatesUseCase(t *testing.T) {
	ctx := context.Background()
	provider := &stubRateProvider{rates: map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
	}}
	uc := NewGetRatesUseCase(provider)

	first, err := uc.Execute(ctx)
	if err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	if first.Cached {
		t.Error("first fetch must not report cached")
	}

	second, err := uc.Execute(ctx)
	if err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}
	if !second.Cached {
		t.Error("second fetch within the TTL must come from cache")
	}
	if provider.fetches != 1 {
		t.Errorf("expected one upstream fetch, got %d", provider.fetches)
	}

	t.Run("feed failures surface", func(t *testing.T) {
		failing := NewGetRatesUseCase(&stubRateProvider{err: errors.New("feed down")})
		if _, err := failing.Execute(ctx); err == nil {
			t.Fatal("expected the feed error")
		}
	})
}

func TestConvertUseCase(t *testing.T) {
	ctx := context.Background()
	table := map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": mustDecimal(t, "0.9"),
		"JPY": decimal.NewFromInt(150),
	}

	t.Run("converts through the USD pivot", func(t *testing.T) {
		repo, p := seedProfile(t, "EUR")
		uc := NewConvertUseCase(repo, NewGetRatesUseCase(&stubRateProvider{rates: table}))

		output, err := uc.Execute(ctx, ConvertInput{
			ProfileID: p.ID,
			Amount:    decimal.NewFromInt(90),
			ToCode:    "jpy",
		})
		if err != nil {
			t.Fatalf("convert failed: %v", err)
		}
		// 90 EUR / 0.9 = 100 USD * 150 = 15000 JPY.
		if !output.Converted.Equal(decimal.NewFromInt(15000)) {
			t.Errorf("expected 15000, got %s", output.Converted)
		}
		if output.FromCode != "EUR" || output.ToCode != "JPY" {
			t.Errorf("unexpected codes %s -> %s", output.FromCode, output.ToCode)
		}
		if output.Formatted == "" {
			t.Error("expected a formatted amount")
		}
	})

	t.Run("unknown ISO code is a validation error", func(t *testing.T) {
		repo, p := seedProfile(t, "EUR")
		uc := NewConvertUseCase(repo, NewGetRatesUseCase(&stubRateProvider{rates: table}))

		_, err := uc.Execute(ctx, ConvertInput{
			ProfileID: p.ID,
			Amount:    decimal.NewFromInt(1),
			ToCode:    "ZZZ",
		})
		var profileErr *domainerror.ProfileError
		if !errors.As(err, &profileErr) || profileErr.Code != domainerror.ErrCodeInvalidCurrencyCode {
			t.Fatalf("expected invalid currency code error, got %v", err)
		}
	})

	t.Run("missing rate for a known code", func(t *testing.T) {
		repo, p := seedProfile(t, "EUR")
		uc := NewConvertUseCase(repo, NewGetRatesUseCase(&stubRateProvider{rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(1),
			"EUR": mustDecimal(t, "0.9"),
		}}))

		_, err := uc.Execute(ctx, ConvertInput{
			ProfileID: p.ID,
			Amount:    decimal.NewFromInt(1),
			ToCode:    "CHF",
		})
		if !errors.Is(err, ErrUnknownRate) {
			t.Fatalf("expected ErrUnknownRate, got %v", err)
		}
	})
}
