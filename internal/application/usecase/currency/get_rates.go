// Package currency provides display-only currency conversion backed by an
// external rate feed. Ledger amounts are never converted in place.
package currency

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
)

// defaultCacheTTL bounds how long a fetched rate table is reused before the
// feed is asked again.
const defaultCacheTTL = 30 * time.Minute

// GetRatesOutput represents the fetched rate table.
type GetRatesOutput struct {
	Rates     map[string]decimal.Decimal // ISO code -> USD-relative multiplier
	FetchedAt time.Time
	Cached    bool
}

// GetRatesUseCase serves the USD-relative rate table with a small cache.
// Rates never touch the profile aggregate, so a stale response at worst
// overwrites a slightly newer table; that is acceptable for display use.
type GetRatesUseCase struct {
	provider adapter.RateProvider
	ttl      time.Duration

	mu        sync.Mutex
	rates     map[string]decimal.Decimal
	fetchedAt time.Time
}

// NewGetRatesUseCase creates a new GetRatesUseCase instance.
func NewGetRatesUseCase(provider adapter.RateProvider) *GetRatesUseCase {
	return &GetRatesUseCase{
		provider: provider,
		ttl:      defaultCacheTTL,
	}
}

// Execute returns the cached rate table, refreshing it from the feed when the
// cache is cold or expired.
func (uc *GetRatesUseCase) Execute(ctx context.Context) (*GetRatesOutput, error) {
	uc.mu.Lock()
	if uc.rates != nil && time.Since(uc.fetchedAt) < uc.ttl {
		output := &GetRatesOutput{Rates: uc.rates, FetchedAt: uc.fetchedAt, Cached: true}
		uc.mu.Unlock()
		return output, nil
	}
	uc.mu.Unlock()

	rates, err := uc.provider.FetchRates(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.rates = rates
	uc.fetchedAt = time.Now().UTC()
	output := &GetRatesOutput{Rates: uc.rates, FetchedAt: uc.fetchedAt}
	uc.mu.Unlock()

	return output, nil
}
