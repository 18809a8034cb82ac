// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateProvider fetches currency exchange rates from an external feed. Rates
// are USD-relative multipliers (1 USD = rate units of the code) and are used
// for on-screen conversion only; ledger amounts are never converted in place.
type RateProvider interface {
	// FetchRates returns the mapping from ISO currency code to its
	// USD-relative multiplier.
	FetchRates(ctx context.Context) (map[string]decimal.Decimal, error)
}
