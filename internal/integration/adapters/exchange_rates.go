package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
)

// ratesResponse mirrors the open.er-api.com latest-rates payload.
type ratesResponse struct {
	Result string                     `json:"result"`
	Base   string                     `json:"base_code"`
	Rates  map[string]json.RawMessage `json:"rates"`
}

// exchangeRateProvider implements adapter.RateProvider against an HTTP
// exchange rate feed.
type exchangeRateProvider struct {
	feedURL string
	client  *http.Client
}

// NewExchangeRateProvider creates a rate provider for the given feed URL.
func NewExchangeRateProvider(feedURL string, client *http.Client) adapter.RateProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &exchangeRateProvider{
		feedURL: feedURL,
		client:  client,
	}
}

// FetchRates returns the USD-relative multiplier for each currency code the
// feed reports.
func (p *exchangeRateProvider) FetchRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates feed returned status %d", resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode rates response: %w", err)
	}
	if body.Result != "" && body.Result != "success" {
		return nil, fmt.Errorf("rates feed reported result %q", body.Result)
	}

	rates := make(map[string]decimal.Decimal, len(body.Rates))
	for code, raw := range body.Rates {
		// Rates arrive as JSON numbers; parse through decimal to avoid
		// float rounding on the way in.
		rate, err := decimal.NewFromString(string(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid rate for %s: %w", code, err)
		}
		rates[code] = rate
	}
	return rates, nil
}
