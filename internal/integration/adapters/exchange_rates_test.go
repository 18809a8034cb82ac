// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

func TestExchangeRateProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("parses the feed payload into decimals", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"result": "success",
				"base_code": "USD",
				"rates": {"USD": 1, "EUR": 0.9013, "JPY": 148.27}
			}`))
		}))
		defer server.Close()

		provider := NewExchangeRateProvider(server.URL, server.Client())
		rates, err := provider.FetchRates(ctx)
		if err != nil {
			t.Fatalf("fetch failed: %v", err)
		}
		if len(rates) != 3 {
			t.Fatalf("expected 3 rates, got %d", len(rates))
		}
		// Decimal parsing must keep the feed value exactly.
		if rates["EUR"].String() != "0.9013" {
			t.Errorf("expected EUR rate 0.9013, got %s", rates["EUR"])
		}
		if !rates["USD"].Equal(decimal.NewFromInt(1)) {
			t.Errorf("expected USD rate 1, got %s", rates["USD"])
		}
	})

	t.Run("non-200 responses fail", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		provider := NewExchangeRateProvider(server.URL, server.Client())
		if _, err := provider.FetchRates(ctx); err == nil {
			t.Fatal("expected an error on 503")
		}
	})

	t.Run("error result field fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"result": "error", "error-type": "invalid-key"}`))
		}))
		defer server.Close()

		provider := NewExchangeRateProvider(server.URL, server.Client())
		if _, err := provider.FetchRates(ctx); err == nil {
			t.Fatal("expected an error on failed result")
		}
	})

	t.Run("malformed rate values fail", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"result": "success", "rates": {"EUR": "abc"}}`))
		}))
		defer server.Close()

		provider := NewExchangeRateProvider(server.URL, server.Client())
		if _, err := provider.FetchRates(ctx); err == nil {
			t.Fatal("expected an error on a malformed rate")
		}
	})

	t.Run("cancelled context aborts the request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		provider := NewExchangeRateProvider(server.URL, server.Client())
		if _, err := provider.FetchRates(cancelled); err == nil {
			t.Fatal("expected an error on cancelled context")
		}
	})
}
