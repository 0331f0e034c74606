// Package provider implements external rate sources for currency conversion.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var _ RatesProvider = (*FXRatesAPIProvider)(nil)

// FXRatesAPIProvider fetches rates from the fxratesapi.com API.
type FXRatesAPIProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewFXRatesAPIProvider creates a new FXRatesAPIProvider with the given configuration.
func NewFXRatesAPIProvider(baseURL, apiKey string, timeoutSec int) *FXRatesAPIProvider {
	if baseURL == "" {
		baseURL = "https://api.fxratesapi.com"
	}
	return &FXRatesAPIProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

// latestURL forms the API URL for fetching the rate.
func (p *FXRatesAPIProvider) latestURL(base, symbol string) string {
	return fmt.Sprintf("%s/latest?base=%s&symbols=%s",
		p.baseURL, url.QueryEscape(base), url.QueryEscape(symbol))
}

// fxratesapi latest API response structure
type fxRatesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// GetRate fetches the rate converting one unit of base into symbol. A missing
// or zero rate for the requested symbol is a resolution failure.
func (p *FXRatesAPIProvider) GetRate(ctx context.Context, base, symbol string) (float64, time.Time, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.latestURL(base, symbol), http.NoBody)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("fxratesapi request creation failed: %w", err)
	}
	req.Header.Set("apikey", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("fxratesapi request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, time.Time{}, fmt.Errorf("fxratesapi returned status %d: %s", resp.StatusCode, string(body))
	}

	var result fxRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to decode fxratesapi response: %w", err)
	}

	rate, ok := result.Rates[symbol]
	if !ok || rate == 0 {
		return 0, time.Time{}, fmt.Errorf("no rate for %s in fxratesapi response", symbol)
	}
	return rate, time.Now().UTC(), nil
}
