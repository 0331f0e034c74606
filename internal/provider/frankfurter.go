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

var _ RatesProvider = (*FrankfurterProvider)(nil)

// FrankfurterProvider fetches rates from the Frankfurter API. It needs no API
// key and serves as a fallback source behind the facade.
type FrankfurterProvider struct {
	baseURL string
	client  *http.Client
}

// NewFrankfurterProvider creates a new FrankfurterProvider.
func NewFrankfurterProvider(baseURL string, timeoutSec int) *FrankfurterProvider {
	if baseURL == "" {
		baseURL = "https://api.frankfurter.dev/v1"
	}
	return &FrankfurterProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

type frankfurterResponse struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

// GetRate retrieves the exchange rate between the specified base and symbol currencies.
func (p *FrankfurterProvider) GetRate(ctx context.Context, base, symbol string) (float64, time.Time, error) {
	reqURL := fmt.Sprintf("%s/latest?base=%s&symbols=%s",
		p.baseURL, url.QueryEscape(base), url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("frankfurter API request creation failed: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("frankfurter API request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, time.Time{}, fmt.Errorf("frankfurter API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result frankfurterResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to decode frankfurter API response: %w", err)
	}

	rate, ok := result.Rates[symbol]
	if !ok || rate == 0 {
		return 0, time.Time{}, fmt.Errorf("no rate for %s in frankfurter response", symbol)
	}

	// Parse date from response if possible, otherwise use current time
	resDate, err := time.Parse("2006-01-02", result.Date)
	if err != nil {
		return rate, time.Now().UTC(), nil
	}

	return rate, resDate.UTC(), nil
}
