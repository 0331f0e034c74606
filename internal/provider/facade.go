package provider

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var _ RatesProvider = (*ExchangeProviderFacade)(nil)

// ExchangeProviderFacade calls configured rate sources sequentially until one
// succeeds. This is source redundancy for a single resolution, not a retry of
// any individual source.
type ExchangeProviderFacade struct {
	providers []RatesProvider
}

// NewExchangeProviderFacade creates a new ExchangeProviderFacade with the given list of providers.
func NewExchangeProviderFacade(providers ...RatesProvider) *ExchangeProviderFacade {
	return &ExchangeProviderFacade{
		providers: providers,
	}
}

// GetRate calls providers sequentially until one succeeds.
func (p *ExchangeProviderFacade) GetRate(ctx context.Context, base, symbol string) (float64, time.Time, error) {
	var errs []error
	for _, prov := range p.providers {
		rate, timestamp, err := prov.GetRate(ctx, base, symbol)
		if err == nil {
			return rate, timestamp, nil
		}
		errs = append(errs, err)
	}

	return 0, time.Time{}, fmt.Errorf("all providers failed: %w", errors.Join(errs...))
}
