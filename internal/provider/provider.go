package provider

import (
	"context"
	"time"
)

// RatesProvider defines an interface for fetching exchange rates from external
// sources. Every call performs a fresh outbound lookup; resolved rates are
// never cached or retried by the provider itself.
type RatesProvider interface {
	GetRate(ctx context.Context, base, symbol string) (float64, time.Time, error)
}
