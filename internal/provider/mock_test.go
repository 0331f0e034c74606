package provider

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockRatesProvider is a testify mock of RatesProvider.
type MockRatesProvider struct {
	mock.Mock
}

var _ RatesProvider = (*MockRatesProvider)(nil)

func (m *MockRatesProvider) GetRate(ctx context.Context, base, symbol string) (float64, time.Time, error) {
	args := m.Called(ctx, base, symbol)
	return args.Get(0).(float64), args.Get(1).(time.Time), args.Error(2)
}
