package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ancientsvc/internal/dataset"
	"ancientsvc/internal/provider"
)

type mockLoader struct {
	mock.Mock
}

var _ dataset.Loader = (*mockLoader)(nil)

func (m *mockLoader) Load(ctx context.Context) (*dataset.Dataset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dataset.Dataset), args.Error(1)
}

type mockRatesProvider struct {
	mock.Mock
}

var _ provider.RatesProvider = (*mockRatesProvider)(nil)

func (m *mockRatesProvider) GetRate(ctx context.Context, base, symbol string) (float64, time.Time, error) {
	args := m.Called(ctx, base, symbol)
	return args.Get(0).(float64), args.Get(1).(time.Time), args.Error(2)
}

type mockRefresher struct {
	mock.Mock
}

var _ Refresher = (*mockRefresher)(nil)

func (m *mockRefresher) Refresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockEnqueuer struct {
	mock.Mock
}

var _ RefreshEnqueuer = (*mockEnqueuer)(nil)

func (m *mockEnqueuer) EnqueueRefreshTask(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
