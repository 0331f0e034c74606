package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ancientsvc/internal/service"
)

type mockConversionService struct {
	mock.Mock
}

var _ service.ConversionServiceInterface = (*mockConversionService)(nil)

func (m *mockConversionService) Convert(ctx context.Context, req service.ConversionRequest) (*service.ConversionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ConversionResponse), args.Error(1)
}

func (m *mockConversionService) RefreshDataset(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockConversionService) RequestDatasetRefresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
