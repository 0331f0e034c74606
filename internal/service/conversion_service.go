// Package service implements the conversion request orchestration: input
// normalization, rate resolution, equivalence computation, and dataset
// refresh scheduling.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ancientsvc/internal/convert"
	"ancientsvc/internal/dataset"
	"ancientsvc/internal/provider"
)

// Sentinel errors mapped to HTTP statuses at the API boundary.
var (
	// ErrRateUnavailable indicates the rate source call failed or returned no
	// usable rate. The whole request fails; no partial results are returned.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
	// ErrDatasetUnavailable indicates the historical dataset could not be
	// obtained or parsed.
	ErrDatasetUnavailable = errors.New("historical dataset unavailable")
	// ErrInternal indicates an internal server error.
	ErrInternal = errors.New("internal error")
)

// TaskTypeDatasetRefresh is the Asynq task type for dataset cache refresh jobs.
const TaskTypeDatasetRefresh = "dataset:refresh"

// ConversionServiceInterface defines the operations exposed to the HTTP layer
// and the background worker.
type ConversionServiceInterface interface {
	Convert(ctx context.Context, req ConversionRequest) (*ConversionResponse, error)
	RefreshDataset(ctx context.Context) error
	RequestDatasetRefresh(ctx context.Context) error
}

// ConversionRequest carries the raw request-surface inputs before coercion.
type ConversionRequest struct {
	Amount   string
	Currency string
	Mode     string
}

// ConversionResponse is the success payload for a conversion: the normalized
// inputs plus one result per dataset entry, in dataset order.
type ConversionResponse struct {
	Mode     convert.Mode     `json:"mode"`
	Currency string           `json:"currency"`
	Amount   float64          `json:"amount"`
	Results  []convert.Result `json:"results"`
}

// Refresher re-primes a cached dataset from its origin source.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshEnqueuer schedules a background dataset refresh task.
type RefreshEnqueuer interface {
	EnqueueRefreshTask(ctx context.Context) error
}

// ConversionService implements ConversionServiceInterface.
type ConversionService struct {
	loader    dataset.Loader
	refresher Refresher // nil when the dataset is served without a cache
	provider  provider.RatesProvider
	enqueuer  RefreshEnqueuer
	log       *zap.SugaredLogger
}

// NewConversionService creates a new ConversionService.
func NewConversionService(loader dataset.Loader, refresher Refresher, prov provider.RatesProvider, enqueuer RefreshEnqueuer, logger *zap.SugaredLogger) *ConversionService {
	return &ConversionService{
		loader:    loader,
		refresher: refresher,
		provider:  prov,
		enqueuer:  enqueuer,
		log:       logger,
	}
}

// Convert resolves the needed exchange rate and maps the dataset into result
// records. Failures before computation fail the whole request; the
// computation itself never fails once given a valid rate and mode.
func (s *ConversionService) Convert(ctx context.Context, req ConversionRequest) (*ConversionResponse, error) {
	mode, err := convert.ParseMode(req.Mode)
	if err != nil {
		return nil, err
	}
	currency := convert.NormalizeCurrency(req.Currency)
	amount := convert.ParseAmount(req.Amount)

	ds, err := s.loader.Load(ctx)
	if err != nil {
		s.log.Errorw("Dataset load failed", "error", err)
		return nil, ErrDatasetUnavailable
	}

	rate, fetchedAt, err := s.resolveRate(ctx, mode, currency)
	if err != nil {
		s.log.Errorw("Rate resolution failed", "mode", mode, "currency", currency, "error", err)
		return nil, ErrRateUnavailable
	}
	s.log.Infow("Rate resolved",
		"mode", mode,
		"currency", currency,
		"rate", rate,
		"fetched_at", fetchedAt.Format(time.RFC3339),
	)

	results := convert.ComputeAll(ds.Civilizations, amount, mode, currency, rate)
	return &ConversionResponse{
		Mode:     mode,
		Currency: currency,
		Amount:   amount,
		Results:  results,
	}, nil
}

// resolveRate picks the rate direction required by the mode: the request
// currency into USD for modern-to-historical, USD into the request currency
// for historical-to-modern.
func (s *ConversionService) resolveRate(ctx context.Context, mode convert.Mode, currency string) (float64, time.Time, error) {
	if mode == convert.ModeHistoricalToModern {
		return s.provider.GetRate(ctx, "USD", currency)
	}
	return s.provider.GetRate(ctx, currency, "USD")
}

// RefreshDataset reloads the origin dataset and re-primes the cache. Called by
// the background worker.
func (s *ConversionService) RefreshDataset(ctx context.Context) error {
	if s.refresher == nil {
		// No cache in front of the loader; verify the origin still loads.
		if _, err := s.loader.Load(ctx); err != nil {
			return fmt.Errorf("dataset reload: %w", err)
		}
		return nil
	}
	if err := s.refresher.Refresh(ctx); err != nil {
		return fmt.Errorf("dataset cache refresh: %w", err)
	}
	s.log.Infow("Dataset cache refreshed")
	return nil
}

// RequestDatasetRefresh enqueues an asynchronous dataset refresh task.
func (s *ConversionService) RequestDatasetRefresh(ctx context.Context) error {
	if err := s.enqueuer.EnqueueRefreshTask(ctx); err != nil {
		s.log.Errorw("Failed to enqueue dataset refresh", "error", err)
		return ErrInternal
	}
	s.log.Infow("Enqueued dataset refresh task")
	return nil
}
