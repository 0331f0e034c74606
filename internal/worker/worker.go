// Package worker implements background task handling for dataset maintenance.
package worker

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"ancientsvc/internal/service"
)

// NewDatasetRefreshHandler returns a function that handles dataset refresh tasks.
func NewDatasetRefreshHandler(svc service.ConversionServiceInterface, logger *zap.SugaredLogger) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		if err := svc.RefreshDataset(ctx); err != nil {
			logger.Errorw("Dataset refresh failed", "type", t.Type(), "error", err)
			return err
		}

		logger.Infow("Dataset refresh completed", "type", t.Type())
		return nil
	}
}

// AsynqRefreshEnqueuer enqueues dataset refresh tasks with the configured
// retry limit and task timeout.
type AsynqRefreshEnqueuer struct {
	client   *asynq.Client
	maxRetry int
	timeout  time.Duration
}

var _ service.RefreshEnqueuer = (*AsynqRefreshEnqueuer)(nil)

// NewAsynqRefreshEnqueuer creates a new AsynqRefreshEnqueuer.
func NewAsynqRefreshEnqueuer(client *asynq.Client, maxRetry int, timeout time.Duration) *AsynqRefreshEnqueuer {
	return &AsynqRefreshEnqueuer{
		client:   client,
		maxRetry: maxRetry,
		timeout:  timeout,
	}
}

// EnqueueRefreshTask enqueues a dataset refresh task. The task carries no
// payload; the handler always refreshes the configured dataset source.
func (e *AsynqRefreshEnqueuer) EnqueueRefreshTask(ctx context.Context) error {
	task := asynq.NewTask(service.TaskTypeDatasetRefresh, nil,
		asynq.MaxRetry(e.maxRetry),
		asynq.Timeout(e.timeout),
	)

	_, err := e.client.EnqueueContext(ctx, task)
	return err
}
