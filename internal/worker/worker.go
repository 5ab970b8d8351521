// Package worker runs the background job queue. Its single worker delivers
// outbound domain messages that were enqueued transactionally by the
// workflows.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"crm/internal/config"
	"crm/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Start registers the outbound message worker and starts consuming jobs from
// the queue. The returned client must be stopped on shutdown.
func Start(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewOutboundMessageWorker(cfg.Messaging.WebhookURL, &http.Client{
		Timeout: cfg.Messaging.Timeout,
	}))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: cfg.Messaging.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
