package worker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"crm/pkg/logger"
	"crm/pkg/messagebus"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// OutboundMessageWorker delivers enqueued domain messages by POSTing their
// text to a configured webhook. Delivery is at-least-once: a non-2xx response
// or transport error makes the job retry with River's backoff until its
// MaxAttempts is exhausted.
type OutboundMessageWorker struct {
	river.WorkerDefaults[messagebus.JobArgs]

	// webhookURL is the endpoint messages are POSTed to.
	webhookURL string
	// client is the HTTP client used for deliveries. Its timeout bounds a
	// single attempt.
	client *http.Client
}

// NewOutboundMessageWorker constructs an OutboundMessageWorker delivering to
// the given webhook URL.
func NewOutboundMessageWorker(webhookURL string, client *http.Client) *OutboundMessageWorker {
	return &OutboundMessageWorker{
		webhookURL: webhookURL,
		client:     client,
	}
}

// Work delivers a single message.
func (w *OutboundMessageWorker) Work(ctx context.Context, job *river.Job[messagebus.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, strings.NewReader(job.Args.Message))
	if err != nil {
		return fmt.Errorf("could not create delivery request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	res, err := w.client.Do(req)
	if err != nil {
		logger.Error(ctx, "error delivering outbound message", zap.Error(err))

		return fmt.Errorf("could not deliver message: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, res.Body)
		_ = res.Body.Close()
	}()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		logger.Error(ctx, "webhook rejected outbound message", zap.Int("status_code", res.StatusCode))

		return fmt.Errorf("webhook returned status %d", res.StatusCode)
	}

	logger.Info(ctx, "outbound message delivered")

	return nil
}
