package messagebus

import (
	"context"
	"fmt"

	"crm/pkg/storage"

	"github.com/riverqueue/river"
)

// RiverBus is a Bus that enqueues messages as durable jobs instead of
// delivering them inline. When the enqueue happens on a transactional storage
// handle the message only becomes visible once that transaction commits, so a
// rolled back workflow never leaks messages.
type RiverBus struct {
	jobs        storage.JobStorage
	maxAttempts int
}

// NewRiverBus creates a RiverBus enqueuing through the given job storage.
// maxAttempts bounds how often delivery of a single message is retried.
func NewRiverBus(jobs storage.JobStorage, maxAttempts int) *RiverBus {
	return &RiverBus{jobs: jobs, maxAttempts: maxAttempts}
}

// Send enqueues the message for background delivery.
func (b *RiverBus) Send(ctx context.Context, message string) error {
	_, err := b.jobs.AddJob(ctx, JobArgs{Message: message}, &river.InsertOpts{
		MaxAttempts: b.maxAttempts,
	})
	if err != nil {
		return fmt.Errorf("could not enqueue outbound message: %w", err)
	}

	return nil
}
