// Package dispatcher routes domain events to their side effects after the
// transaction producing them has committed.
package dispatcher

import (
	"context"
	"errors"
	"fmt"

	"crm/pkg/domain"
	"crm/pkg/domlog"
	"crm/pkg/logger"
	"crm/pkg/messagebus"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Dispatcher fans domain events out to external systems. Events must only be
// handed to it after the transaction that produced them has committed;
// handlers trigger irreversible side effects.
type Dispatcher struct {
	bus          *messagebus.MessageBus
	domainLogger domlog.DomainLogger

	dispatched metric.Int64Counter
	failed     metric.Int64Counter
}

// New creates a Dispatcher publishing through the given bus and audit logger.
func New(bus *messagebus.MessageBus, domainLogger domlog.DomainLogger, meter metric.Meter) (*Dispatcher, error) {
	dispatched, err := meter.Int64Counter("crm_events_dispatched_total",
		metric.WithDescription("Number of domain events handed to a handler."))
	if err != nil {
		return nil, fmt.Errorf("could not create dispatched counter: %w", err)
	}

	failed, err := meter.Int64Counter("crm_events_failed_total",
		metric.WithDescription("Number of domain events whose handler returned an error."))
	if err != nil {
		return nil, fmt.Errorf("could not create failed counter: %w", err)
	}

	return &Dispatcher{
		bus:          bus,
		domainLogger: domainLogger,
		dispatched:   dispatched,
		failed:       failed,
	}, nil
}

// Dispatch runs the handler for each event in order. A failing handler does
// not stop the remaining events; all handler errors are joined into the
// returned error.
func (d *Dispatcher) Dispatch(ctx context.Context, events []domain.Event) error {
	var errs []error

	for _, event := range events {
		d.dispatched.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", event.Kind())))

		if err := d.dispatch(ctx, event); err != nil {
			d.failed.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", event.Kind())))
			logger.Error(ctx, "could not dispatch domain event",
				zap.String("kind", event.Kind()),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("dispatching %s: %w", event.Kind(), err))
		}
	}

	return errors.Join(errs...)
}

func (d *Dispatcher) dispatch(ctx context.Context, event domain.Event) error {
	switch e := event.(type) {
	case domain.EmailChanged:
		return d.bus.SendEmailChangedMessage(ctx, e.UserID, e.NewEmail)
	case domain.MembershipTypeChanged:
		d.domainLogger.UserTypeHasChanged(ctx, e.UserID, e.OldType, e.NewType)

		return nil
	default:
		// unknown events are ignored so that new event types can be introduced
		// before their handlers ship
		return nil
	}
}
