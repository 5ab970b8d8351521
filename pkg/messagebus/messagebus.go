// Package messagebus sends plain-text messages to external systems. Domain
// messages are formatted here and handed to a Bus implementation for
// delivery.
//
//go:generate mockgen -package mockmessagebus -source=messagebus.go -destination=mock/mockbus.go *
package messagebus

import (
	"context"
	"fmt"
)

// Bus delivers an already-formatted message to the outside world.
type Bus interface {
	// Send hands the message over for delivery. Implementations may deliver
	// asynchronously; a nil error only means the message was accepted.
	Send(ctx context.Context, message string) error
}

// MessageBus formats domain notifications into their wire text and sends them
// over the underlying bus.
type MessageBus struct {
	bus Bus
}

// New creates a MessageBus on top of the given bus.
func New(bus Bus) *MessageBus {
	return &MessageBus{bus: bus}
}

// SendEmailChangedMessage notifies external systems that a user's email
// changed. The message format is part of the contract with downstream
// consumers and must not change.
func (m *MessageBus) SendEmailChangedMessage(ctx context.Context, userID int64, newEmail string) error {
	return m.bus.Send(ctx, fmt.Sprintf("Type: USER EMAIL CHANGED; Id: %d; NewEmail: %s", userID, newEmail))
}
