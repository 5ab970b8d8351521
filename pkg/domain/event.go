package domain

// Event is a domain event produced by a mutation on an aggregate. The variant
// set is closed in the current design; consumers route on the concrete type
// (or Kind) and must ignore kinds they don't know. Events are immutable value
// records with structural equality and carry no identity of their own.
type Event interface {
	// Kind returns the event's tag, used for routing and metrics labels.
	Kind() string
}

// EmailChanged records that a user's email address changed.
type EmailChanged struct {
	UserID   int64
	NewEmail string
}

// Kind implements Event.
func (EmailChanged) Kind() string { return "EmailChanged" }

// MembershipTypeChanged records that a user switched between customer and
// employee membership.
type MembershipTypeChanged struct {
	UserID  int64
	OldType UserType
	NewType UserType
}

// Kind implements Event.
func (MembershipTypeChanged) Kind() string { return "MembershipTypeChanged" }
