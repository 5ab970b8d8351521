package crm

import (
	"context"

	"crm/pkg/domain"
)

//go:generate mockgen -package mockcrm -source=interface.go -destination=mock/mockcrm.go *

// Service exposes the CRM workflows.
type Service interface {
	// ChangeUserEmail changes the email of the given user, reclassifying their
	// membership and adjusting the company employee counter when needed. The
	// returned string is ResultOK on success or the text of the violated
	// business rule; the error is reserved for infrastructure failures.
	ChangeUserEmail(ctx context.Context, userID int64, newEmail string) (string, error)
}

// Dispatcher routes domain events to their side effects once the transaction
// that produced them has committed.
type Dispatcher interface {
	Dispatch(ctx context.Context, events []domain.Event) error
}
