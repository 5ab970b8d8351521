// Package crm implements the application workflows around users and their
// company. Each workflow runs inside a single database transaction and hands
// the resulting domain events to the dispatcher only after that transaction
// has committed.
package crm

import (
	"context"
	"fmt"

	"crm/pkg/logger"
	"crm/pkg/serrors"
	"crm/pkg/storage"

	"go.uber.org/zap"
)

// ResultOK is returned when a workflow completes without violating a
// business rule.
const ResultOK = "OK"

// crm is the concrete implementation of the Service interface. It coordinates
// the storage layer with the domain model and the event dispatcher.
type crm struct {
	// storage is the persistence layer providing transactional handles.
	storage storage.Storage
	// dispatcher receives domain events after a successful commit.
	dispatcher Dispatcher
}

// ChangeUserEmail loads the user and company, applies the email change on the
// domain model, persists both entities atomically and then dispatches the
// produced events. A violated business rule rolls the transaction back and is
// reported through the result string, not the error.
func (c crm) ChangeUserEmail(ctx context.Context, userID int64, newEmail string) (string, error) {
	tx, err := c.storage.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("could not begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	user, err := tx.UserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return "", serrors.With(serrors.ErrNotFound, "user not found")
	}

	// a violated rule is a valid outcome of the workflow, not a failure
	if err := user.CanChangeEmail(); err != nil {
		return err.Error(), nil
	}

	company, err := tx.Company(ctx)
	if err != nil {
		return "", fmt.Errorf("could not get company: %w", err)
	}
	if company == nil {
		return "", serrors.With(serrors.ErrNotFound, "company not found")
	}

	events, err := user.ChangeEmail(newEmail, company)
	if err != nil {
		return "", fmt.Errorf("could not change email: %w", err)
	}

	if err := tx.SaveCompany(ctx, company); err != nil {
		return "", fmt.Errorf("could not save company: %w", err)
	}

	if err := tx.SaveUser(ctx, user); err != nil {
		return "", fmt.Errorf("could not save user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("could not commit transaction: %w", err)
	}
	committed = true

	// the change is durable at this point; a failing handler must not undo it
	if err := c.dispatcher.Dispatch(ctx, events); err != nil {
		logger.Error(ctx, "could not dispatch events after commit",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	return ResultOK, nil
}

// New creates a Service backed by the provided storage and dispatcher.
func New(storage storage.Storage, dispatcher Dispatcher) Service {
	return &crm{
		storage:    storage,
		dispatcher: dispatcher,
	}
}
