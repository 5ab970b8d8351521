package domain

import (
	"errors"

	"crm/pkg/serrors"
)

// UserType classifies a user's membership. A user whose email belongs to the
// company's domain is an employee, everyone else is a customer.
type UserType string

const (
	// UserTypeCustomer marks a user with a non-corporate email address.
	UserTypeCustomer UserType = "Customer"
	// UserTypeEmployee marks a user whose email belongs to the company domain.
	UserTypeEmployee UserType = "Employee"
)

// ErrEmailConfirmed is the business-rule violation returned by CanChangeEmail
// once a user's email has been confirmed. Its message is what callers of the
// application service see as the operation result.
var ErrEmailConfirmed = errors.New("can't change email after it's confirmed")

// User is the aggregate responsible for the email-change rules. ID zero means
// the user has not been persisted yet; the repository assigns the generated id
// on first save.
type User struct {
	ID    int64
	Email string
	Type  UserType
	// IsEmailConfirmed is set at construction and never changes afterwards.
	// Once true, the email is frozen forever.
	IsEmailConfirmed bool
}

// NewUser constructs a user entity. Repositories use it to reconstitute users
// from stored rows; setup code uses it with ID zero for not-yet-persisted users.
func NewUser(id int64, email string, userType UserType, isEmailConfirmed bool) *User {
	return &User{
		ID:               id,
		Email:            email,
		Type:             userType,
		IsEmailConfirmed: isEmailConfirmed,
	}
}

// CanChangeEmail reports whether the email may still be changed. It returns
// ErrEmailConfirmed when the address has been confirmed, nil otherwise. Pure
// predicate, no side effects.
func (u *User) CanChangeEmail() error {
	if u.IsEmailConfirmed {
		return ErrEmailConfirmed
	}

	return nil
}

// ChangeEmail changes the user's email address and reclassifies their
// membership against the given company. It returns the domain events the
// mutation produced, in the order the state changes were applied: a
// MembershipTypeChanged first when the type flipped, then EmailChanged.
//
// Callers must check CanChangeEmail beforehand; invoking ChangeEmail on a
// confirmed email is a programmer error and fails with serrors.ErrPrecondition.
// Changing to the current email is a no-op and produces no events.
func (u *User) ChangeEmail(newEmail string, company *Company) ([]Event, error) {
	if err := u.CanChangeEmail(); err != nil {
		return nil, serrors.Wrap(serrors.ErrPrecondition, err, "change email precondition violated")
	}

	if u.Email == newEmail {
		return nil, nil
	}

	corporate, err := company.IsEmailCorporate(newEmail)
	if err != nil {
		return nil, err
	}

	newType := UserTypeCustomer
	if corporate {
		newType = UserTypeEmployee
	}

	var events []Event
	if u.Type != newType {
		delta := -1
		if newType == UserTypeEmployee {
			delta = 1
		}
		if err := company.ChangeNumberOfEmployees(delta); err != nil {
			return nil, err
		}

		events = append(events, MembershipTypeChanged{
			UserID:  u.ID,
			OldType: u.Type,
			NewType: newType,
		})
	}

	u.Email = newEmail
	u.Type = newType
	events = append(events, EmailChanged{
		UserID:   u.ID,
		NewEmail: newEmail,
	})

	return events, nil
}
