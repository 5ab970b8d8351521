package domain

import (
	"strings"

	"crm/pkg/serrors"
)

// Company is the single company record the CRM serves. DomainName identifies
// it and doubles as the corporate-email domain; NumberOfEmployees is the
// aggregate counter kept in sync with user membership types.
type Company struct {
	DomainName        string
	NumberOfEmployees int
}

// NewCompany constructs a company entity.
func NewCompany(domainName string, numberOfEmployees int) *Company {
	return &Company{
		DomainName:        domainName,
		NumberOfEmployees: numberOfEmployees,
	}
}

// ChangeNumberOfEmployees adjusts the employee counter by delta. The counter
// must never go negative; a breaching delta fails before any change is applied.
func (c *Company) ChangeNumberOfEmployees(delta int) error {
	if c.NumberOfEmployees+delta < 0 {
		return serrors.With(serrors.ErrInvariant,
			"number of employees can't go negative: have %d, delta %d", c.NumberOfEmployees, delta)
	}

	c.NumberOfEmployees += delta

	return nil
}

// IsEmailCorporate reports whether the email's domain portion (everything
// after the first '@') matches the company domain. An address without '@' is
// malformed input, not a business-rule outcome.
func (c *Company) IsEmailCorporate(email string) (bool, error) {
	_, emailDomain, found := strings.Cut(email, "@")
	if !found {
		return false, serrors.With(serrors.ErrBadRequest, "malformed email %q: missing @", email)
	}

	return emailDomain == c.DomainName, nil
}
