package postgres

import (
	"crm/pkg/domain"
)

// PgUser is the row shape of the users table.
type PgUser struct {
	ID               int64  `db:"id"    goqu:"skipinsert"`
	Email            string `db:"email"`
	Type             string `db:"type"`
	IsEmailConfirmed bool   `db:"is_email_confirmed"`
}

func (p *PgUser) ToDomain() *domain.User {
	return domain.NewUser(p.ID, p.Email, domain.UserType(p.Type), p.IsEmailConfirmed)
}

func (p *PgUser) FromDomain(user *domain.User) {
	*p = PgUser{
		ID:               user.ID,
		Email:            user.Email,
		Type:             string(user.Type),
		IsEmailConfirmed: user.IsEmailConfirmed,
	}
}

// PgCompany is the row shape of the single-row companies table.
type PgCompany struct {
	DomainName        string `db:"domain_name"`
	NumberOfEmployees int    `db:"number_of_employees"`
}

func (p *PgCompany) ToDomain() *domain.Company {
	return domain.NewCompany(p.DomainName, p.NumberOfEmployees)
}

func (p *PgCompany) FromDomain(company *domain.Company) {
	*p = PgCompany{
		DomainName:        company.DomainName,
		NumberOfEmployees: company.NumberOfEmployees,
	}
}
