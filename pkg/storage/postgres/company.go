package postgres

import (
	"context"
	"fmt"

	"crm/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const companiesTable = "companies"

// Company fetches the single company row. Returns nil when it has not been
// created yet.
func (p *PgSQL) Company(ctx context.Context) (*domain.Company, error) {
	var row PgCompany
	found, err := p.Builder.From(companiesTable).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch company from pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// SaveCompany updates the company row keyed by its domain name.
func (p *PgSQL) SaveCompany(ctx context.Context, company *domain.Company) error {
	var row PgCompany
	row.FromDomain(company)

	_, err := p.Builder.Update(companiesTable).
		Set(goqu.Record{
			"number_of_employees": row.NumberOfEmployees,
		}).
		Where(goqu.I("domain_name").Eq(row.DomainName)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update company in pg: %w", err)
	}

	return nil
}

// AddCompany inserts the company row. Used at setup time only; the table is
// expected to hold exactly one record.
func (p *PgSQL) AddCompany(ctx context.Context, company *domain.Company) error {
	var row PgCompany
	row.FromDomain(company)

	_, err := p.Builder.Insert(companiesTable).
		Rows(row).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not insert company into pg: %w", err)
	}

	return nil
}
