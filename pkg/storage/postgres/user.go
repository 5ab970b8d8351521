package postgres

import (
	"context"
	"fmt"

	"crm/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const usersTable = "users"

// UserByID fetches a user row by id. Returns nil when the user does not exist.
func (p *PgSQL) UserByID(ctx context.Context, id int64) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id from pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// SaveUser upserts a user. A zero id means the user has never been persisted:
// the row is inserted and the generated id is written back onto the entity.
// Otherwise the row keyed by the id is updated.
func (p *PgSQL) SaveUser(ctx context.Context, user *domain.User) error {
	var row PgUser
	row.FromDomain(user)

	if user.ID == 0 {
		var inserted PgUser
		found, err := p.Builder.Insert(usersTable).
			Rows(row).
			Returning(&PgUser{}).
			Executor().ScanStructContext(ctx, &inserted)
		if err != nil {
			return fmt.Errorf("could not insert user into pg: %w", err)
		}
		if !found {
			return fmt.Errorf("insert into %s returned no row", usersTable)
		}

		user.ID = inserted.ID

		return nil
	}

	_, err := p.Builder.Update(usersTable).
		Set(goqu.Record{
			"email":              row.Email,
			"type":               row.Type,
			"is_email_confirmed": row.IsEmailConfirmed,
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update user in pg: %w", err)
	}

	return nil
}
