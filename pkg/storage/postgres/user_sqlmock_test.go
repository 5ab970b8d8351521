package postgres_test

import (
	"context"
	"testing"

	"crm/pkg/domain"
	"crm/pkg/storage/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/require"
)

func newMockedPgSQL(t *testing.T) (*postgres.PgSQL, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &postgres.PgSQL{
		DB:      db,
		Builder: goqu.New("postgres", db),
	}, mock
}

func TestPgSQL_UserByID_QueriesUsersTable(t *testing.T) {
	pg, mock := newMockedPgSQL(t)

	mock.ExpectQuery(`SELECT .+ FROM "users" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "type", "is_email_confirmed"}).
			AddRow(int64(7), "user@mycorp.com", "Employee", false))

	got, err := pg.UserByID(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, domain.NewUser(7, "user@mycorp.com", domain.UserTypeEmployee, false), got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_SaveUser_InsertsWhenIDIsZero(t *testing.T) {
	pg, mock := newMockedPgSQL(t)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "type", "is_email_confirmed"}).
			AddRow(int64(42), "user@mycorp.com", "Employee", false))

	user := domain.NewUser(0, "user@mycorp.com", domain.UserTypeEmployee, false)
	require.NoError(t, pg.SaveUser(context.Background(), user))
	require.Equal(t, int64(42), user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_SaveUser_UpdatesWhenIDIsSet(t *testing.T) {
	pg, mock := newMockedPgSQL(t)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user := domain.NewUser(7, "new@gmail.com", domain.UserTypeCustomer, false)
	require.NoError(t, pg.SaveUser(context.Background(), user))
	require.NoError(t, mock.ExpectationsWereMet())
}
