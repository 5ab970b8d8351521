package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"crm/pkg/domain"
	"crm/pkg/storage"
	"crm/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func countUsersWithEmail(t *testing.T, db *sql.DB, email string) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM users WHERE email = $1`, email)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// the transactional handle must be backed by a *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// nested Begin is rejected
	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	// Commit outside a transaction is an error
	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)

	// writes inside a committed transaction are durable
	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	user := domain.NewUser(0, "committed@mycorp.com", domain.UserTypeEmployee, false)
	require.NoError(t, tx.SaveUser(ctx, user))
	require.NotZero(t, user.ID, "insert should assign the generated id")

	require.NoError(t, tx.Commit())
	require.Equal(t, 1, countUsersWithEmail(t, db, "committed@mycorp.com"))

	// a handle is unusable after commit
	require.Error(t, tx.Commit())
}

func TestPgSQL_Rollback_DiscardsWrites(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	user := domain.NewUser(0, "discarded@mycorp.com", domain.UserTypeCustomer, false)
	require.NoError(t, tx.SaveUser(ctx, user))

	require.NoError(t, tx.Rollback())
	require.Equal(t, 0, countUsersWithEmail(t, db, "discarded@mycorp.com"))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	// nil from the callback commits
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		return s.SaveUser(ctx, domain.NewUser(0, "kept@mycorp.com", domain.UserTypeEmployee, false))
	})
	require.NoError(t, err)
	require.Equal(t, 1, countUsersWithEmail(t, db, "kept@mycorp.com"))

	// an error from the callback rolls back
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		if err := s.SaveUser(ctx, domain.NewUser(0, "dropped@mycorp.com", domain.UserTypeEmployee, false)); err != nil {
			return err
		}

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countUsersWithEmail(t, db, "dropped@mycorp.com"))
}
