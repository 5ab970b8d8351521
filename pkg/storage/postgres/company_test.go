package postgres_test

import (
	"context"
	"testing"

	"crm/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Company_RoundTrip(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	// empty table
	got, err := pgSQL.Company(ctx)
	require.NoError(t, err)
	require.Nil(t, got)

	company := domain.NewCompany("mycorp.com", 1)
	require.NoError(t, pgSQL.AddCompany(ctx, company))

	got, err = pgSQL.Company(ctx)
	require.NoError(t, err)
	require.Equal(t, company, got)

	company.NumberOfEmployees = 5
	require.NoError(t, pgSQL.SaveCompany(ctx, company))

	got, err = pgSQL.Company(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, got.NumberOfEmployees)
}
