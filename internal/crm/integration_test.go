package crm_test

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"crm/internal/crm"
	"crm/pkg/dispatcher"
	"crm/pkg/domain"
	"crm/pkg/domlog"
	"crm/pkg/logger"
	"crm/pkg/messagebus"
	"crm/pkg/storage/postgres"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// capturingBus collects sent messages in memory so the full workflow can run
// without a queue backend.
type capturingBus struct {
	messages []string
}

func (b *capturingBus) Send(_ context.Context, message string) error {
	b.messages = append(b.messages, message)

	return nil
}

func setupIntegration(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mappedPort, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           "postgres",
		Password:           "postgres",
		Host:               host,
		Port:               mappedPort.Int(),
		Database:           "testdb",
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 5,
	})
	require.NoError(t, err)

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(pgSQL.DB.(*sql.DB), filepath.Join("..", "..", "migrations")))

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = container.Terminate(ctx)
	}
}

func TestChangeUserEmail_EndToEnd(t *testing.T) {
	pgSQL, cleanup := setupIntegration(t)
	defer cleanup()

	ctx := context.Background()
	logger.Setup(logger.DevelopmentEnvironment)

	// seed the company and a corporate employee
	company := domain.NewCompany("mycorp.com", 1)
	require.NoError(t, pgSQL.AddCompany(ctx, company))

	user := domain.NewUser(0, "user@mycorp.com", domain.UserTypeEmployee, false)
	require.NoError(t, pgSQL.SaveUser(ctx, user))

	// assemble the real workflow with an in-memory bus and an observed logger
	bus := &capturingBus{}
	d, err := dispatcher.New(messagebus.New(bus), domlog.NewZapDomainLogger(), noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	service := crm.New(pgSQL, d)

	core, logs := observer.New(zap.InfoLevel)
	ctx = logger.WithLogger(ctx, zap.New(core))

	result, err := service.ChangeUserEmail(ctx, user.ID, "new@gmail.com")
	require.NoError(t, err)
	require.Equal(t, crm.ResultOK, result)

	// user is reclassified and persisted
	reloaded, err := pgSQL.UserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "new@gmail.com", reloaded.Email)
	require.Equal(t, domain.UserTypeCustomer, reloaded.Type)

	// the employee counter follows the reclassification
	reloadedCompany, err := pgSQL.Company(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, reloadedCompany.NumberOfEmployees)

	// exactly one message went out, in the agreed wire format
	require.Equal(t,
		[]string{fmt.Sprintf("Type: USER EMAIL CHANGED; Id: %d; NewEmail: new@gmail.com", user.ID)},
		bus.messages)

	// and the membership change was audited
	audit := logs.FilterMessage(fmt.Sprintf("User %d changed type from Employee to Customer", user.ID))
	require.Equal(t, 1, audit.Len())
}

func TestChangeUserEmail_EndToEnd_ConfirmedEmailChangesNothing(t *testing.T) {
	pgSQL, cleanup := setupIntegration(t)
	defer cleanup()

	ctx := context.Background()
	logger.Setup(logger.DevelopmentEnvironment)

	company := domain.NewCompany("mycorp.com", 1)
	require.NoError(t, pgSQL.AddCompany(ctx, company))

	user := domain.NewUser(0, "user@mycorp.com", domain.UserTypeEmployee, true)
	require.NoError(t, pgSQL.SaveUser(ctx, user))

	bus := &capturingBus{}
	d, err := dispatcher.New(messagebus.New(bus), domlog.NewZapDomainLogger(), noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	service := crm.New(pgSQL, d)

	result, err := service.ChangeUserEmail(ctx, user.ID, "new@gmail.com")
	require.NoError(t, err)
	require.Equal(t, "can't change email after it's confirmed", result)

	reloaded, err := pgSQL.UserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "user@mycorp.com", reloaded.Email)
	require.Equal(t, domain.UserTypeEmployee, reloaded.Type)

	reloadedCompany, err := pgSQL.Company(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, reloadedCompany.NumberOfEmployees)

	require.Empty(t, bus.messages)
}
