package pg

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/itchan-dev/boardlog/shared/config"
	internal_errors "github.com/itchan-dev/boardlog/shared/errors"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var storage *Storage

func TestMain(m *testing.M) {
	ctx := context.Background()
	var container *postgres.PostgresContainer
	storage, container = mustSetup(ctx)

	exitCode := m.Run()
	teardown(ctx, storage, container)
	os.Exit(exitCode)
}

func mustSetup(ctx context.Context) (*Storage, *postgres.PostgresContainer) {
	dbName := "boardlog"
	dbUser := "user"
	dbPassword := "password"
	container, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			// the image restarts once after init, so readiness is logged twice
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}
	containerPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to obtain container port: %s", err)
	}
	port, err := strconv.Atoi(containerPort.Port())
	if err != nil {
		log.Fatalf("failed to obtain int container port: %s", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to obtain container host: %s", err)
	}

	pgCfg := config.Default().Pg
	pgCfg.Host, pgCfg.Port, pgCfg.User, pgCfg.Password, pgCfg.Dbname = host, port, dbUser, dbPassword, dbName

	storage, err := New(ctx, pgCfg)
	if err != nil {
		log.Fatalf("failed to connect to postgres container: %s", err)
	}
	if err := storage.EnsureSchema(ctx); err != nil {
		log.Fatalf("failed to bootstrap schema: %s", err)
	}
	return storage, container
}

func teardown(ctx context.Context, storage *Storage, container *postgres.PostgresContainer) {
	if err := storage.Cleanup(); err != nil {
		log.Printf("failed to close storage connection: %s", err)
	}
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
}

// Helpers

func generateSerial(t *testing.T) string {
	t.Helper()
	return "PCB-" + uuid.NewString()[:8]
}

func ptr[T any](v T) *T {
	return &v
}

func requireNotFoundError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, http.StatusNotFound, internal_errors.StatusCode(err), "expected not found, got %v", err)
}

func requireBadRequestError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, http.StatusBadRequest, internal_errors.StatusCode(err), "expected bad request, got %v", err)
}

func countBoards(t *testing.T, serial string) int {
	t.Helper()
	var n int
	require.NoError(t, storage.db.QueryRow("SELECT count(*) FROM boards WHERE serial_number = $1", serial).Scan(&n))
	return n
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, storage.EnsureSchema(ctx))
	require.NoError(t, storage.EnsureSchema(ctx))
}

func TestPingAndProbe(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, storage.Ping(ctx))

	before := time.Now().Add(-time.Minute)
	now, dbName, err := storage.Probe(ctx)
	require.NoError(t, err)
	require.Equal(t, "boardlog", dbName)
	require.True(t, now.After(before), "db clock %v should be recent", now)
}
