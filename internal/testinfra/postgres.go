//go:build integration

// Package testinfra starts throwaway dependencies for integration tests.
// Run them with: go test -tags integration ./...
package testinfra

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/adagency/backend/internal/dbmigrate"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// DefaultPostgresImage matches the version used in docker-compose.
const DefaultPostgresImage = "postgres:16-alpine"

// SkipIfNoDocker skips the test if the Docker daemon is not reachable.
func SkipIfNoDocker(t testing.TB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if exec.CommandContext(ctx, "docker", "info").Run() != nil {
		t.Skip("Skipping test: Docker not available")
	}
}

// PostgresContainer is a migrated PostgreSQL instance.
type PostgresContainer struct {
	testcontainers.Container
	DSN string
}

// NewPostgres starts PostgreSQL, applies the embedded migrations and
// terminates the container when the test finishes.
func NewPostgres(t testing.TB) *PostgresContainer {
	t.Helper()
	SkipIfNoDocker(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        DefaultPostgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "agency",
			"POSTGRES_PASSWORD": "agency",
			"POSTGRES_DB":       "agency_test",
		},
		// postgres logs this line once for the init server and once for the real one
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("create postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://agency:agency@%s:%s/agency_test?sslmode=disable", host, port.Port())

	if err := dbmigrate.Up(dsn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return &PostgresContainer{Container: container, DSN: dsn}
}
