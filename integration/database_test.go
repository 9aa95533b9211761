//go:build database

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestCombineWithMySQL tests the combine CLI with a MySQL backend.
func TestCombineWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "nba",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(60 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	env := []string{
		"COMBINE_DB_BACKEND=mysql",
		"COMBINE_DB_CONNECT=" + fmt.Sprintf("root:secret123@tcp(%s:%s)/nba?parseTime=true", host, port.Port()),
	}
	runBackendScenario(t, env)
}

// TestCombineWithPostgres tests the combine CLI with a PostgreSQL backend.
func TestCombineWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	env := []string{
		"COMBINE_DB_BACKEND=postgresql",
		"COMBINE_DB_HOST=" + host,
		"COMBINE_DB_PORT=" + port.Port(),
		"COMBINE_DB_NAME=postgres",
		"COMBINE_DB_USER=postgres",
	}
	runBackendScenario(t, env)
}

// runBackendScenario clears the table, runs one draft class twice and checks
// the second run stores nothing new.
func runBackendScenario(t *testing.T, env []string) {
	srv := newStatsServer(t)
	args := []string{"2019-20", "--api-base-url", srv.URL, "--color", "no"}

	_, err := runCombine(t, env, "table", "clear")
	require.NoError(t, err)

	out, err := runCombine(t, env, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "inserted=2 schema_created=1")

	out, err = runCombine(t, env, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "already_exists=3")

	out, err = runCombine(t, env, "table", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Rows: 3")
	assert.Contains(t, out, "Rows Without Team: 0")

	_, err = runCombine(t, env, "table", "clear")
	require.NoError(t, err)

	_, err = runCombine(t, env, "table", "migrate")
	require.NoError(t, err)

	out, err = runCombine(t, env, "table", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Rows: 0")
}
