package persistence

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEmbeddedMigrationsCreateStaffTable(t *testing.T) {
	entries, err := fs.ReadDir(migrationFiles, migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	content, err := migrationFiles.ReadFile(migrationsDir + "/" + entries[0].Name())
	require.NoError(t, err)
	assert.Contains(t, string(content), "CREATE TABLE IF NOT EXISTS staff")
	assert.Contains(t, string(content), "BIGSERIAL PRIMARY KEY")
}

func TestRunMigrationsWithoutPool(t *testing.T) {
	assert.NoError(t, RunMigrations(context.Background(), nil, zap.NewNop()))
}

func TestDisabledHandles(t *testing.T) {
	var pg *Postgres
	assert.False(t, pg.Enabled())
	assert.Error(t, pg.Ping(context.Background()))
	pg.Close()

	var rd *Redis
	assert.Error(t, rd.Ping(context.Background()))
	assert.Error(t, rd.Publish(context.Background(), "staff.events", []byte("{}")))
	rd.Close()
}
