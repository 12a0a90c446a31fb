//go:build integration

package database_test

import (
	"context"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workout-tracker/internal/database"
	"workout-tracker/internal/testutil/pgtest"
)

const latestVersion = 5

var testInstance *pgtest.Instance

func TestMain(m *testing.M) {
	inst, err := pgtest.Start()
	if err != nil {
		log.Fatalf("start test postgres: %s", err)
	}
	testInstance = inst

	code := m.Run()

	inst.Close()
	os.Exit(code)
}

func newMigrator(t *testing.T) *database.Migrator {
	t.Helper()
	m, err := database.NewMigrator(testInstance.Config)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, m.Close()) })
	return m
}

func TestMigrator_StatusAfterStart(t *testing.T) {
	m := newMigrator(t)

	status, err := m.Status()
	require.NoError(t, err)
	assert.Equal(t, database.SchemaStatus{Version: latestVersion}, status)
	assert.ErrorIs(t, m.Up(), database.ErrNoChange)
}

func TestMigrator_StepDownAndUp(t *testing.T) {
	m := newMigrator(t)

	require.NoError(t, m.Down())
	status, err := m.Status()
	require.NoError(t, err)
	assert.Equal(t, uint(latestVersion-1), status.Version)

	require.NoError(t, m.Up())
	status, err = m.Status()
	require.NoError(t, err)
	assert.Equal(t, uint(latestVersion), status.Version)
}

func TestMigrator_UpRefusesDirtySchema(t *testing.T) {
	m := newMigrator(t)
	ctx := context.Background()

	require.NoError(t, testInstance.DB.WithContext(ctx).
		Exec("UPDATE schema_migrations SET dirty = true").Error)

	status, err := m.Status()
	require.NoError(t, err)
	assert.True(t, status.Dirty)
	assert.ErrorIs(t, m.Up(), database.ErrDirtyState)

	require.NoError(t, m.Force(latestVersion))
	status, err = m.Status()
	require.NoError(t, err)
	assert.False(t, status.Dirty)
	assert.ErrorIs(t, m.Up(), database.ErrNoChange)
}
