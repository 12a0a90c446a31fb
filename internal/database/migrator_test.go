package database

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(migrate.ErrNoChange), ErrNoChange)

	err := translate(migrate.ErrDirty{Version: 4})
	require.ErrorIs(t, err, ErrDirtyState)
	assert.Contains(t, err.Error(), "version 4")

	other := errors.New("connection refused")
	assert.ErrorIs(t, translate(other), other)
}

func TestMigrator_ForceRejectsNegativeVersion(t *testing.T) {
	m := &Migrator{}
	assert.ErrorIs(t, m.Force(-1), ErrInvalidVersion)
}

func TestMigrator_StepsZeroIsNoChange(t *testing.T) {
	m := &Migrator{}
	assert.ErrorIs(t, m.Steps(0), ErrNoChange)
}

func TestSchemaStatus_Applied(t *testing.T) {
	assert.False(t, SchemaStatus{}.Applied())
	assert.True(t, SchemaStatus{Version: 5}.Applied())
}

func TestMigrator_CloseWithoutInstance(t *testing.T) {
	assert.NoError(t, (&Migrator{}).Close())
}
