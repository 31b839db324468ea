package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_InMemory(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// app_state table exists and is empty.
	var count int
	err = database.QueryRow(`SELECT COUNT(*) FROM app_state`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Running migrations again must not fail or disturb existing rows.
	_, err = database.Exec(
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)`,
		"k", "v", "2026-01-01T00:00:00Z")
	require.NoError(t, err)

	require.NoError(t, Migrate(database))

	var value string
	require.NoError(t, database.QueryRow(`SELECT value FROM app_state WHERE key = 'k'`).Scan(&value))
	assert.Equal(t, "v", value)
}

func TestOpenDB_FileCreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	database, err := OpenDB(dir + "/nested/state.db")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.Ping())
}
