package repository

import (
	"context"
	"testing"

	"github.com/ssctools/ssctrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStateRepo_LoadAbsent(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStateRepo(database)

	payload, found, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, payload)
}

func TestSQLiteStateRepo_SaveThenLoad(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStateRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []byte(`{"chapters":[],"examDate":null}`)))

	payload, found, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"chapters":[],"examDate":null}`, string(payload))
}

func TestSQLiteStateRepo_SaveReplaces(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStateRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []byte(`{"v":1}`)))
	require.NoError(t, repo.Save(ctx, []byte(`{"v":2}`)))

	payload, found, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"v":2}`, string(payload))

	// The table holds exactly one row for the key.
	var count int
	require.NoError(t, database.QueryRow(
		`SELECT COUNT(*) FROM app_state WHERE key = ?`, StateKey).Scan(&count))
	assert.Equal(t, 1, count)
}
