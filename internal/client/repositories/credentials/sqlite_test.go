package credentials

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/buperadmin/kwitansi-cli/internal/client/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSQLiteRepository(db)
}

func TestGetAbsentKey(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	v, err := repo.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestSetGetOverwrite(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Set(ctx, TokenKey, "tok-1"))

	v, err := repo.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", v)

	// Upsert replaces the previous value.
	require.NoError(t, repo.Set(ctx, TokenKey, "tok-2"))
	v, err = repo.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", v)
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Set(ctx, TokenKey, "tok"))
	require.NoError(t, repo.Delete(ctx, TokenKey))

	v, err := repo.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "", v)

	// Deleting an already-absent key is not an error.
	require.NoError(t, repo.Delete(ctx, TokenKey))
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Set(ctx, TokenKey, "tok"))
	require.NoError(t, repo.Set(ctx, "other", "x"))
	require.NoError(t, repo.Clear(ctx))

	v, err := repo.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "", v)
}
