package settings

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func TestSetGet_RoundTripAndOverwrite(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyLastUsername, "alice"))

	v, err := r.Get(ctx, KeyLastUsername)
	require.NoError(t, err)
	assert.Equal(t, "alice", v)

	require.NoError(t, r.Set(ctx, KeyLastUsername, "bob"))
	v, err = r.Get(ctx, KeyLastUsername)
	require.NoError(t, err)
	assert.Equal(t, "bob", v)
}

func TestGet_MissingKeyReturnsEmpty(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	v, err := r.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyInstallationID, "abc"))
	require.NoError(t, r.Delete(ctx, KeyInstallationID))

	v, err := r.Get(ctx, KeyInstallationID)
	require.NoError(t, err)
	assert.Equal(t, "", v)

	// deleting a missing key is fine
	require.NoError(t, r.Delete(ctx, KeyInstallationID))
}
