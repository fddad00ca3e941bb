package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/weighttrack/internal/config"
)

var testConfig = config.Config{DatabasePath: "", LogLevel: "error"}

func TestOpenDatabase_MigratesAndEnforcesForeignKeys(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := OpenDatabase(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// schema is at the current version: settings table exists
	_, err = db.Exec(`INSERT INTO settings (key, value) VALUES ('k', 'v')`)
	require.NoError(t, err)

	// foreign keys are enforced on this connection pool
	_, err = db.Exec(`INSERT INTO weights (user_id, weight, date) VALUES (99, 70, '2024-01-01')`)
	require.Error(t, err)
}

func TestOpenDatabase_ReopenIsNoOp(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := OpenDatabase(ctx, path)
	require.NoError(t, err)

	svcs := NewServices(NewRepositories(db), NewLogger(&testConfig))
	userID, err := svcs.Auth.Register(ctx, "alice", "Correct#Horse1")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = OpenDatabase(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svcs = NewServices(NewRepositories(db), NewLogger(&testConfig))
	got, err := svcs.Auth.Authenticate(ctx, "alice", "Correct#Horse1")
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestEnsureInstallationID_StableAcrossCalls(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := OpenDatabase(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	id1, err := EnsureInstallationID(ctx, db)
	require.NoError(t, err)
	_, err = uuid.Parse(id1)
	require.NoError(t, err, "installation id should be a UUID")

	id2, err := EnsureInstallationID(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
}
