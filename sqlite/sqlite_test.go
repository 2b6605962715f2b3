package sqlite_test

import (
	"testing"

	"github.com/docubot/docubot/sqlite"
	"github.com/stretchr/testify/require"
)

// MustOpenDB opens an in-memory database for testing.
func MustOpenDB(tb testing.TB) *sqlite.DB {
	tb.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(tb, db.Open())
	tb.Cleanup(func() {
		require.NoError(tb, db.Close())
	})
	return db
}

func TestDB_OpenClose(t *testing.T) {
	t.Parallel()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	require.NoError(t, db.Close())
}

func TestDB_CloseWithoutOpen(t *testing.T) {
	t.Parallel()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Close())
}
