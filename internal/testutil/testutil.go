package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vytor/chessroyale/internal/db"
)

// NewTestDB opens an in-memory SQLite database with all migrations applied.
func NewTestDB(t *testing.T) *db.DB {
	database, err := db.Open(":memory:")
	require.NoError(t, err)
	return database
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// Ptr returns a pointer to v. Handy for optional model fields.
func Ptr[T any](v T) *T {
	return &v
}
