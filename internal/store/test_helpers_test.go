package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// createTestStore opens a fresh sqlite store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(context.Background(), Options{Driver: DriverSQLite, Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// insertRaw writes a row bypassing the seed, for malformed-row tests.
func insertRaw(t *testing.T, s *Store, args ...any) {
	t.Helper()
	_, err := s.DB().Exec(s.dialect.rebind(insertDetectionSQL), args...)
	require.NoError(t, err)
}
