package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/pothole-dashboard/internal/store"
	"github.com/stretchr/testify/require"
)

// useTempStore points the configuration at a fresh sqlite file.
func useTempStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "detections.db")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("STORE_PATH", path)
	t.Setenv("MAPBOX_TOKEN", "")
	t.Setenv("MAPBOX_ENABLED", "")
	return path
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	root := NewRootCommand()
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func decodeResponse(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), "output: %s", out)
	return resp
}

func insertBrokenRow(t *testing.T, path string) {
	t.Helper()
	ctx := context.Background()
	s, err := store.Open(ctx, store.Options{Driver: store.DriverSQLite, Path: path})
	require.NoError(t, err)
	defer s.Close()

	_, err = s.DB().ExecContext(ctx,
		`INSERT INTO detections (id, image_name, status, type, conf_a, conf_b, conf_c, "timestamp", lat, lng)
		 VALUES ('BROKEN', 'broken.png', 1, 'Z', 0.1, 0.2, 0.7, '2026-02-17 09:00:00', 22.6, 88.4)`)
	require.NoError(t, err)
}
