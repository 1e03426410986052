package store

import (
	"context"
	"fmt"
)

const insertDetectionSQL = `
	INSERT INTO detections (id, image_name, status, type, conf_a, conf_b, conf_c, "timestamp", lat, lng)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO NOTHING`

// SeedIfEmpty inserts the example dataset when the table has no rows and
// returns the number of rows written. A non-empty table is left untouched,
// so the call is safe on every startup.
func (s *Store) SeedIfEmpty(ctx context.Context) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, unavailable("begin seed", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var n int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM detections").Scan(&n); err != nil {
		return 0, unavailable("count detections", err)
	}
	if n > 0 {
		return 0, nil
	}

	stmt, err := tx.PrepareContext(ctx, s.dialect.rebind(insertDetectionSQL))
	if err != nil {
		return 0, fmt.Errorf("prepare seed insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range seedRows {
		_, err := stmt.ExecContext(ctx,
			d.ID, d.ImageName, boolToInt(d.HazardDetected), string(d.Category),
			d.Confidence.A, d.Confidence.B, d.Confidence.C,
			d.CapturedAt, d.Latitude, d.Longitude,
		)
		if err != nil {
			return 0, fmt.Errorf("insert seed row %s: %w", d.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, unavailable("commit seed", err)
	}
	return len(seedRows), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
