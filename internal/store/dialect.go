package store

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

//go:embed schema_sqlite.sql
var sqliteSchema string

//go:embed schema_postgres.sql
var postgresSchema string

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// dialect captures the per-driver differences the store cares about.
type dialect struct {
	driver     string
	schema     string
	positional bool   // "$1" placeholders instead of "?"
	collate    string // appended to text sort keys
}

func dialectFor(driver string) (dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", DriverSQLite, "sqlite3":
		return dialect{driver: DriverSQLite, schema: sqliteSchema}, nil
	case DriverPostgres, "postgres", "postgresql":
		return dialect{driver: DriverPostgres, schema: postgresSchema, positional: true, collate: ` COLLATE "C"`}, nil
	default:
		return dialect{}, fmt.Errorf("unsupported store driver %q", driver)
	}
}

// rebind rewrites "?" placeholders for drivers that use positional "$n".
func (d dialect) rebind(query string) string {
	if !d.positional {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// listSQL orders newest capture first, then ids in natural order
// (DATA4 before DATA10). Text keys compare bytewise on every driver.
func (d dialect) listSQL() string {
	return `
	SELECT id, image_name, status, type, conf_a, conf_b, conf_c, "timestamp", lat, lng
	FROM detections
	ORDER BY "timestamp"` + d.collate + ` DESC, LENGTH(id) ASC, id` + d.collate + ` ASC`
}

// statements splits the schema into individual statements.
func (d dialect) statements() []string {
	var out []string
	for _, stmt := range strings.Split(d.schema, ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			out = append(out, s)
		}
	}
	return out
}
