// Package store provides the embedded relational storage for detection records.
//
// The store is seeded once and read-only afterwards:
//   - SeedIfEmpty writes the fixed example dataset when the table is empty
//   - ListAll returns every record, newest capture first
//
// There are no update or delete operations.
//
// # Ordering
//
// ListAll orders by "timestamp" DESC (bytewise comparison on the
// "YYYY-MM-DD HH:MM:SS" form), then by id in natural order (shorter ids first,
// so DATA4 precedes DATA10). The id tie-break makes repeated calls return
// identical sequences even though the seed data repeats timestamps.
//
// # Schema
//
// Column names match databases created by the original dashboard
// ("timestamp", nullable BOOLEAN status), so an existing detections.db opens
// as-is and is not reseeded.
//
// # Drivers
//
//   - sqlite (default): modernc.org/sqlite, CGO-free, single connection,
//     WAL journal and a 5 second busy timeout
//   - pgx: PostgreSQL through jackc/pgx/v5/stdlib; "?" placeholders are
//     rebound to "$n"
//
// # Read Path
//
// The status column becomes a bool on read and nowhere else; NULL or
// non-boolean values set domain.Detection.StatusInvalid. NULL text columns
// read as "" and NULL or non-numeric real columns read as NaN. In each case
// domain.Detection.Validate rejects that one row downstream without failing
// the whole listing.
//
// Every failure to reach the database is wrapped in domain.ErrStorageUnavailable.
package store
