// Package occupancy is the client-side cache for facility snapshots.
//
// Every successful list fetch overwrites the cached rows for that facility
// kind, so the cache always mirrors the last data the server was known to
// return. When the server is unreachable the panels fall back to these rows
// together with the time they were taken.
//
// Key Types
//
//   - type Repository        — interface used by the occupancy service
//   - type SQLiteRepository  — SQLite implementation over *sql.DB
package occupancy
