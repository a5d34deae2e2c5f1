// Package store persists stitched caption documents and transcripts in a
// local SQLite database.
//
// Rows are keyed by (identifier, start, end); saving the same range again
// overwrites the previous row, matching the in-memory cache semantics of a
// show handle. The database file is guarded by a file lock so concurrent
// iatv invocations do not race each other, and a schema version check
// rejects databases written by an incompatible release.
package store
