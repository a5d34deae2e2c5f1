package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"iatv/internal/config"
)

// ErrNotFound reports a cache lookup miss.
var ErrNotFound = errors.New("transcript not found")

// Record is one persisted transcript.
type Record struct {
	ID           int64
	Identifier   string
	StartSeconds int
	EndSeconds   int
	Document     string
	Segments     []string
	RunID        string
	FetchedAt    time.Time
}

// Store manages transcript persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the transcript cache database. The
// database file is protected by a lock file so concurrent iatv processes
// fail fast instead of corrupting each other's writes.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(filepath.Join(cfg.Paths.CacheDir, "transcripts.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another iatv process is using the transcript cache")
	}

	dbPath := filepath.Join(cfg.Paths.CacheDir, "transcripts.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Close closes the database connection and releases the cache lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	return err
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Save persists a transcript, overwriting any previous row for the same
// (identifier, start, end) range.
func (s *Store) Save(ctx context.Context, rec Record) error {
	identifier := strings.TrimSpace(rec.Identifier)
	if identifier == "" {
		return errors.New("identifier must not be empty")
	}

	segmentsJSON, err := json.Marshal(rec.Segments)
	if err != nil {
		return fmt.Errorf("marshal segments: %w", err)
	}

	fetchedAt := rec.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO transcripts (
            identifier, start_seconds, end_seconds, document, segments_json, run_id, fetched_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT (identifier, start_seconds, end_seconds) DO UPDATE SET
            document = excluded.document,
            segments_json = excluded.segments_json,
            run_id = excluded.run_id,
            fetched_at = excluded.fetched_at`,
		identifier,
		rec.StartSeconds,
		rec.EndSeconds,
		rec.Document,
		string(segmentsJSON),
		nullableString(rec.RunID),
		fetchedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}
	return nil
}

// Lookup fetches the transcript cached for an exact range. Returns
// ErrNotFound on a miss.
func (s *Store) Lookup(ctx context.Context, identifier string, start, end int) (*Record, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, identifier, start_seconds, end_seconds, document, segments_json, run_id, fetched_at
         FROM transcripts WHERE identifier = ? AND start_seconds = ? AND end_seconds = ?`,
		strings.TrimSpace(identifier), start, end,
	)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup transcript: %w", err)
	}
	return rec, nil
}

// List returns all cached transcripts, newest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, identifier, start_seconds, end_seconds, document, segments_json, run_id, fetched_at
         FROM transcripts ORDER BY fetched_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list transcripts: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transcript: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transcripts: %w", err)
	}
	return records, nil
}

// Delete removes every cached range for an identifier and reports how many
// rows were dropped.
func (s *Store) Delete(ctx context.Context, identifier string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM transcripts WHERE identifier = ?", strings.TrimSpace(identifier))
	if err != nil {
		return 0, fmt.Errorf("delete transcripts: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return affected, nil
}

// Clear drops every cached transcript.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM transcripts"); err != nil {
		return fmt.Errorf("clear transcripts: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var (
		rec          Record
		segmentsJSON string
		runID        sql.NullString
		fetchedAt    string
	)
	if err := row.Scan(
		&rec.ID,
		&rec.Identifier,
		&rec.StartSeconds,
		&rec.EndSeconds,
		&rec.Document,
		&segmentsJSON,
		&runID,
		&fetchedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(segmentsJSON), &rec.Segments); err != nil {
		return nil, fmt.Errorf("unmarshal segments: %w", err)
	}
	rec.RunID = runID.String
	parsed, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("parse fetched_at: %w", err)
	}
	rec.FetchedAt = parsed
	return &rec, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
