// Package store persists comparison runs to SQLite so past migrations can
// be reviewed after the terminal output is gone.
//
// The schema is bootstrapped from an embedded SQL file on open; there is no
// separate migration step. Timestamps are stored as RFC 3339 UTC strings.
package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/benloeffel/dns-compare/internal/compare"
	"github.com/benloeffel/dns-compare/internal/resolver"
)

//go:embed schema.sql
var schemaSQL string

// ErrRunNotFound is returned when the requested run id does not exist.
var ErrRunNotFound = errors.New("run not found")

// Run is the stored metadata for one comparison run.
type Run struct {
	ID            string    `json:"id"`
	Domain        string    `json:"domain"`
	CurrentServer string    `json:"current_server"`
	NewServer     string    `json:"new_server"`
	CreatedAt     time.Time `json:"created_at"`
	Identical     int       `json:"identical"`
	Different     int       `json:"different"`
}

// DB wraps a SQLite connection holding the run history.
type DB struct {
	conn *sql.DB
	mu   sync.Mutex // serializes writes
	now  func() time.Time
}

// Open opens or creates the history database at path, initializing the
// schema if needed.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)", path)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &DB{conn: conn, now: time.Now}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Health checks database connectivity.
func (db *DB) Health() error {
	return db.conn.Ping()
}

// SaveRun stores one run with its entries atomically and returns the run id.
func (db *DB) SaveRun(spec compare.Spec, entries []compare.Entry) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.conn.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	identical, different := compare.Count(entries)

	_, err = tx.Exec(`
		INSERT INTO runs (id, domain, current_server, new_server, created_at, identical, different)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, spec.Domain, spec.CurrentServer, spec.NewServer,
		db.now().UTC().Format(time.RFC3339), identical, different)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO run_entries (run_id, position, subdomain, record_type, current_value, new_value, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare entry insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.Exec(id, i, e.Name, string(e.RecordType), e.Current, e.New, string(e.Status)); err != nil {
			return "", fmt.Errorf("failed to insert entry %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first. A limit <= 0 means
// no limit.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT id, domain, current_server, new_server, created_at, identical, different
		FROM runs ORDER BY created_at DESC, id
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun returns one run and its entries in stored order.
func (db *DB) GetRun(id string) (Run, []compare.Entry, error) {
	row := db.conn.QueryRow(`
		SELECT id, domain, current_server, new_server, created_at, identical, different
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, nil, ErrRunNotFound
	}
	if err != nil {
		return Run{}, nil, err
	}

	rows, err := db.conn.Query(`
		SELECT subdomain, record_type, current_value, new_value, status
		FROM run_entries WHERE run_id = ? ORDER BY position
	`, id)
	if err != nil {
		return Run{}, nil, fmt.Errorf("failed to read run entries: %w", err)
	}
	defer rows.Close()

	entries := make([]compare.Entry, 0)
	for rows.Next() {
		var e compare.Entry
		var rtype, status string
		if err := rows.Scan(&e.Name, &rtype, &e.Current, &e.New, &status); err != nil {
			return Run{}, nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.RecordType = resolver.RecordType(rtype)
		e.Status = compare.Status(status)
		entries = append(entries, e)
	}
	return run, entries, rows.Err()
}

// CountRuns returns the total number of stored runs.
func (db *DB) CountRuns() (int, error) {
	var n int
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(r rowScanner) (Run, error) {
	var run Run
	var createdAt string
	err := r.Scan(&run.ID, &run.Domain, &run.CurrentServer, &run.NewServer,
		&createdAt, &run.Identical, &run.Different)
	if err != nil {
		return Run{}, err
	}
	run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return Run{}, fmt.Errorf("failed to parse run timestamp: %w", err)
	}
	return run, nil
}
