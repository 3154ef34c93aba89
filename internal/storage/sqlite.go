// Package storage provides SQLite-based persistence for finished animations.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run is one animation that reached its end value.
type Run struct {
	ID         int64
	Label      string
	Scene      string
	DurationMS int64
	Ticks      int
	StartTime  int64 // clock ms when the animation was armed
	CreatedAt  time.Time
}

// LabelStats aggregates the runs recorded for one label.
type LabelStats struct {
	Label    string
	Runs     int
	AvgTicks float64
	MaxTicks int
	LastRun  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			label TEXT NOT NULL,
			scene TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			start_time INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_label ON runs(label);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(label, id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished animation.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Label == "" {
		return 0, errors.New("storage: run label is required")
	}
	result, err := s.db.Exec(
		"INSERT INTO runs (label, scene, duration_ms, ticks, start_time) VALUES (?, ?, ?, ?, ?)",
		r.Label, r.Scene, r.DurationMS, r.Ticks, r.StartTime,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the newest runs for label, or for every label when
// label is empty.
func (s *Store) RecentRuns(label string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, label, scene, duration_ms, ticks, start_time, created_at
		 FROM runs
		 WHERE ? = '' OR label = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		label, label, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Label, &r.Scene, &r.DurationMS, &r.Ticks, &r.StartTime, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// CountRuns returns how many runs were recorded for label, or in total when
// label is empty.
func (s *Store) CountRuns(label string) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM runs WHERE ? = '' OR label = ?",
		label, label,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// Labels returns every recorded label in alphabetical order.
func (s *Store) Labels() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT label FROM runs ORDER BY label")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query labels: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("storage: cannot scan label: %w", err)
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

// Stats retrieves aggregated statistics for every recorded label.
func (s *Store) Stats() (map[string]*LabelStats, error) {
	rows, err := s.db.Query(
		`SELECT label, COUNT(*), AVG(ticks), MAX(ticks), MAX(created_at)
		 FROM runs
		 GROUP BY label`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get label stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LabelStats)
	for rows.Next() {
		var st LabelStats
		var lastRun any
		if err := rows.Scan(&st.Label, &st.Runs, &st.AvgTicks, &st.MaxTicks, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRun = parseTime(lastRun)
		stats[st.Label] = &st
	}

	return stats, rows.Err()
}

// ClearRuns deletes every run for label, or the whole journal when label is
// empty.
func (s *Store) ClearRuns(label string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR label = ?", label, label)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
