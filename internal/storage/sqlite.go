// Package storage provides SQLite-based persistence for simulation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run is one journal entry: what was generated and where the simulation
// ended up.
type Run struct {
	ID            string // UUID, assigned by SaveRun when empty
	Seed          string
	TemplateID    string
	Width         int
	Height        int
	Steps         int
	Gears         int
	TerrainDigest uint64
	PhysicsDigest uint64
	Duration      time.Duration
	CreatedAt     time.Time
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
// Digests are stored as decimal text because SQLite integers are signed.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			seed TEXT NOT NULL,
			template_id TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			steps INTEGER NOT NULL DEFAULT 0,
			gears INTEGER NOT NULL DEFAULT 0,
			terrain_digest TEXT NOT NULL,
			physics_digest TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_template ON runs(template_id);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
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

// SaveRun records a run and returns its ID. A missing ID gets a new UUID
// and a zero CreatedAt becomes now.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, seed, template_id, width, height, steps, gears, terrain_digest, physics_digest, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.Seed,
		r.TemplateID,
		r.Width,
		r.Height,
		r.Steps,
		r.Gears,
		strconv.FormatUint(r.TerrainDigest, 10),
		strconv.FormatUint(r.PhysicsDigest, 10),
		r.Duration.Milliseconds(),
		r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

const runColumns = `id, seed, template_id, width, height, steps, gears,
	terrain_digest, physics_digest, duration_ms, created_at`

// RunByID retrieves a run by its ID. Returns nil if it does not exist.
func (s *Store) RunByID(id string) (*Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
}

// RunsByTemplate retrieves runs of one template, newest first.
func (s *Store) RunsByTemplate(templateID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE template_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		templateID, limit,
	)
}

// MatchingRuns returns earlier runs with the same seed, template and step
// count. Deterministic replays of a run must report identical digests.
func (s *Store) MatchingRuns(seed, templateID string, steps int) ([]Run, error) {
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs
		 WHERE seed = ? AND template_id = ? AND steps = ?
		 ORDER BY created_at ASC, rowid ASC`,
		seed, templateID, steps,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r          Run
		terrain    string
		phys       string
		durationMs int64
		createdAt  any
	)
	if err := sc.Scan(
		&r.ID,
		&r.Seed,
		&r.TemplateID,
		&r.Width,
		&r.Height,
		&r.Steps,
		&r.Gears,
		&terrain,
		&phys,
		&durationMs,
		&createdAt,
	); err != nil {
		return Run{}, err
	}

	var err error
	if r.TerrainDigest, err = strconv.ParseUint(terrain, 10, 64); err != nil {
		return Run{}, fmt.Errorf("terrain digest %q: %w", terrain, err)
	}
	if r.PhysicsDigest, err = strconv.ParseUint(phys, 10, 64); err != nil {
		return Run{}, fmt.Errorf("physics digest %q: %w", phys, err)
	}
	r.Duration = time.Duration(durationMs) * time.Millisecond

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}

// TemplateStats contains aggregated statistics for one template.
type TemplateStats struct {
	TemplateID string
	Runs       int
	TotalSteps int64
	LastRun    time.Time
}

// Stats aggregates the journal per template, sorted by template ID.
func (s *Store) Stats() ([]TemplateStats, error) {
	rows, err := s.db.Query(
		`SELECT template_id, COUNT(*), COALESCE(SUM(steps), 0), MAX(created_at)
		 FROM runs
		 GROUP BY template_id
		 ORDER BY template_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	defer rows.Close()

	var stats []TemplateStats
	for rows.Next() {
		var st TemplateStats
		var last any
		if err := rows.Scan(&st.TemplateID, &st.Runs, &st.TotalSteps, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		switch v := last.(type) {
		case time.Time:
			st.LastRun = v
		case string:
			if parsed, err := time.Parse(timeLayout, v); err == nil {
				st.LastRun = parsed
			}
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
