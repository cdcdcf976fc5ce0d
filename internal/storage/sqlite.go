// Package storage provides SQLite-based persistence for the scenario
// library and the run log. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies. Only initial conditions and run statistics are
// stored; live simulation state never touches disk.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScenarioEntry is one saved scenario definition.
type ScenarioEntry struct {
	ID         int64
	ScenarioID string
	Definition string // YAML
	CreatedAt  time.Time
}

// RunEntry records one viewing session.
type RunEntry struct {
	ID          int64
	ScenarioID  string
	SimSeconds  float64 // simulated time covered
	WallSeconds float64 // real time spent watching
	CreatedAt   time.Time
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
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scenarios (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario_id TEXT NOT NULL UNIQUE,
			definition TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario_id TEXT NOT NULL,
			sim_seconds REAL NOT NULL,
			wall_seconds REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scenario ON runs(scenario_id);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(created_at DESC);
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

// SaveScenario stores a scenario definition under its id, replacing any
// previous definition with the same id.
func (s *Store) SaveScenario(scenarioID string, definition []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO scenarios (scenario_id, definition) VALUES (?, ?)
		 ON CONFLICT(scenario_id) DO UPDATE SET definition = excluded.definition`,
		scenarioID, string(definition),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save scenario %q: %w", scenarioID, err)
	}
	return nil
}

// Scenario retrieves a saved definition by id. Returns nil without error
// when the scenario is not in the library.
func (s *Store) Scenario(scenarioID string) ([]byte, error) {
	var definition string
	err := s.db.QueryRow(
		"SELECT definition FROM scenarios WHERE scenario_id = ?",
		scenarioID,
	).Scan(&definition)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scenario %q: %w", scenarioID, err)
	}
	return []byte(definition), nil
}

// ListScenarios returns every saved scenario, ordered by id.
func (s *Store) ListScenarios() ([]ScenarioEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, scenario_id, definition, created_at
		 FROM scenarios
		 ORDER BY scenario_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scenarios: %w", err)
	}
	defer rows.Close()

	var entries []ScenarioEntry
	for rows.Next() {
		var e ScenarioEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.ScenarioID, &e.Definition, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// DeleteScenario removes a scenario from the library.
func (s *Store) DeleteScenario(scenarioID string) error {
	_, err := s.db.Exec("DELETE FROM scenarios WHERE scenario_id = ?", scenarioID)
	if err != nil {
		return fmt.Errorf("storage: cannot delete scenario %q: %w", scenarioID, err)
	}
	return nil
}

// RecordRun logs one viewing session. Returns the ID of the inserted
// record.
func (s *Store) RecordRun(scenarioID string, simSeconds, wallSeconds float64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (scenario_id, sim_seconds, wall_seconds) VALUES (?, ?, ?)",
		scenarioID, simSeconds, wallSeconds,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRuns retrieves the most recent runs, optionally filtered by
// scenario id (empty matches all).
func (s *Store) RecentRuns(scenarioID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, scenario_id, sim_seconds, wall_seconds, created_at
		 FROM runs`
	args := []any{}
	if scenarioID != "" {
		query += " WHERE scenario_id = ?"
		args = append(args, scenarioID)
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.ScenarioID, &e.SimSeconds, &e.WallSeconds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseCreatedAt handles the driver returning either time.Time or a string.
func parseCreatedAt(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
