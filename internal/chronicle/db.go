// Package chronicle persists simulation runs to SQLite: which entity took
// which action at which tick, and the notable events around them. It logs
// runs only — rule trees themselves are never serialized.
package chronicle

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/social-practice/internal/sim"
)

// DB wraps a SQLite connection for run logging.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		started_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS decisions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		tick INTEGER NOT NULL,
		entity INTEGER NOT NULL,
		practice_id INTEGER NOT NULL,
		template_name TEXT NOT NULL,
		action_name TEXT NOT NULL,
		utility INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		tick INTEGER NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_decisions_run_tick ON decisions(run_id, tick);
	CREATE INDEX IF NOT EXISTS idx_events_run_tick ON events(run_id, tick);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// CreateRun registers a new run and returns its identifier.
func (db *DB) CreateRun(seed int64) (string, error) {
	id := uuid.NewString()
	_, err := db.conn.Exec(
		"INSERT INTO runs (id, seed, started_at) VALUES (?, ?, ?)",
		id, seed, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("create run: %w", err)
	}
	return id, nil
}

// AppendDecisions writes a batch of decisions for a run in one transaction.
func (db *DB) AppendDecisions(runID string, decisions []sim.Decision) error {
	if len(decisions) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(
		"INSERT INTO decisions (run_id, tick, entity, practice_id, template_name, action_name, utility) VALUES (?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, d := range decisions {
		if _, err := stmt.Exec(runID, d.Tick, d.Entity, d.Practice, d.Template, d.Action, d.Utility); err != nil {
			return fmt.Errorf("insert decision: %w", err)
		}
	}

	return tx.Commit()
}

// AppendEvents writes a batch of events for a run in one transaction.
func (db *DB) AppendEvents(runID string, events []sim.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range events {
		if _, err := tx.Exec(
			"INSERT INTO events (run_id, tick, description, category) VALUES (?, ?, ?, ?)",
			runID, e.Tick, e.Description, e.Category,
		); err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
	}

	return tx.Commit()
}

// DecisionCount returns how many decisions a run has logged.
func (db *DB) DecisionCount(runID string) (int, error) {
	var count int
	if err := db.conn.Get(&count, "SELECT COUNT(*) FROM decisions WHERE run_id = ?", runID); err != nil {
		return 0, fmt.Errorf("count decisions: %w", err)
	}
	return count, nil
}

// RecentDecisions returns the latest decisions of a run, newest first.
func (db *DB) RecentDecisions(runID string, limit int) ([]sim.Decision, error) {
	var out []sim.Decision
	err := db.conn.Select(&out,
		"SELECT tick, entity, practice_id, template_name, action_name, utility FROM decisions WHERE run_id = ? ORDER BY id DESC LIMIT ?",
		runID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("select decisions: %w", err)
	}
	return out, nil
}

// RecentEvents returns the latest events of a run, newest first.
func (db *DB) RecentEvents(runID string, limit int) ([]sim.Event, error) {
	var out []sim.Event
	err := db.conn.Select(&out,
		"SELECT tick, description, category FROM events WHERE run_id = ? ORDER BY id DESC LIMIT ?",
		runID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}
	return out, nil
}
