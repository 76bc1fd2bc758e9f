// Package storage provides the SQLite-backed session journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The journal lives in memory and is gone when the process exits.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Event kinds as stored in the journal.
const (
	KindHostileHit     = "hostile_hit"
	KindBonusCollected = "bonus_collected"
	KindHostileKilled  = "hostile_killed"
	KindFellOff        = "fell_off"
	KindFired          = "fired"
	KindLanded         = "landed"
	KindWon            = "won"
	KindLost           = "lost"
)

// ErrUnknownRun is returned for a run ID that was never begun.
var ErrUnknownRun = errors.New("storage: unknown run")

// Store manages the in-memory SQLite database.
type Store struct {
	db *sql.DB
}

// Entry is one journaled tick event.
type Entry struct {
	ID      int64
	Run     int64
	Tick    uint64
	Kind    string
	Index   int // Entity index, -1 when not applicable
	X, Y, Z float64
}

// Outcome is the final state of a run.
type Outcome struct {
	Score int
	Lives int
	Ticks uint64
	Won   bool
	Lost  bool
}

// Summary aggregates one run.
type Summary struct {
	Run      int64
	Level    string
	Bonuses  int
	Kills    int
	Hits     int
	Falls    int
	Shots    int
	Landings int
	Outcome  Outcome
	Finished bool
}

// OpenMemory creates a fresh in-memory journal.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

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

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			lives INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			lost INTEGER NOT NULL DEFAULT 0,
			finished INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			tick INTEGER NOT NULL,
			kind TEXT NOT NULL,
			idx INTEGER NOT NULL,
			x REAL NOT NULL,
			y REAL NOT NULL,
			z REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_run ON events(run_id, tick);
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

// BeginRun starts a new run on the given level and returns its ID.
func (s *Store) BeginRun(level string) (int64, error) {
	result, err := s.db.Exec("INSERT INTO runs (level) VALUES (?)", level)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Record appends entries to a run in one transaction.
func (s *Store) Record(run int64, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	stmt, err := tx.Prepare(
		"INSERT INTO events (run_id, tick, kind, idx, x, y, z) VALUES (?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		//#nosec G115 -- tick counts stay far below MaxInt64
		if _, err := stmt.Exec(run, int64(e.Tick), e.Kind, e.Index, e.X, e.Y, e.Z); err != nil {
			return fmt.Errorf("storage: cannot record event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit events: %w", err)
	}
	return nil
}

// FinishRun stores the final outcome of a run.
func (s *Store) FinishRun(run int64, out Outcome) error {
	result, err := s.db.Exec(
		`UPDATE runs SET score = ?, lives = ?, ticks = ?, won = ?, lost = ?, finished = 1
		 WHERE id = ?`,
		//#nosec G115 -- tick counts stay far below MaxInt64
		out.Score, out.Lives, int64(out.Ticks), out.Won, out.Lost, run,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish run: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %d", ErrUnknownRun, run)
	}
	return nil
}

// Summary aggregates the events of one run.
func (s *Store) Summary(run int64) (Summary, error) {
	sum := Summary{Run: run}

	var won, lost, finished bool
	var ticks int64
	err := s.db.QueryRow(
		"SELECT level, score, lives, ticks, won, lost, finished FROM runs WHERE id = ?",
		run,
	).Scan(&sum.Level, &sum.Outcome.Score, &sum.Outcome.Lives, &ticks, &won, &lost, &finished)
	if errors.Is(err, sql.ErrNoRows) {
		return Summary{}, fmt.Errorf("%w: %d", ErrUnknownRun, run)
	}
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	//#nosec G115 -- stored from a uint64
	sum.Outcome.Ticks = uint64(ticks)
	sum.Outcome.Won, sum.Outcome.Lost, sum.Finished = won, lost, finished

	counts, err := s.countKinds(run)
	if err != nil {
		return Summary{}, err
	}
	sum.Bonuses = counts[KindBonusCollected]
	sum.Kills = counts[KindHostileKilled]
	sum.Hits = counts[KindHostileHit]
	sum.Falls = counts[KindFellOff]
	sum.Shots = counts[KindFired]
	sum.Landings = counts[KindLanded]
	return sum, nil
}

// Runs returns the summary of every run, oldest first.
func (s *Store) Runs() ([]Summary, error) {
	rows, err := s.db.Query("SELECT id FROM runs ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	// Release the only connection before running the per-run queries
	rows.Close()

	summaries := make([]Summary, 0, len(ids))
	for _, id := range ids {
		sum, err := s.Summary(id)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}

// Recent returns the last limit events of a run, newest first.
func (s *Store) Recent(run int64, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, tick, kind, idx, x, y, z
		 FROM events
		 WHERE run_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		run, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var tick int64
		if err := rows.Scan(&e.ID, &e.Run, &tick, &e.Kind, &e.Index, &e.X, &e.Y, &e.Z); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		//#nosec G115 -- stored from a uint64
		e.Tick = uint64(tick)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

func (s *Store) countKinds(run int64) (map[string]int, error) {
	rows, err := s.db.Query(
		"SELECT kind, COUNT(*) FROM events WHERE run_id = ? GROUP BY kind",
		run,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan count: %w", err)
		}
		counts[kind] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return counts, nil
}
