// Package storage keeps the event journal of one play session.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The database lives in memory and disappears when the ledger is closed.
package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Ledger journals the events of a single session.
type Ledger struct {
	db *sql.DB
}

// Summary aggregates a session's journal.
type Summary struct {
	Events          int
	Crossings       int
	Deaths          map[string]int // Lives lost by cause
	FastestCrossing float64        // Seconds; 0 when there was no crossing
	AverageCrossing float64        // Seconds; 0 when there was no crossing
	GameOver        bool
	LastTick        uint64
}

// TotalDeaths returns the number of lives lost.
func (s Summary) TotalDeaths() int {
	n := 0
	for _, c := range s.Deaths {
		n += c
	}
	return n
}

// OpenLedger creates an empty in-memory ledger.
func OpenLedger() (*Ledger, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return l, nil
}

// migrate creates the journal schema.
func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			cause TEXT NOT NULL DEFAULT '',
			tick INTEGER NOT NULL,
			score INTEGER NOT NULL,
			lives INTEGER NOT NULL,
			round_time REAL NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind);
	`

	_, err := l.db.Exec(schema)
	return err
}

// Close releases the database, discarding the journal.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Record appends an event to the journal.
func (l *Ledger) Record(ev core.Event) error {
	_, err := l.db.Exec(
		`INSERT INTO events (kind, cause, tick, score, lives, round_time)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(ev.Kind), ev.Cause, int64(ev.Tick), ev.Score, ev.Lives, ev.RoundTime,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record %s event: %w", ev.Kind, err)
	}
	return nil
}

// Summary aggregates the journal.
func (l *Ledger) Summary() (Summary, error) {
	s := Summary{Deaths: make(map[string]int)}

	var fastest, average sql.NullFloat64
	var lastTick sql.NullInt64
	err := l.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(kind = ?), 0),
		        MIN(CASE WHEN kind = ? THEN round_time END),
		        AVG(CASE WHEN kind = ? THEN round_time END),
		        COALESCE(SUM(kind = ?), 0) > 0,
		        MAX(tick)
		 FROM events`,
		string(core.EventGoal), string(core.EventGoal), string(core.EventGoal), string(core.EventGameOver),
	).Scan(&s.Events, &s.Crossings, &fastest, &average, &s.GameOver, &lastTick)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize events: %w", err)
	}
	if fastest.Valid {
		s.FastestCrossing = fastest.Float64
	}
	if average.Valid {
		s.AverageCrossing = average.Float64
	}
	if lastTick.Valid {
		s.LastTick = uint64(lastTick.Int64)
	}

	rows, err := l.db.Query(
		`SELECT cause, COUNT(*)
		 FROM events
		 WHERE kind = ?
		 GROUP BY cause
		 ORDER BY cause`,
		string(core.EventLifeLost),
	)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot query deaths: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cause string
		var n int
		if err := rows.Scan(&cause, &n); err != nil {
			return Summary{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		s.Deaths[cause] = n
	}

	if err := rows.Err(); err != nil {
		return Summary{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return s, nil
}
