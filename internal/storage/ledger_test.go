package storage

import (
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := OpenLedger()
	if err != nil {
		t.Fatalf("OpenLedger() failed: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

// readJournal returns the recorded rows in insertion order.
func readJournal(t *testing.T, l *Ledger) []core.Event {
	t.Helper()
	rows, err := l.db.Query(
		`SELECT kind, cause, tick, score, lives, round_time
		 FROM events
		 ORDER BY id`,
	)
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	defer rows.Close()

	var events []core.Event
	for rows.Next() {
		var ev core.Event
		var kind string
		var tick int64
		if err := rows.Scan(&kind, &ev.Cause, &tick, &ev.Score, &ev.Lives, &ev.RoundTime); err != nil {
			t.Fatalf("scan event: %v", err)
		}
		ev.Kind = core.EventKind(kind)
		ev.Tick = uint64(tick)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("iterate events: %v", err)
	}
	return events
}

func TestLedgerEmptySummary(t *testing.T) {
	l := openTestLedger(t)

	s, err := l.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if s.Events != 0 || s.Crossings != 0 || s.TotalDeaths() != 0 || s.GameOver {
		t.Errorf("empty summary = %+v", s)
	}
	if s.FastestCrossing != 0 || s.AverageCrossing != 0 || s.LastTick != 0 {
		t.Errorf("empty summary has timings: %+v", s)
	}
}

func TestLedgerRecordRoundTrip(t *testing.T) {
	l := openTestLedger(t)

	in := []core.Event{
		{Kind: core.EventGoal, Tick: 300, Score: 1, Lives: 3, RoundTime: 5.0},
		{Kind: core.EventLifeLost, Cause: "collision", Tick: 420, Score: 1, Lives: 2, RoundTime: 2.0},
	}
	for _, ev := range in {
		if err := l.Record(ev); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	out := readJournal(t, l)
	if len(out) != len(in) {
		t.Fatalf("got %d events, expected %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("event %d = %+v, expected %+v", i, out[i], in[i])
		}
	}
}

func TestLedgerSummary(t *testing.T) {
	l := openTestLedger(t)

	events := []core.Event{
		{Kind: core.EventGoal, Tick: 600, Score: 1, Lives: 3, RoundTime: 10},
		{Kind: core.EventLifeLost, Cause: "collision", Tick: 700, Score: 1, Lives: 2, RoundTime: 1.5},
		{Kind: core.EventGoal, Tick: 1000, Score: 2, Lives: 2, RoundTime: 6},
		{Kind: core.EventLifeLost, Cause: "drowned", Tick: 1200, Score: 2, Lives: 1, RoundTime: 3},
		{Kind: core.EventLifeLost, Cause: "collision", Tick: 1300, Score: 2, Lives: 0, RoundTime: 1},
		{Kind: core.EventGameOver, Cause: "collision", Tick: 1300, Score: 2, Lives: 0, RoundTime: 1},
	}
	for _, ev := range events {
		if err := l.Record(ev); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	s, err := l.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}

	if s.Events != len(events) {
		t.Errorf("Events = %d, expected %d", s.Events, len(events))
	}
	if s.Crossings != 2 {
		t.Errorf("Crossings = %d, expected 2", s.Crossings)
	}
	if s.FastestCrossing != 6 {
		t.Errorf("FastestCrossing = %v, expected 6", s.FastestCrossing)
	}
	if s.AverageCrossing != 8 {
		t.Errorf("AverageCrossing = %v, expected 8", s.AverageCrossing)
	}
	if s.Deaths["collision"] != 2 || s.Deaths["drowned"] != 1 || s.Deaths["timeout"] != 0 {
		t.Errorf("Deaths = %v, expected collision:2 drowned:1", s.Deaths)
	}
	if s.TotalDeaths() != 3 {
		t.Errorf("TotalDeaths() = %d, expected 3", s.TotalDeaths())
	}
	if !s.GameOver {
		t.Error("expected GameOver")
	}
	if s.LastTick != 1300 {
		t.Errorf("LastTick = %d, expected 1300", s.LastTick)
	}
}

func TestLedgersAreIndependent(t *testing.T) {
	a := openTestLedger(t)
	b := openTestLedger(t)

	if err := a.Record(core.Event{Kind: core.EventGoal, Tick: 1}); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	events := readJournal(t, b)
	if len(events) != 0 {
		t.Errorf("second ledger sees %d events, expected 0", len(events))
	}
}

func TestLedgerClosed(t *testing.T) {
	l, err := OpenLedger()
	if err != nil {
		t.Fatalf("OpenLedger() failed: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := l.Record(core.Event{Kind: core.EventGoal}); err == nil {
		t.Error("Record() on a closed ledger should fail")
	}
}
