package storage

import (
	"errors"
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRecordAndSummary(t *testing.T) {
	store := openStore(t)

	run, err := store.BeginRun("meadow")
	if err != nil {
		t.Fatalf("BeginRun() failed: %v", err)
	}

	entries := []Entry{
		{Tick: 3, Kind: KindFired, Index: -1, X: 2.5, Y: 7, Z: 3.5},
		{Tick: 7, Kind: KindBonusCollected, Index: 0},
		{Tick: 7, Kind: KindBonusCollected, Index: 2},
		{Tick: 9, Kind: KindHostileKilled, Index: 1},
		{Tick: 12, Kind: KindHostileHit, Index: 0},
		{Tick: 40, Kind: KindFellOff, Index: -1},
		{Tick: 41, Kind: KindLanded, Index: 5},
	}
	if err := store.Record(run, entries); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if err := store.Record(run, nil); err != nil {
		t.Errorf("Record(nil) failed: %v", err)
	}

	sum, err := store.Summary(run)
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Level != "meadow" || sum.Finished {
		t.Errorf("summary = %+v, expected an unfinished meadow run", sum)
	}
	if sum.Bonuses != 2 || sum.Kills != 1 || sum.Hits != 1 || sum.Falls != 1 || sum.Shots != 1 || sum.Landings != 1 {
		t.Errorf("counts = %+v", sum)
	}

	if err := store.FinishRun(run, Outcome{Score: 2, Lives: 1, Ticks: 41, Won: true}); err != nil {
		t.Fatalf("FinishRun() failed: %v", err)
	}
	sum, _ = store.Summary(run)
	if !sum.Finished || !sum.Outcome.Won || sum.Outcome.Lost || sum.Outcome.Score != 2 || sum.Outcome.Ticks != 41 {
		t.Errorf("outcome = %+v", sum)
	}
}

func TestStoreRecent(t *testing.T) {
	store := openStore(t)
	run, _ := store.BeginRun("causeway")

	var entries []Entry
	for i := range 15 {
		entries = append(entries, Entry{Tick: uint64(i + 1), Kind: KindLanded, Index: i})
	}
	if err := store.Record(run, entries); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	recent, err := store.Recent(run, 0)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recent) != 10 {
		t.Fatalf("Recent(0) returned %d entries, expected the default 10", len(recent))
	}
	if recent[0].Tick != 15 || recent[9].Tick != 6 {
		t.Errorf("order = %d..%d, expected newest first 15..6", recent[0].Tick, recent[9].Tick)
	}
	if recent[0].Run != run || recent[0].Kind != KindLanded || recent[0].Index != 14 {
		t.Errorf("entry = %+v", recent[0])
	}
}

func TestStoreRunsAreSeparate(t *testing.T) {
	store := openStore(t)

	first, _ := store.BeginRun("meadow")
	second, _ := store.BeginRun("meadow")
	store.Record(first, []Entry{{Tick: 1, Kind: KindHostileHit}})
	store.Record(second, []Entry{{Tick: 1, Kind: KindBonusCollected}, {Tick: 2, Kind: KindBonusCollected}})
	store.FinishRun(first, Outcome{Lives: -1, Lost: true, Ticks: 90})

	runs, err := store.Runs()
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Runs() returned %d, expected 2", len(runs))
	}
	if runs[0].Run != first || runs[0].Hits != 1 || runs[0].Bonuses != 0 || !runs[0].Outcome.Lost {
		t.Errorf("first run = %+v", runs[0])
	}
	if runs[1].Run != second || runs[1].Bonuses != 2 || runs[1].Finished {
		t.Errorf("second run = %+v", runs[1])
	}
}

func TestStoreUnknownRun(t *testing.T) {
	store := openStore(t)

	if _, err := store.Summary(42); !errors.Is(err, ErrUnknownRun) {
		t.Errorf("Summary(42) = %v, expected ErrUnknownRun", err)
	}
	if err := store.FinishRun(42, Outcome{}); !errors.Is(err, ErrUnknownRun) {
		t.Errorf("FinishRun(42) = %v, expected ErrUnknownRun", err)
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := openStore(t)
	b := openStore(t)

	a.BeginRun("meadow")
	runs, err := b.Runs()
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("a fresh journal should be empty, got %d runs", len(runs))
	}
}
