package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	// Reopening runs migrations again on an existing schema
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	store.Close()
}

func TestStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.flappy/runs.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".flappy", "runs.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}

func TestSaveAndRecentRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "flappy", Passed: 3, Cause: "tube", Duration: 4500 * time.Millisecond, Seed: 11},
		{GameID: "flappy", Passed: 0, Cause: "ground", Duration: 800 * time.Millisecond, Seed: 12},
		{GameID: "flappy", Passed: 7, Cause: "ceiling", Duration: 9 * time.Second, Seed: 13},
		{GameID: "other", Passed: 1, Cause: "tube", Seed: 14},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("flappy", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(got))
	}

	// Newest first, not ranked by passed count
	if got[0].Seed != 13 || got[1].Seed != 12 || got[2].Seed != 11 {
		t.Errorf("unexpected order: %+v", got)
	}
	if got[2].Duration != 4500*time.Millisecond || got[2].Cause != "tube" || got[2].Passed != 3 {
		t.Errorf("run did not round trip: %+v", got[2])
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	limited, err := store.RecentRuns("flappy", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit 2 returned %d runs", len(limited))
	}
}

func TestRunsBySeed(t *testing.T) {
	store := openTestStore(t)

	for _, passed := range []int{2, 5} {
		if _, err := store.SaveRun(Run{GameID: "flappy", Passed: passed, Cause: "tube", Seed: 42}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveRun(Run{GameID: "flappy", Passed: 9, Cause: "tube", Seed: 43}); err != nil {
		t.Fatal(err)
	}

	got, err := store.RunsBySeed("flappy", 42)
	if err != nil {
		t.Fatalf("RunsBySeed() failed: %v", err)
	}
	if len(got) != 2 || got[0].Passed != 5 || got[1].Passed != 2 {
		t.Errorf("unexpected runs for seed 42: %+v", got)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("flappy")
	if err != nil {
		t.Fatalf("Stats() on empty journal failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected empty stats: %+v", empty)
	}

	for _, r := range []Run{
		{GameID: "flappy", Passed: 2, Cause: "tube", Duration: time.Second},
		{GameID: "flappy", Passed: 4, Cause: "tube", Duration: 2 * time.Second},
		{GameID: "flappy", Passed: 0, Cause: "ground", Duration: time.Second},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.Stats("flappy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Runs = %d, expected 3", stats.Runs)
	}
	if stats.AvgPassed != 2 {
		t.Errorf("AvgPassed = %v, expected 2", stats.AvgPassed)
	}
	if stats.TotalTime != 4*time.Second {
		t.Errorf("TotalTime = %v, expected 4s", stats.TotalTime)
	}
	if stats.Causes["tube"] != 2 || stats.Causes["ground"] != 1 {
		t.Errorf("Causes = %v", stats.Causes)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "flappy", Passed: 1, Cause: "tube"})
	store.SaveRun(Run{GameID: "other", Passed: 1, Cause: "tube"})

	if err := store.ClearRuns("flappy"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns("flappy", 10)
	if len(runs) != 0 {
		t.Errorf("expected no flappy runs, got %d", len(runs))
	}
	other, _ := store.RecentRuns("other", 10)
	if len(other) != 1 {
		t.Errorf("ClearRuns touched another game: %d runs left", len(other))
	}
}
