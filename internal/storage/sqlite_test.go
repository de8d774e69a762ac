package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "deeper", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested path")
	}
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		score   int
		level   int
		outcome string
	}{
		{100, 2, OutcomeGameOver},
		{50, 1, OutcomeQuit},
		{610, 10, OutcomeVictory},
		{200, 4, OutcomeGameOver},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.score, r.level, r.outcome); err != nil {
			t.Fatalf("SaveRun(%d) failed: %v", r.score, err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Sorted descending by score
	wantScores := []int{610, 200, 100}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("top[%d].Score = %d, want %d", i, top[i].Score, want)
		}
	}
	if top[0].Outcome != OutcomeVictory {
		t.Errorf("top run outcome = %q, want victory", top[0].Outcome)
	}
	if top[0].LevelReached != 10 {
		t.Errorf("top run level = %d, want 10", top[0].LevelReached)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty store = %d, want 0", high)
	}

	store.SaveRun(120, 3, OutcomeGameOver)
	store.SaveRun(340, 6, OutcomeGameOver)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 340 {
		t.Errorf("HighScore() = %d, want 340", high)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(100, 2, OutcomeGameOver)
	store.SaveRun(200, 3, OutcomeGameOver)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(top))
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(100, 2, OutcomeGameOver)
	store.SaveRun(300, 5, OutcomeGameOver)
	store.SaveRun(610, 10, OutcomeVictory)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.RunsCount != 3 {
		t.Errorf("RunsCount = %d, want 3", stats.RunsCount)
	}
	if stats.HighScore != 610 {
		t.Errorf("HighScore = %d, want 610", stats.HighScore)
	}
	if stats.TotalScore != 1010 {
		t.Errorf("TotalScore = %d, want 1010", stats.TotalScore)
	}
	if stats.BestLevel != 10 {
		t.Errorf("BestLevel = %d, want 10", stats.BestLevel)
	}
	if stats.Victories != 1 {
		t.Errorf("Victories = %d, want 1", stats.Victories)
	}
}

func TestStatsEmptyStore(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 0 || stats.HighScore != 0 || stats.Victories != 0 {
		t.Errorf("empty store stats = %+v, want zeros", stats)
	}
}
