package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("chomp", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different maze variant
	if _, err := store.SaveScore("chomp-arena", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("chomp", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	arenaScores, err := store.TopScores("chomp-arena", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(arenaScores) != 1 {
		t.Errorf("Expected 1 arena score, got %d", len(arenaScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("chomp", (i+1)*100)
	}

	scores, err := store.TopScores("chomp", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("chomp")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty variant, got %d", high)
	}

	store.SaveScore("chomp", 100)
	store.SaveScore("chomp", 300)
	store.SaveScore("chomp", 200)

	high, err = store.HighScore("chomp")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("chomp", 100)
	store.SaveScore("chomp", 200)
	store.SaveScore("chomp-arena", 300)

	if err := store.ClearScores("chomp"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classicScores, _ := store.TopScores("chomp", 10)
	if len(classicScores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(classicScores))
	}

	arenaScores, _ := store.TopScores("chomp-arena", 10)
	if len(arenaScores) != 1 {
		t.Errorf("Other variants should not be affected by a clear")
	}
}

func TestStoreSaveAndQueryRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{MazeID: "chomp", Outcome: OutcomeWin, Score: 1130, LivesLeft: 2, PelletsLeft: 0, Duration: 95},
		{MazeID: "chomp", Outcome: OutcomeLoss, Score: 340, LivesLeft: 0, PelletsLeft: 41, Duration: 50},
		{MazeID: "chomp-arena", Outcome: OutcomeQuit, Score: 120, LivesLeft: 3, PelletsLeft: 100, Duration: 12},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	classic, err := store.RecentRuns("chomp", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(classic) != 2 {
		t.Errorf("Expected 2 classic runs, got %d", len(classic))
	}
	for _, r := range classic {
		if r.MazeID != "chomp" {
			t.Errorf("Run filter leaked variant %q", r.MazeID)
		}
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 runs total, got %d", len(all))
	}
}

func TestStoreMazeStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("chomp", 100)
	store.SaveScore("chomp", 300)
	store.SaveRun(RunRecord{MazeID: "chomp", Outcome: OutcomeWin, Score: 300})
	store.SaveRun(RunRecord{MazeID: "chomp", Outcome: OutcomeLoss, Score: 100})

	stats, err := store.GetMazeStats("chomp")
	if err != nil {
		t.Fatalf("GetMazeStats() failed: %v", err)
	}

	if stats.Rounds != 2 {
		t.Errorf("Expected 2 rounds, got %d", stats.Rounds)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %f", stats.AvgScore)
	}
	if stats.Wins != 1 {
		t.Errorf("Expected 1 win, got %d", stats.Wins)
	}
}

func TestStoreNestedPathCreation(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
