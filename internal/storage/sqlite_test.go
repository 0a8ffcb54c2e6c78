package storage

import (
	"errors"
	"fmt"
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

func saveRound(t *testing.T, store *Store, id, difficulty string, score int) {
	t.Helper()
	_, err := store.SaveRound(RoundResult{
		RoundID:    id,
		Difficulty: difficulty,
		Score:      score,
		Length:     score + 1,
		Reason:     "boundary",
	})
	if err != nil {
		t.Fatalf("SaveRound(%s) failed: %v", id, err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saveRound(t, store, "r1", "normal", 10)
	saveRound(t, store, "r2", "normal", 5)
	saveRound(t, store, "r3", "normal", 20)
	saveRound(t, store, "r4", "hard", 50)

	scores, err := store.TopScores("normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 20 || scores[1].Score != 10 || scores[2].Score != 5 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	top := scores[0]
	if top.RoundID != "r3" || top.Difficulty != "normal" || top.Length != 21 || top.Reason != "boundary" {
		t.Errorf("Unexpected round fields: %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	hard, err := store.TopScores("hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hard) != 1 {
		t.Errorf("Expected 1 hard score, got %d", len(hard))
	}
}

func TestStoreTopScoresAllDifficulties(t *testing.T) {
	store := openTestStore(t)

	saveRound(t, store, "a", "easy", 3)
	saveRound(t, store, "b", "hard", 9)
	saveRound(t, store, "c", "normal", 6)

	scores, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Difficulty != "hard" || scores[2].Difficulty != "easy" {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		saveRound(t, store, fmt.Sprintf("r%d", i), "easy", (i+1)*10)
	}

	scores, err := store.TopScores("easy", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreDuplicateRound(t *testing.T) {
	store := openTestStore(t)

	saveRound(t, store, "same", "easy", 1)
	_, err := store.SaveRound(RoundResult{RoundID: "same", Difficulty: "easy", Score: 2, Length: 3, Reason: "self"})
	if !errors.Is(err, ErrDuplicateRound) {
		t.Fatalf("Expected ErrDuplicateRound, got %v", err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty board, got %d", high)
	}

	saveRound(t, store, "r1", "normal", 10)
	saveRound(t, store, "r2", "normal", 30)
	saveRound(t, store, "r3", "hard", 40)

	high, err = store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}

	high, err = store.HighScore("")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 40 {
		t.Errorf("Expected overall high score of 40, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveRound(t, store, "r1", "easy", 1)
	saveRound(t, store, "r2", "easy", 2)
	saveRound(t, store, "r3", "hard", 3)

	if err := store.ClearScores("easy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	easy, _ := store.TopScores("easy", 10)
	if len(easy) != 0 {
		t.Errorf("Expected 0 easy scores after clear, got %d", len(easy))
	}
	hard, _ := store.TopScores("hard", 10)
	if len(hard) != 1 {
		t.Errorf("Hard scores should not be affected by clearing easy")
	}

	if err := store.ClearScores(""); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	all, _ := store.TopScores("", 10)
	if len(all) != 0 {
		t.Errorf("Expected empty leaderboard, got %d rounds", len(all))
	}
}

func TestStoreAllStats(t *testing.T) {
	store := openTestStore(t)

	saveRound(t, store, "r1", "normal", 4)
	saveRound(t, store, "r2", "normal", 8)
	saveRound(t, store, "r3", "easy", 2)

	stats, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 difficulties, got %d", len(stats))
	}

	normal := stats["normal"]
	if normal == nil {
		t.Fatal("Missing normal stats")
	}
	if normal.RoundsCount != 2 || normal.HighScore != 8 || normal.AvgScore != 6 || normal.LongestLen != 9 {
		t.Errorf("Unexpected normal stats: %+v", normal)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
