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
}

func TestHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore("cubes")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for unknown game, got %d", score)
	}
}

func TestSaveHighScoreKeepsBest(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		save     int
		expected int
	}{
		{12, 12},
		{8, 12},  // lower score is ignored
		{12, 12}, // tie is ignored
		{30, 30},
	}

	for _, step := range steps {
		if err := store.SaveHighScore("cubes", step.save); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", step.save, err)
		}
		got, err := store.HighScore("cubes")
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if got != step.expected {
			t.Errorf("after SaveHighScore(%d): HighScore() = %d, expected %d", step.save, got, step.expected)
		}
	}
}

func TestSaveHighScoreRejectsNegative(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveHighScore("cubes", -1); err == nil {
		t.Error("Expected error for negative score")
	}
}

func TestHighScoresPerGame(t *testing.T) {
	store := openTestStore(t)

	//nolint:errcheck // test setup
	store.SaveHighScore("cubes", 40)
	//nolint:errcheck // test setup
	store.SaveHighScore("cubes_hard", 90)
	//nolint:errcheck // test setup
	store.SaveHighScore("cubes_easy", 10)

	entries, err := store.HighScores()
	if err != nil {
		t.Fatalf("HighScores() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	order := []string{"cubes_hard", "cubes", "cubes_easy"}
	for i, id := range order {
		if entries[i].GameID != id {
			t.Errorf("entries[%d].GameID = %q, expected %q", i, entries[i].GameID, id)
		}
	}
	if entries[0].Score != 90 {
		t.Errorf("Best score should be 90, got %d", entries[0].Score)
	}
	if entries[0].UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set")
	}
}

func TestClearHighScore(t *testing.T) {
	store := openTestStore(t)

	//nolint:errcheck // test setup
	store.SaveHighScore("cubes", 40)
	//nolint:errcheck // test setup
	store.SaveHighScore("cubes_hard", 90)

	if err := store.ClearHighScore("cubes"); err != nil {
		t.Fatalf("ClearHighScore() failed: %v", err)
	}

	if score, _ := store.HighScore("cubes"); score != 0 {
		t.Errorf("Expected cleared score to be 0, got %d", score)
	}
	if score, _ := store.HighScore("cubes_hard"); score != 90 {
		t.Errorf("Other game should keep its score, got %d", score)
	}

	// A cleared game accepts any new score
	//nolint:errcheck // test setup
	store.SaveHighScore("cubes", 5)
	if score, _ := store.HighScore("cubes"); score != 5 {
		t.Errorf("Expected 5 after clear and save, got %d", score)
	}

	if err := store.ClearAll(); err != nil {
		t.Fatalf("ClearAll() failed: %v", err)
	}
	entries, err := store.HighScores()
	if err != nil {
		t.Fatalf("HighScores() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries after ClearAll, got %d", len(entries))
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store1.SaveHighScore("cubes", 77); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() (reopen) failed: %v", err)
	}
	defer store2.Close()

	score, err := store2.HighScore("cubes")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 77 {
		t.Errorf("Expected persisted score 77, got %d", score)
	}
}

func TestParseTime(t *testing.T) {
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", now, now},
		{"sqlite string", "2024-05-06 07:08:09", now},
		{"rfc3339 string", "2024-05-06T07:08:09Z", now},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTime(tc.in); !got.Equal(tc.want) {
				t.Errorf("parseTime(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}
