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

func saveRuns(t *testing.T, store *Store, gameID string, lengths ...int) {
	t.Helper()
	for _, l := range lengths {
		if _, err := store.SaveRun(gameID, l); err != nil {
			t.Fatalf("SaveRun(%q, %d) failed: %v", gameID, l, err)
		}
	}
}

func TestStoreOpenCreatesDirectories(t *testing.T) {
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

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	saveRuns(t, store, "snake", 7)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if best, _ := store.BestLength("snake"); best != 7 {
		t.Errorf("BestLength() after reopen = %d, expected 7", best)
	}
}

func TestStoreSaveRunRejectsEmptyBody(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun("snake", 0); err == nil {
		t.Error("expected an error for length 0")
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)
	saveRuns(t, store, "snake", 5, 12, 3, 9, 12)
	saveRuns(t, store, "snake_small", 30)

	runs, err := store.TopRuns("snake", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	want := []int{12, 12, 9}
	for i, r := range runs {
		if r.Length != want[i] || r.GameID != "snake" {
			t.Errorf("runs[%d] = %+v, expected length %d", i, r, want[i])
		}
	}
	if runs[0].ID > runs[1].ID {
		t.Error("equal lengths should list the earlier run first")
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopRunsDefaultLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 15 {
		saveRuns(t, store, "snake", i+3)
	}

	runs, err := store.TopRuns("snake", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != DefaultLimit {
		t.Errorf("Expected %d runs, got %d", DefaultLimit, len(runs))
	}

	all, err := store.AllRuns("snake")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(all) != 15 {
		t.Errorf("Expected 15 runs, got %d", len(all))
	}
}

func TestStoreBestLength(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestLength("snake")
	if err != nil {
		t.Fatalf("BestLength() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for an unplayed board, got %d", best)
	}

	saveRuns(t, store, "snake", 4, 11, 6)
	if best, _ := store.BestLength("snake"); best != 11 {
		t.Errorf("Expected best length 11, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	saveRuns(t, store, "snake", 4, 5)
	saveRuns(t, store, "snake_wide", 8)

	n, err := store.ClearRuns("snake")
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 runs cleared, got %d", n)
	}

	if runs, _ := store.AllRuns("snake"); len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
	if runs, _ := store.AllRuns("snake_wide"); len(runs) != 1 {
		t.Error("Other boards should not be affected")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("snake")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestLength != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unplayed board stats = %+v", empty)
	}

	saveRuns(t, store, "snake", 3, 5, 7)
	st, err := store.Stats("snake")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 3 || st.BestLength != 7 || st.AvgLength != 5 {
		t.Errorf("Stats() = %+v", st)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
