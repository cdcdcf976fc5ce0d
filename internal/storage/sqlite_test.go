package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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

func TestScenarioLibrary(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	def := []byte("id: figure-eight\nbodies:\n  - {name: a, mass: 1}\n")
	if err := store.SaveScenario("figure-eight", def); err != nil {
		t.Fatalf("SaveScenario() failed: %v", err)
	}

	got, err := store.Scenario("figure-eight")
	if err != nil {
		t.Fatalf("Scenario() failed: %v", err)
	}
	if string(got) != string(def) {
		t.Errorf("Scenario() = %q, expected %q", got, def)
	}

	// Unknown id is not an error
	missing, err := store.Scenario("nope")
	if err != nil {
		t.Fatalf("Scenario() for missing id failed: %v", err)
	}
	if missing != nil {
		t.Errorf("missing scenario should return nil, got %q", missing)
	}
}

func TestSaveScenarioReplaces(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScenario("x", []byte("v1"))
	if err := store.SaveScenario("x", []byte("v2")); err != nil {
		t.Fatalf("second SaveScenario() failed: %v", err)
	}

	got, _ := store.Scenario("x")
	if string(got) != "v2" {
		t.Errorf("SaveScenario should replace, got %q", got)
	}

	entries, err := store.ListScenarios()
	if err != nil {
		t.Fatalf("ListScenarios() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry after replace, got %d", len(entries))
	}
}

func TestListAndDeleteScenarios(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScenario("b-scn", []byte("b"))
	store.SaveScenario("a-scn", []byte("a"))

	entries, err := store.ListScenarios()
	if err != nil {
		t.Fatalf("ListScenarios() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ScenarioID != "a-scn" || entries[1].ScenarioID != "b-scn" {
		t.Errorf("entries should be ordered by id: %q, %q", entries[0].ScenarioID, entries[1].ScenarioID)
	}

	if err := store.DeleteScenario("a-scn"); err != nil {
		t.Fatalf("DeleteScenario() failed: %v", err)
	}
	entries, _ = store.ListScenarios()
	if len(entries) != 1 || entries[0].ScenarioID != "b-scn" {
		t.Errorf("delete should remove only the named scenario, have %v", entries)
	}
}

func TestRecordAndListRuns(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.RecordRun("earth-moon", 86400*27.3, 27.3); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	store.RecordRun("earth-moon", 3600, 1)
	store.RecordRun("binary-pair", 2592000, 10)

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 runs, got %d", len(all))
	}
	// Most recent first
	if all[0].ScenarioID != "binary-pair" {
		t.Errorf("runs should be newest-first, got %q first", all[0].ScenarioID)
	}

	filtered, err := store.RecentRuns("earth-moon", 10)
	if err != nil {
		t.Fatalf("RecentRuns(earth-moon) failed: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("expected 2 earth-moon runs, got %d", len(filtered))
	}

	limited, _ := store.RecentRuns("", 2)
	if len(limited) != 2 {
		t.Errorf("limit should cap results, got %d", len(limited))
	}
}
