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

func TestStoreNestedPath(t *testing.T) {
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

func TestStoreKV(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v; want false, nil", ok, err)
	}

	if err := store.Set("k", `{"a":1}`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	v, ok, err := store.Get("k")
	if err != nil || !ok || v != `{"a":1}` {
		t.Fatalf("Get(k) = %q, %v, %v", v, ok, err)
	}

	// Overwrite
	if err := store.Set("k", `{"a":2}`); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}
	v, _, _ = store.Get("k")
	if v != `{"a":2}` {
		t.Errorf("Get(k) after overwrite = %q", v)
	}

	if err := store.Remove("k"); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if _, ok, _ := store.Get("k"); ok {
		t.Error("key still present after Remove()")
	}

	// Removing twice is fine
	if err := store.Remove("k"); err != nil {
		t.Errorf("Remove() of absent key failed: %v", err)
	}
}

func TestStoreKVSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Set(KeyMastery, `{"cat":{}}`)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	v, ok, err := store.Get(KeyMastery)
	if err != nil || !ok || v != `{"cat":{}}` {
		t.Errorf("Get after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestStoreSaveAndRetrieveRecords(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRecord(Record{Mode: "practice", Scope: "1年级", Score: score, Duration: 60}); err != nil {
			t.Fatalf("SaveRecord() failed: %v", err)
		}
	}

	records, err := store.TopRecords(10)
	if err != nil {
		t.Fatalf("TopRecords() failed: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	// Should be sorted descending
	if records[0].Score != 200 || records[1].Score != 100 || records[2].Score != 50 {
		t.Errorf("Records not in expected order: %v", records)
	}
	if records[0].Scope != "1年级" || records[0].Duration != 60 {
		t.Errorf("Record fields not round-tripped: %+v", records[0])
	}
	if records[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestStoreKeepsTopRecords(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < MaxRecords+5; i++ {
		store.SaveRecord(Record{Mode: "practice", Score: i * 10})
	}

	records, err := store.TopRecords(100)
	if err != nil {
		t.Fatalf("TopRecords() failed: %v", err)
	}
	if len(records) != MaxRecords {
		t.Fatalf("Expected %d records after trim, got %d", MaxRecords, len(records))
	}

	// The five lowest scores (0..40) were dropped
	if low := records[len(records)-1].Score; low != 50 {
		t.Errorf("Lowest kept score = %d, want 50", low)
	}
}

func TestStoreTopRecordsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRecord(Record{Mode: "challenge", Score: (i + 1) * 100})
	}

	records, err := store.TopRecords(3)
	if err != nil {
		t.Fatalf("TopRecords() failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("Expected 3 records with limit, got %d", len(records))
	}
	if records[0].Score != 500 || records[1].Score != 400 || records[2].Score != 300 {
		t.Errorf("Records not in expected order: %v", records)
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	store.SaveRecord(Record{Mode: "practice", Score: 100})
	store.SaveRecord(Record{Mode: "practice", Score: 300})

	high, _ = store.HighScore()
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	if err := store.ClearRecords(); err != nil {
		t.Fatalf("ClearRecords() failed: %v", err)
	}
	records, _ := store.TopRecords(10)
	if len(records) != 0 {
		t.Errorf("Expected 0 records after clear, got %d", len(records))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)
	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	store.SaveRecord(Record{Mode: "practice", Score: 10, CreatedAt: when.Add(-time.Hour)})
	store.SaveRecord(Record{Mode: "practice", Score: 30, CreatedAt: when})

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Games != 2 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if !stats.LastPlayed.Equal(when) {
		t.Errorf("LastPlayed = %v, want %v", stats.LastPlayed, when)
	}
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()

	if _, ok, _ := kv.Get("a"); ok {
		t.Fatal("empty KV reported a value")
	}
	kv.Set("a", "1")
	if v, ok, _ := kv.Get("a"); !ok || v != "1" {
		t.Errorf("Get(a) = %q, %v", v, ok)
	}
	kv.Remove("a")
	if _, ok, _ := kv.Get("a"); ok {
		t.Error("value present after Remove()")
	}
}
