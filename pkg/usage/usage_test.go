package usage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRecordUsageIncrements(t *testing.T) {
	store := NewStore()

	const n = 7
	for i := 0; i < n; i++ {
		store.RecordUsage("firefox")
	}
	if got := store.Count("firefox"); got != n {
		t.Errorf("after %d records count = %d, want %d", n, got, n)
	}
	if got := store.Count("never-used"); got != 0 {
		t.Errorf("unused package count = %d, want 0", got)
	}
	if store.Len() != 1 {
		t.Errorf("store should hold one record, got %d", store.Len())
	}
}

func TestFlushLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "usage.bin")

	store := NewStore()
	store.RecordUsage("firefox")
	store.RecordUsage("firefox")
	store.RecordUsage("neovim")

	if err := store.Flush(path); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := loaded.Count("firefox"); got != 2 {
		t.Errorf("firefox count = %d, want 2", got)
	}
	if got := loaded.Count("neovim"); got != 1 {
		t.Errorf("neovim count = %d, want 1", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	store, err := Load(filepath.Join(t.TempDir(), "nope.bin"))
	if err != nil {
		t.Fatalf("missing cache must not error: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("missing cache should load empty, got %d records", store.Len())
	}
}

// A corrupted cache degrades to an empty store; the error is informational
// and completion proceeds with zero bonuses.
func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.bin")
	if err := os.WriteFile(path, []byte("\x00garbage\xff\xfe"), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := Load(path)
	if err == nil {
		t.Error("expected a decode error for corrupt cache")
	}
	if store == nil || store.Len() != 0 {
		t.Fatal("corrupt cache must still yield a usable empty store")
	}

	// The degraded store stays functional.
	store.RecordUsage("firefox")
	if store.Count("firefox") != 1 {
		t.Error("degraded store should accept new records")
	}
}

func TestFlushReplacesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.bin")

	store := NewStore()
	store.RecordUsage("firefox")
	if err := store.Flush(path); err != nil {
		t.Fatal(err)
	}

	store.RecordUsage("neovim")
	if err := store.Flush(path); err != nil {
		t.Fatal(err)
	}

	// No temp files left behind, and the final file parses.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the cache file, found %d entries", len(entries))
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading flushed cache: %v", err)
	}
	if loaded.Len() != 2 {
		t.Errorf("reloaded store has %d records, want 2", loaded.Len())
	}
}

func TestFrequencyBonus(t *testing.T) {
	store := NewStore()
	for i := 0; i < 50; i++ {
		store.RecordUsage("firefox")
	}
	for i := 0; i < 25; i++ {
		store.RecordUsage("neovim")
	}

	snap := store.Snapshot()
	testCases := []struct {
		name        string
		want        int
		description string
	}{
		{"firefox", 20, "max count scores the full bonus"},
		{"neovim", 10, "half of max scores half"},
		{"never-used", 0, "unused scores zero"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := snap.FrequencyBonus(tc.name); got != tc.want {
				t.Errorf("FrequencyBonus(%s) = %d, want %d", tc.name, got, tc.want)
			}
		})
	}

	empty := NewStore().Snapshot()
	if empty.FrequencyBonus("anything") != 0 {
		t.Error("empty snapshot must score zero")
	}
}

func TestRecencyBonus(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	horizon := 24 * time.Hour

	testCases := []struct {
		age         time.Duration
		want        int
		description string
	}{
		{0, 10, "just used scores the full bonus"},
		{12 * time.Hour, 5, "half the horizon scores half"},
		{23 * time.Hour, 1, "near the horizon decays to almost nothing"},
		{48 * time.Hour, 0, "past the horizon scores zero"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			store := NewStore()
			store.Clock = func() time.Time { return now.Add(-tc.age) }
			store.RecordUsage("firefox")

			store.Clock = func() time.Time { return now }
			snap := store.Snapshot()
			if got := snap.RecencyBonus("firefox", horizon); got != tc.want {
				t.Errorf("RecencyBonus at age %v = %d, want %d", tc.age, got, tc.want)
			}
		})
	}

	snap := NewStore().Snapshot()
	if snap.RecencyBonus("never-used", horizon) != 0 {
		t.Error("never-used package must score zero recency")
	}
}

func TestRecencyNeverExceedsCap(t *testing.T) {
	now := time.Now()
	store := NewStore()
	// A clock skew can put last_used in the future; clamp to the cap.
	store.Clock = func() time.Time { return now.Add(time.Hour) }
	store.RecordUsage("firefox")
	store.Clock = func() time.Time { return now }

	if got := store.Snapshot().RecencyBonus("firefox", 24*time.Hour); got > 10 {
		t.Errorf("recency bonus %d exceeds cap", got)
	}
}
