/*
Package usage persists the per-package usage counts that feed the frequency
and recency ranking bonuses.

The store is a single msgpack snapshot file. Loads are best-effort: a
missing or corrupt file degrades to an empty store so completion keeps
working with zero bonuses. Flushes write a temp file in the same directory
and rename it over the target, so concurrent readers never observe a partial
file; two racing writers lose the earlier update, which is acceptable for a
soft ranking signal.
*/
package usage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Record tracks how often and how recently one package was used.
// Field tags keep the on-disk format tolerant: unknown fields are ignored on
// decode and missing fields default to zero.
type Record struct {
	Name     string `msgpack:"name"`
	Count    int    `msgpack:"count"`
	LastUsed int64  `msgpack:"last_used"` // unix seconds, 0 = never
}

type snapshotFile struct {
	Records []Record `msgpack:"records"`
}

// Store holds the in-memory usage state. Safe for concurrent use within one
// process; cross-process safety comes from atomic replace-on-write.
type Store struct {
	mu      sync.RWMutex
	records map[string]Record

	// Clock is overridable for deterministic tests.
	Clock func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]Record),
		Clock:   time.Now,
	}
}

// Load reads the persisted snapshot. A missing file yields an empty store
// and no error; malformed content yields an empty store and the parse error
// so the caller can warn. Load never prevents completion from proceeding.
func Load(path string) (*Store, error) {
	store := NewStore()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("No usage cache at %s, starting empty", path)
			return store, nil
		}
		return store, fmt.Errorf("reading usage cache %s: %w", path, err)
	}

	var file snapshotFile
	if err := msgpack.Unmarshal(data, &file); err != nil {
		return store, fmt.Errorf("decoding usage cache %s: %w", path, err)
	}

	for _, rec := range file.Records {
		if rec.Name == "" || rec.Count < 0 {
			continue
		}
		store.records[rec.Name] = rec
	}
	log.Debugf("Loaded %d usage records from %s", len(store.records), path)
	return store, nil
}

// RecordUsage increments the count for name and stamps it as just used,
// creating the record if absent.
func (s *Store) RecordUsage(name string) {
	if name == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.records[name]
	rec.Name = name
	rec.Count++
	rec.LastUsed = s.Clock().Unix()
	s.records[name] = rec
}

// Count returns the usage count for name, zero if never used.
func (s *Store) Count(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records[name].Count
}

// Len returns the number of packages with recorded usage.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Flush atomically persists the current state: the snapshot is written to a
// temp file next to the target and renamed over it, so a reader never sees
// a truncated cache.
func (s *Store) Flush(path string) error {
	s.mu.RLock()
	file := snapshotFile{Records: make([]Record, 0, len(s.records))}
	for _, rec := range s.records {
		file.Records = append(file.Records, rec)
	}
	s.mu.RUnlock()

	// Stable record order keeps the file diffable across flushes.
	sort.Slice(file.Records, func(i, j int) bool {
		return file.Records[i].Name < file.Records[j].Name
	})

	data, err := msgpack.Marshal(&file)
	if err != nil {
		return fmt.Errorf("encoding usage cache: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating cache dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".usage-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp cache file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp cache file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing usage cache %s: %w", path, err)
	}
	return nil
}
