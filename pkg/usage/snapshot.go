package usage

import "time"

// Snapshot is the read-only view of the store the scorer works against.
// It fixes the max count and the current time at capture, so scoring a
// whole candidate set sees one consistent frequency state.
type Snapshot struct {
	records  map[string]Record
	maxCount int
	taken    time.Time
}

// Snapshot captures the current in-memory state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		records: make(map[string]Record, len(s.records)),
		taken:   s.Clock(),
	}
	for name, rec := range s.records {
		snap.records[name] = rec
		if rec.Count > snap.maxCount {
			snap.maxCount = rec.Count
		}
	}
	return snap
}

// Lookup returns the record for name, if any.
func (sn Snapshot) Lookup(name string) (Record, bool) {
	rec, ok := sn.records[name]
	return rec, ok
}

// MaxCount returns the highest usage count in the snapshot.
func (sn Snapshot) MaxCount() int {
	return sn.maxCount
}

// FrequencyBonus scales a package's usage count into [0,20] linearly
// against the snapshot's max count. Never-used packages score 0 and the
// most-used package scores 20.
func (sn Snapshot) FrequencyBonus(name string) int {
	if sn.maxCount == 0 {
		return 0
	}
	rec, ok := sn.records[name]
	if !ok || rec.Count <= 0 {
		return 0
	}
	return rec.Count * 20 / sn.maxCount
}

// RecencyBonus scales how recently a package was used into [0,10]: used
// just now scores 10, decaying linearly to 0 at the horizon. Never used
// scores 0. More recent never scores lower.
func (sn Snapshot) RecencyBonus(name string, horizon time.Duration) int {
	rec, ok := sn.records[name]
	if !ok || rec.LastUsed == 0 || horizon <= 0 {
		return 0
	}
	age := sn.taken.Sub(time.Unix(rec.LastUsed, 0))
	if age < 0 {
		age = 0
	}
	if age >= horizon {
		return 0
	}
	return int(10 - 10*age/horizon)
}
