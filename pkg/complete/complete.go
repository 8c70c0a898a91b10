/*
Package complete orchestrates package-name completion: alias resolution,
candidate generation, scoring, and the final ordered cut.

One call to Complete is a single-threaded, read-mostly computation meant to
finish well inside interactive shell-completion latency. The only mutable
collaborator is the usage store, which the service reads through an
immutable snapshot per invocation.
*/
package complete

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/archpkg/pkgserve/pkg/alias"
	"github.com/archpkg/pkgserve/pkg/pkgindex"
	"github.com/archpkg/pkgserve/pkg/usage"
)

// ErrInvalidLimit is returned when a caller asks for a non-positive number
// of results. Rejected loudly instead of clamped, so caller bugs surface.
var ErrInvalidLimit = errors.New("completion limit must be positive")

// DefaultLimit is the result count used when the caller does not specify one.
const DefaultLimit = 10

// DefaultRecencyHorizon is how far back the recency bonus decays to zero.
const DefaultRecencyHorizon = 30 * 24 * time.Hour

// Options tune a Service. Zero values fall back to defaults.
type Options struct {
	RecencyHorizon time.Duration
}

// Service wires the index, the alias table, and the usage store into the
// completion pipeline. Construct once per process and reuse.
type Service struct {
	index   *pkgindex.Index
	aliases *alias.Map
	store   *usage.Store
	horizon time.Duration
}

// NewService builds a Service. Aliases pointing at packages the index does
// not know are dropped here with a warning, enforcing the alias invariant
// up front rather than at query time.
func NewService(index *pkgindex.Index, aliases *alias.Map, store *usage.Store, opts Options) *Service {
	if aliases == nil {
		aliases = alias.New(nil)
	}
	if store == nil {
		store = usage.NewStore()
	}
	if dropped := aliases.Prune(index.Has); len(dropped) > 0 {
		log.Warnf("Dropped %d aliases with no matching package: %v", len(dropped), dropped)
	}

	horizon := opts.RecencyHorizon
	if horizon <= 0 {
		horizon = DefaultRecencyHorizon
	}
	return &Service{
		index:   index,
		aliases: aliases,
		store:   store,
		horizon: horizon,
	}
}

// Index returns the package index the service searches.
func (s *Service) Index() *pkgindex.Index {
	return s.index
}

// Complete returns up to limit package names ranked for the query and
// context. Scores are internal; callers only ever see the ordered names.
// An empty query or an empty dataset yields an empty, non-error result.
func (s *Service) Complete(query string, ctx Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	query = pkgindex.Fold(query)
	if query == "" {
		return nil, nil
	}

	// A full alias key substitutes the canonical name before any matching;
	// a partially typed key falls through untouched.
	resolved := s.aliases.Resolve(query)
	if resolved != query {
		log.Debugf("Alias resolved %q -> %q", query, resolved)
		query = pkgindex.Fold(resolved)
	}

	candidates := s.generate(query, limit)
	if len(candidates) == 0 {
		return nil, nil
	}

	snap := s.store.Snapshot()
	for i := range candidates {
		candidates[i].score = score(candidates[i].entry, candidates[i].match, query, ctx, snap, s.horizon)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return less(candidates[i], candidates[j])
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.entry.Name
	}
	return names, nil
}

// generate unions prefix and abbreviation candidates, then backfills with
// substring and description-word matches only while still short of limit.
// Each name keeps the strongest match type it achieved.
func (s *Service) generate(query string, limit int) []candidate {
	best := make(map[string]candidate)

	add := func(entries []pkgindex.PackageEntry, match pkgindex.MatchType) {
		for _, entry := range entries {
			prev, ok := best[entry.Name]
			if !ok || match > prev.match {
				best[entry.Name] = candidate{entry: entry, match: match}
			}
		}
	}

	for _, entry := range s.index.Query(query) {
		match := pkgindex.MatchPrefix
		if pkgindex.Fold(entry.Name) == query {
			match = pkgindex.MatchExact
		}
		add([]pkgindex.PackageEntry{entry}, match)
	}
	add(s.index.Abbreviation(query), pkgindex.MatchAbbreviation)

	if len(best) < limit {
		add(s.index.Substring(query), pkgindex.MatchSubstring)
	}
	if len(best) < limit {
		add(s.index.DescriptionMatches(query), pkgindex.MatchDescription)
	}

	candidates := make([]candidate, 0, len(best))
	for _, c := range best {
		candidates = append(candidates, c)
	}
	return candidates
}

// RecordUsage feeds one confirmed install/remove back into the frequency
// store. The caller decides when this fires; completion itself never does.
func (s *Service) RecordUsage(name string) {
	s.store.RecordUsage(name)
}

// Store exposes the usage store for flushing at process exit.
func (s *Service) Store() *usage.Store {
	return s.store
}
