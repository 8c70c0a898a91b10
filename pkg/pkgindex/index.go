/*
Package pkgindex builds the in-memory search index over the static package
dataset and generates completion candidates for a query.

The index combines a Patricia trie over case-folded package names with a flat
name table and a description word table. Prefix lookups descend the trie,
substring and abbreviation lookups scan the flat table, and description
lookups hit the word table. The index is built once at startup and is
read-only afterwards.
*/
package pkgindex

import (
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Conflict reports a duplicate name+source pair seen during Build.
// The later record wins; the caller decides how loudly to complain.
type Conflict struct {
	Name   string
	Source Source
}

// Index is the read-only search structure over the package dataset.
type Index struct {
	trie      *patricia.Trie          // folded name -> []string canonical names
	entries   map[string]PackageEntry // canonical name -> entry
	descWords map[string][]string     // folded description word -> canonical names
}

// Build constructs an Index from the dataset records.
//
// Duplicate name+source pairs are a data-integrity problem in the dataset:
// the later record overwrites the earlier one and the pair is reported back
// in the conflict list. The same name from two different sources keeps the
// record whose source has the higher priority, which becomes the entry's
// primary source for ranking.
func Build(entries []PackageEntry) (*Index, []Conflict) {
	ix := &Index{
		trie:      patricia.NewTrie(),
		entries:   make(map[string]PackageEntry, len(entries)),
		descWords: make(map[string][]string),
	}

	var conflicts []Conflict
	for _, entry := range entries {
		if entry.Name == "" {
			continue
		}
		if prev, ok := ix.entries[entry.Name]; ok {
			if prev.Source == entry.Source {
				conflicts = append(conflicts, Conflict{Name: entry.Name, Source: entry.Source})
			} else if prev.Source.Priority() >= entry.Source.Priority() {
				// Keep the higher-priority source as the primary record.
				continue
			}
		}
		ix.insert(entry)
	}
	return ix, conflicts
}

func (ix *Index) insert(entry PackageEntry) {
	ix.entries[entry.Name] = entry

	folded := fold(entry.Name)
	if item := ix.trie.Get(patricia.Prefix(folded)); item != nil {
		names := item.([]string)
		found := false
		for _, n := range names {
			if n == entry.Name {
				found = true
				break
			}
		}
		if !found {
			ix.trie.Set(patricia.Prefix(folded), append(names, entry.Name))
		}
	} else {
		ix.trie.Insert(patricia.Prefix(folded), []string{entry.Name})
	}

	for _, word := range descriptionWords(entry.Description) {
		ix.descWords[word] = appendUnique(ix.descWords[word], entry.Name)
	}
}

// Len returns the number of distinct package names in the index.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Get returns the entry for a canonical package name.
func (ix *Index) Get(name string) (PackageEntry, bool) {
	entry, ok := ix.entries[name]
	return entry, ok
}

// Has reports whether a canonical package name is present.
func (ix *Index) Has(name string) bool {
	_, ok := ix.entries[name]
	return ok
}

// Query returns all entries whose folded name starts with the folded prefix.
// An empty prefix returns nothing: completion is never triggered on empty
// input, and visiting the whole trie would defeat the O(k) descent.
func (ix *Index) Query(prefix string) []PackageEntry {
	folded := fold(prefix)
	if folded == "" {
		return nil
	}

	var results []PackageEntry
	ix.trie.VisitSubtree(patricia.Prefix(folded), func(p patricia.Prefix, item patricia.Item) error {
		for _, name := range item.([]string) {
			if entry, ok := ix.entries[name]; ok {
				results = append(results, entry)
			}
		}
		return nil
	})
	sortEntries(results)
	return results
}

// Substring returns entries whose folded name contains the folded query as a
// contiguous substring. Linear scan; only used to backfill when prefix and
// abbreviation search come up short of the requested limit.
func (ix *Index) Substring(query string) []PackageEntry {
	folded := fold(query)
	if folded == "" {
		return nil
	}

	var results []PackageEntry
	for name, entry := range ix.entries {
		if strings.Contains(fold(name), folded) {
			results = append(results, entry)
		}
	}
	sortEntries(results)
	return results
}

// Abbreviation returns entries whose name matches the query as an anchored
// in-order subsequence: the first query character must align with the first
// character of the name or of one of its hyphen/underscore-delimited tokens.
// "vsc" matches "visual-studio-code", "ff" matches "firefox", neither
// matches "chromium".
func (ix *Index) Abbreviation(query string) []PackageEntry {
	folded := fold(query)
	if folded == "" {
		return nil
	}

	var results []PackageEntry
	for name, entry := range ix.entries {
		if MatchesAbbreviation(folded, fold(name)) {
			results = append(results, entry)
		}
	}
	sortEntries(results)
	return results
}

// DescriptionMatches returns entries where some query token equals a whole
// word of the description. This is a weaker, name-independent signal.
func (ix *Index) DescriptionMatches(query string) []PackageEntry {
	seen := make(map[string]bool)
	var results []PackageEntry
	for _, token := range queryTokens(query) {
		for _, name := range ix.descWords[token] {
			if seen[name] {
				continue
			}
			seen[name] = true
			entry, ok := ix.entries[name]
			if !ok {
				continue
			}
			// The word table can hold stale words after an overwrite; the
			// live description decides.
			for _, word := range descriptionWords(entry.Description) {
				if word == token {
					results = append(results, entry)
					break
				}
			}
		}
	}
	sortEntries(results)
	return results
}

// MatchesAbbreviation reports whether query is an anchored subsequence of
// name. Both arguments must already be case-folded.
func MatchesAbbreviation(query, name string) bool {
	if query == "" || name == "" {
		return false
	}
	for _, start := range tokenStarts(name) {
		if name[start] != query[0] {
			continue
		}
		if isSubsequence(query[1:], name[start+1:]) {
			return true
		}
	}
	return false
}

// isSubsequence reports whether every byte of query occurs in order in s.
func isSubsequence(query, s string) bool {
	qi := 0
	for i := 0; i < len(s) && qi < len(query); i++ {
		if s[i] == query[qi] {
			qi++
		}
	}
	return qi == len(query)
}

// tokenStarts returns the indexes where a hyphen/underscore-delimited token
// begins, including position zero.
func tokenStarts(name string) []int {
	starts := []int{0}
	for i := 1; i < len(name); i++ {
		if name[i-1] == '-' || name[i-1] == '_' {
			starts = append(starts, i)
		}
	}
	return starts
}

// NameTokens splits a folded package name on hyphens and underscores.
func NameTokens(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
}

// descriptionWords splits a description into folded alphanumeric words.
func descriptionWords(description string) []string {
	return strings.FieldsFunc(fold(description), func(r rune) bool {
		return !isWordRune(r)
	})
}

// DescriptionWords exposes the description tokenization used by the index so
// the scorer counts word-boundary hits exactly the way generation does.
func DescriptionWords(description string) []string {
	return descriptionWords(description)
}

// queryTokens splits a folded query on whitespace, hyphens and underscores.
func queryTokens(query string) []string {
	return strings.FieldsFunc(fold(query), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '-' || r == '_'
	})
}

// QueryTokens exposes the query tokenization for the scorer.
func QueryTokens(query string) []string {
	return queryTokens(query)
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Fold normalizes a name or query the way the index stores keys.
func Fold(s string) string {
	return fold(s)
}

func sortEntries(entries []PackageEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}

func appendUnique(names []string, name string) []string {
	for _, n := range names {
		if n == name {
			return names
		}
	}
	return append(names, name)
}
