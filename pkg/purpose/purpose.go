/*
Package purpose implements the purpose-to-application suggestion lookup:
free text like "edit videos" maps to a curated list of package names.

This is a static mapping loaded once from a YAML file, separate from the
completion engine's ranking pipeline. It backs the suggest flow at the CLI
layer.
*/
package purpose

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Match pairs a purpose with its suggested applications.
type Match struct {
	Purpose string
	Apps    []string
}

// Suggester holds the purpose→applications mapping, read-only after load.
type Suggester struct {
	mappings map[string][]string
}

// New builds a Suggester from an in-memory mapping.
func New(mappings map[string][]string) *Suggester {
	if mappings == nil {
		mappings = make(map[string][]string)
	}
	return &Suggester{mappings: mappings}
}

// LoadFile reads a YAML file of `purpose: [apps...]` entries. A missing or
// malformed file yields an empty suggester and the error; suggestion is an
// optional feature so callers warn and continue.
func LoadFile(path string) (*Suggester, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return New(nil), fmt.Errorf("reading purpose mapping %s: %w", path, err)
	}

	mappings := make(map[string][]string)
	if err := yaml.Unmarshal(data, &mappings); err != nil {
		return New(nil), fmt.Errorf("parsing purpose mapping %s: %w", path, err)
	}
	log.Debugf("Loaded %d purpose mappings from %s", len(mappings), path)
	return New(mappings), nil
}

// Len returns the number of purposes in the mapping.
func (s *Suggester) Len() int {
	return len(s.mappings)
}

var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "apps": true, "at": true,
	"but": true, "by": true, "download": true, "find": true, "for": true,
	"get": true, "i": true, "in": true, "install": true, "looking": true,
	"need": true, "of": true, "on": true, "or": true, "search": true,
	"the": true, "to": true, "want": true, "with": true,
}

// Normalize lowercases the query and strips filler words, so "I want apps
// for video editing" reduces to "video editing".
func Normalize(query string) string {
	var kept []string
	for _, word := range strings.Fields(strings.ToLower(strings.TrimSpace(query))) {
		if !stopWords[word] {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}

// Find returns the purposes matching the query, best first: exact purpose,
// then substring containment, then word overlap. Ties order by purpose name
// so repeated queries are stable.
func (s *Suggester) Find(query string) []Match {
	normalized := Normalize(query)
	if normalized == "" {
		return nil
	}
	queryWords := strings.Fields(normalized)

	type ranked struct {
		match Match
		rank  int
	}
	var results []ranked

	for purpose, apps := range s.mappings {
		folded := strings.ToLower(purpose)
		rank := 0
		switch {
		case folded == normalized:
			rank = 1000
		case strings.Contains(folded, normalized):
			rank = 500
		default:
			purposeWords := strings.Fields(folded)
			for _, qw := range queryWords {
				for _, pw := range purposeWords {
					if qw == pw {
						rank += 100
					}
				}
			}
		}
		if rank > 0 {
			results = append(results, ranked{match: Match{Purpose: purpose, Apps: apps}, rank: rank})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].rank != results[j].rank {
			return results[i].rank > results[j].rank
		}
		return results[i].match.Purpose < results[j].match.Purpose
	})

	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = r.match
	}
	return matches
}
