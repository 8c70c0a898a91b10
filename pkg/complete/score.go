package complete

import (
	"strings"
	"time"

	"github.com/archpkg/pkgserve/pkg/pkgindex"
	"github.com/archpkg/pkgserve/pkg/usage"
)

// Match-type base weights. Only the single strongest name-level match
// counts; a description-only hit qualifies with base 0.
const (
	baseExact        = 100
	basePrefix       = 80
	baseAbbreviation = 70
	baseSubstring    = 60

	descriptionBonus = 20
	wordBoundaryHit  = 10
	removeUsedBonus  = 15
)

// candidate is a scored completion, ephemeral to one invocation.
type candidate struct {
	entry pkgindex.PackageEntry
	match pkgindex.MatchType
	score int
}

func baseScore(match pkgindex.MatchType) int {
	switch match {
	case pkgindex.MatchExact:
		return baseExact
	case pkgindex.MatchPrefix:
		return basePrefix
	case pkgindex.MatchAbbreviation:
		return baseAbbreviation
	case pkgindex.MatchSubstring:
		return baseSubstring
	default:
		return 0
	}
}

// score computes the deterministic rank value for one candidate. It is a
// pure function of the query, the match type, the entry metadata, the
// frequency snapshot, and the context.
func score(entry pkgindex.PackageEntry, match pkgindex.MatchType, query string, ctx Context, snap usage.Snapshot, horizon time.Duration) int {
	foldedQuery := pkgindex.Fold(query)
	foldedDesc := strings.ToLower(entry.Description)

	total := baseScore(match)

	if foldedQuery != "" && strings.Contains(foldedDesc, foldedQuery) {
		total += descriptionBonus
	}

	// One hit per matched whole word, cumulative across name tokens and
	// description words.
	nameTokens := pkgindex.NameTokens(pkgindex.Fold(entry.Name))
	descWords := pkgindex.DescriptionWords(entry.Description)
	for _, token := range pkgindex.QueryTokens(foldedQuery) {
		for _, nameToken := range nameTokens {
			if token == nameToken {
				total += wordBoundaryHit
			}
		}
		for _, word := range descWords {
			if token == word {
				total += wordBoundaryHit
			}
		}
	}

	total += snap.FrequencyBonus(entry.Name)
	total += snap.RecencyBonus(entry.Name, horizon)
	total += entry.Source.Priority()

	if ctx == ContextRemove {
		if rec, ok := snap.Lookup(entry.Name); ok && rec.Count > 0 {
			total += removeUsedBonus
		}
	}
	return total
}

// less is the total order for the final sort: higher score first, then
// exact match, then source priority, then name ascending. Total and stable
// so identical inputs always produce identical orderings.
func less(a, b candidate) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	aExact := a.match == pkgindex.MatchExact
	bExact := b.match == pkgindex.MatchExact
	if aExact != bExact {
		return aExact
	}
	if ap, bp := a.entry.Source.Priority(), b.entry.Source.Priority(); ap != bp {
		return ap > bp
	}
	return a.entry.Name < b.entry.Name
}
