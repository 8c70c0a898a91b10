package complete

import (
	"errors"
	"fmt"
	"testing"

	"github.com/archpkg/pkgserve/pkg/alias"
	"github.com/archpkg/pkgserve/pkg/pkgindex"
	"github.com/archpkg/pkgserve/pkg/usage"
)

func testEntries() []pkgindex.PackageEntry {
	return []pkgindex.PackageEntry{
		{Name: "visual-studio-code", Description: "Code editor by Microsoft", Source: pkgindex.SourcePacman},
		{Name: "vscodium", Description: "Community build of the VS Code editor", Source: pkgindex.SourceAUR},
		{Name: "firefox", Description: "Web browser", Source: pkgindex.SourcePacman},
		{Name: "filezilla", Description: "FTP client", Source: pkgindex.SourcePacman},
		{Name: "chromium", Description: "Web browser", Source: pkgindex.SourcePacman},
		{Name: "neovim", Description: "Vim-based text editor", Source: pkgindex.SourcePacman},
		{Name: "git", Description: "Version control system", Source: pkgindex.SourcePacman},
		{Name: "gitea", Description: "Self-hosted git service", Source: pkgindex.SourcePacman},
		{Name: "htop", Description: "Interactive process viewer", Source: pkgindex.SourcePacman},
	}
}

func newTestService(entries []pkgindex.PackageEntry, store *usage.Store) *Service {
	index, _ := pkgindex.Build(entries)
	return NewService(index, alias.Default(), store, Options{})
}

func contains(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}

// Every prefix of every package name must surface that package when the
// limit is large enough.
func TestPrefixInclusion(t *testing.T) {
	svc := newTestService(testEntries(), nil)

	for _, entry := range testEntries() {
		for i := 1; i <= len(entry.Name); i++ {
			prefix := entry.Name[:i]
			names, err := svc.Complete(prefix, ContextInstall, 100)
			if err != nil {
				t.Fatalf("Complete(%q) failed: %v", prefix, err)
			}
			if !contains(names, entry.Name) {
				t.Errorf("Complete(%q) missing %q", prefix, entry.Name)
			}
		}
	}
}

func TestAbbreviationCompletions(t *testing.T) {
	svc := newTestService(testEntries(), nil)

	testCases := []struct {
		query       string
		want        string
		reject      string
		description string
	}{
		{"vsc", "visual-studio-code", "firefox", "token initials"},
		{"ff", "firefox", "chromium", "doubled first letter"},
		{"nvim", "neovim", "visual-studio-code", "interior subsequence"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			names, err := svc.Complete(tc.query, ContextInstall, 50)
			if err != nil {
				t.Fatal(err)
			}
			if !contains(names, tc.want) {
				t.Errorf("Complete(%q) = %v, missing %q", tc.query, names, tc.want)
			}
			if contains(names, tc.reject) {
				t.Errorf("Complete(%q) = %v, should not include %q", tc.query, names, tc.reject)
			}
		})
	}
}

// An exact name match must outrank a prefix match on a longer name,
// all else equal.
func TestExactOutranksPrefix(t *testing.T) {
	svc := newTestService(testEntries(), nil)

	names, err := svc.Complete("git", ContextInstall, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) < 2 || names[0] != "git" {
		t.Errorf("Complete(git) = %v, want git ranked first", names)
	}
	if !contains(names, "gitea") {
		t.Errorf("Complete(git) should still include gitea, got %v", names)
	}
}

// Full alias keys substitute the canonical name before matching, so
// "vscode" completes to visual-studio-code at the top.
func TestAliasResolution(t *testing.T) {
	svc := newTestService(testEntries(), nil)

	names, err := svc.Complete("vscode", ContextInstall, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) == 0 || names[0] != "visual-studio-code" {
		t.Errorf("Complete(vscode) = %v, want visual-studio-code first", names)
	}
}

// A partially typed alias key is not resolved; it matches the index
// directly instead.
func TestPartialAliasFallsThrough(t *testing.T) {
	svc := newTestService(testEntries(), nil)

	names, err := svc.Complete("vsco", ContextInstall, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !contains(names, "vscodium") {
		t.Errorf("Complete(vsco) = %v, want vscodium via prefix match", names)
	}
}

// In remove context, packages the user actually used outrank equally
// matching unused ones.
func TestRemoveContextBiasesUsed(t *testing.T) {
	store := usage.NewStore()
	for i := 0; i < 50; i++ {
		store.RecordUsage("firefox")
	}
	svc := newTestService(testEntries(), store)

	names, err := svc.Complete("fi", ContextRemove, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) < 2 {
		t.Fatalf("Complete(fi) = %v, want firefox and filezilla", names)
	}
	if names[0] != "firefox" {
		t.Errorf("used package should rank first in remove context, got %v", names)
	}
}

func TestInvalidLimit(t *testing.T) {
	svc := newTestService(testEntries(), nil)

	for _, limit := range []int{0, -1, -100} {
		_, err := svc.Complete("fire", ContextInstall, limit)
		if !errors.Is(err, ErrInvalidLimit) {
			t.Errorf("limit %d: got %v, want ErrInvalidLimit", limit, err)
		}
	}
}

func TestEmptyQuery(t *testing.T) {
	svc := newTestService(testEntries(), nil)

	for _, query := range []string{"", "   ", "\t"} {
		names, err := svc.Complete(query, ContextInstall, 10)
		if err != nil {
			t.Errorf("empty query must not error: %v", err)
		}
		if len(names) != 0 {
			t.Errorf("empty query returned %v", names)
		}
	}
}

func TestEmptyDataset(t *testing.T) {
	svc := newTestService(nil, nil)

	names, err := svc.Complete("fire", ContextInstall, 10)
	if err != nil {
		t.Errorf("empty dataset must not error: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("empty dataset returned %v", names)
	}
}

func TestLimitTruncates(t *testing.T) {
	var entries []pkgindex.PackageEntry
	for i := 0; i < 30; i++ {
		entries = append(entries, pkgindex.PackageEntry{
			Name:   fmt.Sprintf("pkg-%02d", i),
			Source: pkgindex.SourcePacman,
		})
	}
	svc := newTestService(entries, nil)

	names, err := svc.Complete("pkg", ContextInstall, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 5 {
		t.Errorf("limit 5 returned %d names", len(names))
	}
}

// Identical inputs must produce identical orderings, call after call.
func TestDeterministicOrdering(t *testing.T) {
	svc := newTestService(testEntries(), nil)

	first, err := svc.Complete("v", ContextInstall, 20)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := svc.Complete("v", ContextInstall, 20)
		if err != nil {
			t.Fatal(err)
		}
		if len(again) != len(first) {
			t.Fatalf("run %d: length changed from %d to %d", i, len(first), len(again))
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: order changed at %d: %v vs %v", i, j, first, again)
			}
		}
	}
}

func TestParseContextDefaults(t *testing.T) {
	testCases := []struct {
		input string
		want  Context
	}{
		{"install", ContextInstall},
		{"remove", ContextRemove},
		{"REMOVE", ContextRemove},
		{"search", ContextSearch},
		{"suggest", ContextSuggest},
		{"bogus", ContextInstall},
		{"", ContextInstall},
	}
	for _, tc := range testCases {
		if got := ParseContext(tc.input); got != tc.want {
			t.Errorf("ParseContext(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

// Frequency and recency bonuses only reorder, they never surface a
// candidate that didn't match, and never exceed their caps relative to a
// cold store.
func TestScoreBonusCaps(t *testing.T) {
	entry := pkgindex.PackageEntry{Name: "firefox", Description: "Web browser", Source: pkgindex.SourcePacman}

	cold := usage.NewStore().Snapshot()
	base := score(entry, pkgindex.MatchExact, "firefox", ContextInstall, cold, DefaultRecencyHorizon)

	hot := usage.NewStore()
	for i := 0; i < 100; i++ {
		hot.RecordUsage("firefox")
	}
	boosted := score(entry, pkgindex.MatchExact, "firefox", ContextInstall, hot.Snapshot(), DefaultRecencyHorizon)

	delta := boosted - base
	if delta <= 0 {
		t.Errorf("usage must increase the score, delta %d", delta)
	}
	if delta > 30 {
		t.Errorf("frequency+recency bonuses exceed caps: delta %d", delta)
	}
}

func BenchmarkComplete(b *testing.B) {
	var entries []pkgindex.PackageEntry
	for i := 0; i < 2000; i++ {
		entries = append(entries, pkgindex.PackageEntry{
			Name:        fmt.Sprintf("package-%04d", i),
			Description: "Synthetic benchmark entry",
			Source:      pkgindex.SourcePacman,
		})
	}
	svc := newTestService(entries, nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		queries := []string{"pack", "package-1", "p", "package-19"}
		if _, err := svc.Complete(queries[i%len(queries)], ContextInstall, 10); err != nil {
			b.Fatal(err)
		}
	}
}
