package purpose

import (
	"os"
	"path/filepath"
	"testing"
)

func testSuggester() *Suggester {
	return New(map[string][]string{
		"video editing":  {"kdenlive", "shotcut", "davinci-resolve"},
		"photo editing":  {"gimp", "krita"},
		"web browsing":   {"firefox", "chromium"},
		"screen capture": {"obs-studio", "flameshot"},
	})
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		input       string
		want        string
		description string
	}{
		{"I want apps for video editing", "video editing", "strips filler words"},
		{"VIDEO Editing", "video editing", "lowercases"},
		{"  video   editing  ", "video editing", "collapses whitespace"},
		{"install the", "", "all filler reduces to empty"},
		{"", "", "empty input"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := Normalize(tc.input); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestFind(t *testing.T) {
	s := testSuggester()

	testCases := []struct {
		query       string
		wantFirst   string
		description string
	}{
		{"video editing", "video editing", "exact purpose"},
		{"I want apps for video editing", "video editing", "exact after normalization"},
		{"video", "video editing", "substring of one purpose"},
		{"editing", "photo editing", "word overlap ties order by purpose name"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			matches := s.Find(tc.query)
			if len(matches) == 0 {
				t.Fatalf("Find(%q) returned nothing", tc.query)
			}
			if matches[0].Purpose != tc.wantFirst {
				t.Errorf("Find(%q) first = %q, want %q", tc.query, matches[0].Purpose, tc.wantFirst)
			}
			if len(matches[0].Apps) == 0 {
				t.Errorf("Find(%q) first match has no apps", tc.query)
			}
		})
	}

	if matches := s.Find("quantum chromodynamics"); len(matches) != 0 {
		t.Errorf("unmatched query returned %v", matches)
	}
	if matches := s.Find("   "); matches != nil {
		t.Errorf("blank query returned %v", matches)
	}
}

// "editing" hits two purposes; both must come back, deterministically.
func TestFindTiesStable(t *testing.T) {
	s := testSuggester()

	first := s.Find("editing")
	if len(first) != 2 {
		t.Fatalf("Find(editing) = %d matches, want 2", len(first))
	}
	for i := 0; i < 5; i++ {
		again := s.Find("editing")
		for j := range first {
			if again[j].Purpose != first[j].Purpose {
				t.Fatalf("ordering unstable: %v vs %v", first, again)
			}
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "purposes.yaml")
	content := "video editing:\n  - kdenlive\n  - shotcut\nweb browsing:\n  - firefox\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("loaded %d purposes, want 2", s.Len())
	}
	matches := s.Find("video editing")
	if len(matches) == 0 || matches[0].Apps[0] != "kdenlive" {
		t.Errorf("Find after load = %v", matches)
	}
}

func TestLoadFileMissing(t *testing.T) {
	s, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing mapping file")
	}
	if s == nil || s.Len() != 0 {
		t.Error("missing file must still yield an empty suggester")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "purposes.yaml")
	if err := os.WriteFile(path, []byte(":\n  - broken\n :::"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for malformed mapping file")
	}
}
