package pkgindex

import "strings"

// Source identifies the package-manager backend a record came from.
type Source int

const (
	SourceUnknown Source = iota
	SourcePacman
	SourceAUR
	SourceFlatpak
	SourceSnap
	SourceAPT
	SourceDNF
)

var sourceNames = map[Source]string{
	SourceUnknown: "unknown",
	SourcePacman:  "pacman",
	SourceAUR:     "aur",
	SourceFlatpak: "flatpak",
	SourceSnap:    "snap",
	SourceAPT:     "apt",
	SourceDNF:     "dnf",
}

func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseSource maps a backend name to its Source. Unrecognized names map to
// SourceUnknown so a dataset produced by a newer adapter still loads.
func ParseSource(name string) Source {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pacman":
		return SourcePacman
	case "aur":
		return SourceAUR
	case "flatpak":
		return SourceFlatpak
	case "snap":
		return SourceSnap
	case "apt":
		return SourceAPT
	case "dnf":
		return SourceDNF
	default:
		return SourceUnknown
	}
}

// Priority returns the fixed ranking weight for a backend.
// Native repos beat AUR, AUR beats the sandboxed formats.
func (s Source) Priority() int {
	switch s {
	case SourcePacman:
		return 10
	case SourceAUR:
		return 8
	case SourceFlatpak:
		return 6
	case SourceSnap:
		return 4
	default:
		return 0
	}
}

// PackageEntry is one record of the static package dataset.
// Entries are immutable once the index is built.
type PackageEntry struct {
	Name        string
	Description string
	Source      Source
}

// MatchType classifies how strongly a query matched an entry.
// Higher values are stronger name-level matches.
type MatchType int

const (
	MatchNone MatchType = iota
	MatchDescription
	MatchSubstring
	MatchAbbreviation
	MatchPrefix
	MatchExact
)

func (m MatchType) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchPrefix:
		return "prefix"
	case MatchAbbreviation:
		return "abbreviation"
	case MatchSubstring:
		return "substring"
	case MatchDescription:
		return "description"
	default:
		return "none"
	}
}
