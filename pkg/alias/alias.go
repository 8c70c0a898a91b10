// Package alias maps shorthand tokens to canonical package names.
// Resolution only fires on a complete key: partially typed aliases fall
// through to normal index matching on the token itself.
package alias

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Map is the alias table, read-only at query time. Keys are stored
// case-folded; values are canonical package names.
type Map struct {
	entries map[string]string
}

// New builds a Map from raw alias→canonical pairs. Chains are collapsed at
// load so that Resolve is idempotent even when a value is itself an alias
// key pointing elsewhere.
func New(pairs map[string]string) *Map {
	m := &Map{entries: make(map[string]string, len(pairs))}
	for k, v := range pairs {
		m.set(k, v)
	}
	m.collapse()
	return m
}

func (m *Map) set(key, canonical string) {
	key = strings.ToLower(strings.TrimSpace(key))
	canonical = strings.TrimSpace(canonical)
	if key == "" || canonical == "" {
		return
	}
	m.entries[key] = canonical
}

// collapse rewrites chained values (a→b, b→c becomes a→c). The iteration
// bound guards against alias cycles in hand-edited files.
func (m *Map) collapse() {
	for i := 0; i < len(m.entries); i++ {
		changed := false
		for k, v := range m.entries {
			next, ok := m.entries[strings.ToLower(v)]
			if ok && next != v {
				m.entries[k] = next
				changed = true
			}
		}
		if !changed {
			return
		}
	}
	log.Warn("alias table contains a cycle, resolution may be order-dependent")
}

// Resolve returns the canonical name for a complete alias key, or the token
// unchanged. Lookup is case-insensitive. Resolve(Resolve(x)) == Resolve(x).
func (m *Map) Resolve(token string) string {
	if canonical, ok := m.entries[strings.ToLower(strings.TrimSpace(token))]; ok {
		return canonical
	}
	return token
}

// Len returns the number of alias keys.
func (m *Map) Len() int {
	return len(m.entries)
}

// Keys returns the alias keys in sorted order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MergeFile loads alias pairs from a TOML file of `alias = "canonical"`
// lines and merges them over the existing table, file entries winning.
func (m *Map) MergeFile(path string) error {
	pairs := make(map[string]string)
	if _, err := toml.DecodeFile(path, &pairs); err != nil {
		return fmt.Errorf("parsing alias file %s: %w", path, err)
	}
	for k, v := range pairs {
		m.set(k, v)
	}
	m.collapse()
	log.Debugf("Merged %d aliases from %s", len(pairs), path)
	return nil
}

// Prune drops aliases whose canonical name the index does not know about,
// enforcing the invariant that every alias resolves to an indexed package.
// Returns the dropped keys.
func (m *Map) Prune(has func(name string) bool) []string {
	var dropped []string
	for k, v := range m.entries {
		if !has(v) {
			delete(m.entries, k)
			dropped = append(dropped, k)
		}
	}
	sort.Strings(dropped)
	return dropped
}

// Default returns the builtin alias table for common shorthand.
func Default() *Map {
	return New(map[string]string{
		// editors and IDEs
		"vscode":  "visual-studio-code",
		"code":    "visual-studio-code",
		"nvim":    "neovim",
		"sublime": "sublime-text",
		"idea":    "intellij-idea-community",

		// browsers
		"chrome": "google-chrome",
		"ff":     "firefox",
		"brave":  "brave-bin",

		// office
		"libre":  "libreoffice-fresh",
		"office": "libreoffice-fresh",

		// graphics
		"photoshop":   "gimp",
		"illustrator": "inkscape",

		// media and streaming
		"obs":   "obs-studio",
		"music": "vlc",

		// communication
		"telegram": "telegram-desktop",
		"signal":   "signal-desktop",
		"slack":    "slack-desktop",

		// system tools
		"top":   "htop",
		"fetch": "neofetch",

		// development
		"node": "nodejs",
		"pip":  "python-pip",
	})
}
