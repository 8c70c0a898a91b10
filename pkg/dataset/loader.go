/*
Package dataset loads the static package dataset the backend adapters
produce. The engine treats the dataset as authoritative and read-only; a
missing or empty dataset just means an empty candidate set.

The on-disk format is a TOML file of records:

	[[packages]]
	name = "firefox"
	description = "Web browser"
	source = "pacman"
*/
package dataset

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/archpkg/pkgserve/pkg/pkgindex"
)

type packageRecord struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Source      string `toml:"source"`
}

type datasetFile struct {
	Packages []packageRecord `toml:"packages"`
}

// LoadFile parses a dataset file into index entries. Records without a name
// are skipped with a warning; unrecognized sources load with zero source
// priority rather than failing, so datasets from newer adapters still work.
func LoadFile(path string) ([]pkgindex.PackageEntry, error) {
	var file datasetFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}

	entries := make([]pkgindex.PackageEntry, 0, len(file.Packages))
	for _, rec := range file.Packages {
		if rec.Name == "" {
			log.Warnf("Skipping dataset record with empty name (description %q)", rec.Description)
			continue
		}
		source := pkgindex.ParseSource(rec.Source)
		if source == pkgindex.SourceUnknown && rec.Source != "" {
			log.Warnf("Unknown source %q for package %s", rec.Source, rec.Name)
		}
		entries = append(entries, pkgindex.PackageEntry{
			Name:        rec.Name,
			Description: rec.Description,
			Source:      source,
		})
	}
	log.Debugf("Loaded %d dataset records from %s", len(entries), path)
	return entries, nil
}
