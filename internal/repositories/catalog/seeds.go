package catalog

import (
	"bytes"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
)

// SeedFile is the file name holding a kind's seed entries
func SeedFile(kind paranormal.CatalogKind) string {
	return string(kind) + ".yaml"
}

// LoadSeeds reads <kind>.yaml for every catalog kind found in dir. Each file
// is a YAML list of entries. Missing files are skipped; an entry that fails
// validation fails the whole load.
func LoadSeeds(dir string) (Seeds, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "seed directory %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.InvalidArgumentf("seed path %s is not a directory", dir)
	}

	seeds := make(Seeds)
	for _, kind := range paranormal.CatalogKinds {
		path := filepath.Join(dir, SeedFile(kind))
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}

		entries, err := DecodeSeeds(kind, data)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid seed file %s", path)
		}
		seeds[kind] = entries
	}

	return seeds, nil
}

// DecodeSeeds parses a YAML list of kind entries and validates each one
func DecodeSeeds(kind paranormal.CatalogKind, data []byte) ([]paranormal.CatalogEntry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var nodes []yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "seed file must be a YAML list")
	}

	entries := make([]paranormal.CatalogEntry, 0, len(nodes))
	seen := make(map[string]int, len(nodes))
	for i := range nodes {
		entry, err := paranormal.NewCatalogEntry(kind)
		if err != nil {
			return nil, err
		}
		if err := nodes[i].Decode(entry); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "entry %d (line %d)", i, nodes[i].Line)
		}
		if err := entry.Validate(); err != nil {
			return nil, errors.Wrapf(err, "entry %d (line %d)", i, nodes[i].Line)
		}

		name := field(entry.EntryName())
		if prev, dup := seen[name]; dup {
			return nil, errors.InvalidArgumentf("entry %d (line %d) duplicates entry %d: %s", i, nodes[i].Line, prev, entry.EntryName())
		}
		seen[name] = i
		entries = append(entries, entry)
	}

	return entries, nil
}
