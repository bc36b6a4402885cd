package skill

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk layout of a seed catalog (configs/skills.yaml).
type catalogFile struct {
	Skills []Definition `yaml:"skills"`
}

// FileSource reads the catalog from a YAML file on every fetch.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource { return &FileSource{Path: path} }

func (s *FileSource) FetchAll(ctx context.Context) ([]Definition, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrCatalogUnavailable, s.Path, err)
	}
	defs, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCatalogUnavailable, s.Path, err)
	}
	return defs, nil
}

// ParseCatalog decodes a YAML catalog, canonicalises every entry and
// merges entries that share a name (later entries win, as with upserts).
func ParseCatalog(data []byte) ([]Definition, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	index := map[string]int{}
	var out []Definition
	for i, d := range f.Skills {
		if err := Validate(d); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		d = Canonical(d)
		if j, ok := index[d.Name]; ok {
			out[j] = d
			continue
		}
		index[d.Name] = len(out)
		out = append(out, d)
	}
	return out, nil
}
