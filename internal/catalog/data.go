package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/pders01/poddeck/internal/debuglog"
	"github.com/pders01/poddeck/internal/validation"
)

//go:embed catalog.toml
var sampleTOML []byte

type catalogFile struct {
	Shows   []Show      `toml:"shows"`
	Genres  []Genre     `toml:"genres"`
	Seasons []SeasonSet `toml:"seasons"`
}

// Load builds the catalog from the embedded sample data.
func Load() (*Catalog, error) {
	return parse(sampleTOML)
}

// LoadFile builds a catalog from a user-supplied TOML file using the
// same schema as the embedded sample. The file is read once; the
// resulting catalog is immutable like any other.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog data: %w", err)
	}
	if len(f.Shows) == 0 {
		return nil, fmt.Errorf("catalog data contains no shows")
	}

	// A broken cover URL is never fatal. Blank it so the placeholder
	// takes over at render time.
	v := validation.NewCoverURLValidator()
	for i, s := range f.Shows {
		if s.Image == "" {
			continue
		}
		normalized, err := v.ValidateAndNormalize(s.Image)
		if err != nil {
			debuglog.Debugf("show %s: dropping cover %q: %v", s.ID, s.Image, err)
			f.Shows[i].Image = ""
			continue
		}
		f.Shows[i].Image = normalized
	}

	return New(f.Shows, f.Genres, f.Seasons), nil
}
