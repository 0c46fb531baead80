// Package search provides pluggable text filters for the catalog. The
// default substring matcher lives in the catalog package; this package
// adds an in-memory Bleve engine for fuzzier matching when the config
// asks for it.
package search

import (
	"fmt"

	"github.com/pders01/poddeck/internal/catalog"
)

// Engine names accepted by the config.
const (
	EngineSubstring = "substring"
	EngineBleve     = "bleve"
)

// NewMatcher builds the matcher named by engine over the catalog's
// shows. Unknown names are an error so that a config typo surfaces at
// startup instead of silently changing search behavior.
func NewMatcher(engine string, c *catalog.Catalog) (catalog.Matcher, error) {
	switch engine {
	case "", EngineSubstring:
		return catalog.SubstringMatcher{}, nil
	case EngineBleve:
		return NewBleveMatcher(c.Shows())
	default:
		return nil, fmt.Errorf("unknown search engine %q", engine)
	}
}
