package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/pders01/poddeck/internal/catalog"
)

// BleveMatcher is a memory-only Bleve index over show titles and
// descriptions. The catalog is static, so the index is built once at
// construction and never updated.
type BleveMatcher struct {
	idx bleve.Index
}

// NewBleveMatcher indexes the given shows into a fresh in-memory index.
func NewBleveMatcher(shows []catalog.Show) (*BleveMatcher, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, err
	}

	batch := idx.NewBatch()
	for _, s := range shows {
		if err := batch.Index(s.ID, map[string]any{
			"title":       s.Title,
			"description": s.Description,
		}); err != nil {
			return nil, err
		}
	}
	if err := idx.Batch(batch); err != nil {
		return nil, err
	}

	return &BleveMatcher{idx: idx}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	im := bleve.NewIndexMapping()
	im.DefaultAnalyzer = standard.Name

	title := bleve.NewTextFieldMapping()
	title.Analyzer = standard.Name
	title.Store = false

	desc := bleve.NewTextFieldMapping()
	desc.Analyzer = standard.Name
	desc.Store = false

	dm := bleve.NewDocumentMapping()
	dm.AddFieldMappingsAt("title", title)
	dm.AddFieldMappingsAt("description", desc)

	im.DefaultMapping = dm
	return im
}

// MatchingIDs implements catalog.Matcher using a match query over the
// indexed fields. The shows argument only bounds the result size; the
// index already covers the whole catalog.
func (b *BleveMatcher) MatchingIDs(query string, shows []catalog.Show) (map[string]struct{}, error) {
	q := bleve.NewMatchQuery(query)
	req := bleve.NewSearchRequest(q)
	req.Size = len(shows)

	res, err := b.idx.Search(req)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]struct{}, len(res.Hits))
	for _, hit := range res.Hits {
		ids[hit.ID] = struct{}{}
	}
	return ids, nil
}

// DocCount reports how many shows the index holds.
func (b *BleveMatcher) DocCount() (int, error) {
	n, err := b.idx.DocCount()
	return int(n), err
}

// Close releases the index.
func (b *BleveMatcher) Close() error {
	return b.idx.Close()
}
