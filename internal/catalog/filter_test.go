package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := Load()
	require.NoError(t, err)
	return cat
}

func titles(shows []Show) []string {
	out := make([]string, 0, len(shows))
	for _, s := range shows {
		out = append(out, s.Title)
	}
	return out
}

func TestVisibleDefaultState(t *testing.T) {
	cat := testCatalog(t)

	visible := cat.Visible(FilterState{}, nil)
	assert.Len(t, visible, cat.Len())
	assert.Equal(t, titles(cat.Shows()), titles(visible), "no filter keeps catalog order")
}

func TestVisibleTextFilter(t *testing.T) {
	cat := testCatalog(t)

	t.Run("matches title case-insensitively", func(t *testing.T) {
		visible := cat.Visible(FilterState{Query: "SCAM"}, nil)
		assert.Equal(t, []string{"Scamfluencers"}, titles(visible))
	})

	t.Run("matches description", func(t *testing.T) {
		visible := cat.Visible(FilterState{Query: "comedy"}, nil)
		assert.Equal(t, []string{"Dad Jokes Daily"}, titles(visible))
	})

	t.Run("whitespace query is ignored", func(t *testing.T) {
		visible := cat.Visible(FilterState{Query: "   "}, nil)
		assert.Len(t, visible, cat.Len())
	})

	t.Run("no matches yields empty, not nil panic", func(t *testing.T) {
		visible := cat.Visible(FilterState{Query: "zzzzzz"}, nil)
		assert.Empty(t, visible)
	})
}

func TestVisibleGenreFilter(t *testing.T) {
	cat := testCatalog(t)

	t.Run("uses genre show index", func(t *testing.T) {
		visible := cat.Visible(FilterState{Genre: 5}, nil)
		assert.Equal(t, []string{"Scamfluencers", "Even the Rich"}, titles(visible))
	})

	t.Run("index entries without a show are skipped", func(t *testing.T) {
		// Genre 8 references "31337" which has no show record.
		visible := cat.Visible(FilterState{Genre: 8}, nil)
		assert.Equal(t, []string{"The Foundering", "Morning Signal"}, titles(visible))
	})

	t.Run("unknown genre falls back to per-show lists", func(t *testing.T) {
		shows := []Show{
			{ID: "a", Title: "A", Genres: []int{42}},
			{ID: "b", Title: "B", Genres: []int{7}},
		}
		loose := New(shows, nil, nil)
		visible := loose.Visible(FilterState{Genre: 42}, nil)
		assert.Equal(t, []string{"A"}, titles(visible))
	})

	t.Run("no members yields empty list", func(t *testing.T) {
		visible := cat.Visible(FilterState{Genre: 424242}, nil)
		assert.Empty(t, visible)
	})
}

func TestVisibleSorting(t *testing.T) {
	cat := testCatalog(t)

	t.Run("recent puts newest first and unparseable last", func(t *testing.T) {
		visible := cat.Visible(FilterState{Sort: SortRecent}, nil)
		got := titles(visible)
		assert.Equal(t, "This Is Actually Happening", got[0])
		assert.Equal(t, "Slow Burn Mornings", got[len(got)-1])
	})

	t.Run("seasons descending", func(t *testing.T) {
		visible := cat.Visible(FilterState{Sort: SortSeasonsDesc}, nil)
		got := titles(visible)
		assert.Equal(t, "Business Wars", got[0])
		assert.Equal(t, "American History Tellers", got[1])

		for i := 1; i < len(visible); i++ {
			assert.GreaterOrEqual(t, visible[i-1].Seasons, visible[i].Seasons)
		}
	})

	t.Run("title ascending", func(t *testing.T) {
		visible := cat.Visible(FilterState{Genre: 5, Sort: SortTitleAsc}, nil)
		assert.Equal(t, []string{"Even the Rich", "Scamfluencers"}, titles(visible))
	})

	t.Run("seasons sort is stable for ties", func(t *testing.T) {
		shows := []Show{
			{ID: "1", Title: "First", Seasons: 3},
			{ID: "2", Title: "Second", Seasons: 3},
			{ID: "3", Title: "Third", Seasons: 9},
		}
		tied := New(shows, nil, nil)
		visible := tied.Visible(FilterState{Sort: SortSeasonsDesc}, nil)
		assert.Equal(t, []string{"Third", "First", "Second"}, titles(visible))
	})
}

func TestVisiblePipelineOrder(t *testing.T) {
	cat := testCatalog(t)

	// Query narrows first, genre narrows the remainder, sort runs last.
	visible := cat.Visible(FilterState{Query: "the", Genre: 5, Sort: SortTitleAsc}, nil)
	assert.Equal(t, []string{"Even the Rich", "Scamfluencers"}, titles(visible))
}

func TestVisibleDoesNotMutateCatalog(t *testing.T) {
	cat := testCatalog(t)
	before := titles(cat.Shows())

	cat.Visible(FilterState{Query: "war", Genre: 6, Sort: SortTitleAsc}, nil)
	cat.Visible(FilterState{Sort: SortRecent}, nil)

	assert.Equal(t, before, titles(cat.Shows()))
}

func TestVisibleIsIdempotent(t *testing.T) {
	cat := testCatalog(t)
	st := FilterState{Query: "the", Sort: SortSeasonsDesc}

	first := titles(cat.Visible(st, nil))
	second := titles(cat.Visible(st, nil))
	assert.Equal(t, first, second)
}

type failingMatcher struct{}

func (failingMatcher) MatchingIDs(string, []Show) (map[string]struct{}, error) {
	return nil, fmt.Errorf("index unavailable")
}

type fixedMatcher struct{ ids map[string]struct{} }

func (m fixedMatcher) MatchingIDs(string, []Show) (map[string]struct{}, error) {
	return m.ids, nil
}

func TestVisibleMatcherFallback(t *testing.T) {
	cat := testCatalog(t)

	t.Run("matcher error falls back to substring", func(t *testing.T) {
		visible := cat.Visible(FilterState{Query: "scam"}, failingMatcher{})
		assert.Equal(t, []string{"Scamfluencers"}, titles(visible))
	})

	t.Run("custom matcher drives the text filter", func(t *testing.T) {
		m := fixedMatcher{ids: map[string]struct{}{"5012": {}}}
		visible := cat.Visible(FilterState{Query: "anything"}, m)
		assert.Equal(t, []string{"Business Wars"}, titles(visible))
	})
}
