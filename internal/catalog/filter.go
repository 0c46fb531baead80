package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode selects how the visible list is ordered. Exactly one mode is
// active at a time and sorting always runs last, over the already
// filtered set.
type SortMode int

const (
	SortNone SortMode = iota
	SortRecent
	SortSeasonsDesc
	SortTitleAsc
)

func (m SortMode) String() string {
	switch m {
	case SortRecent:
		return "recent"
	case SortSeasonsDesc:
		return "seasons"
	case SortTitleAsc:
		return "title"
	default:
		return "none"
	}
}

// GenreAll disables genre filtering.
const GenreAll = 0

// FilterState is the session-scoped filter/sort/search state owned by
// the controller.
type FilterState struct {
	Query string
	Genre int
	Sort  SortMode
}

// Matcher selects shows for a non-empty search query. Implementations
// return the set of matching show ids and must not mutate shows.
type Matcher interface {
	MatchingIDs(query string, shows []Show) (map[string]struct{}, error)
}

// SubstringMatcher is the default text filter: a show matches when its
// lower-cased title or description contains the lower-cased, trimmed
// query.
type SubstringMatcher struct{}

func (SubstringMatcher) MatchingIDs(query string, shows []Show) (map[string]struct{}, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	ids := make(map[string]struct{})
	if q == "" {
		for _, s := range shows {
			ids[s.ID] = struct{}{}
		}
		return ids, nil
	}
	for _, s := range shows {
		if strings.Contains(strings.ToLower(s.Title), q) ||
			strings.Contains(strings.ToLower(s.Description), q) {
			ids[s.ID] = struct{}{}
		}
	}
	return ids, nil
}

var titleCollator = collate.New(language.English, collate.Loose)

// Visible derives the visible show list from the filter state. The
// pipeline order is fixed: snapshot, text filter, genre filter, sort.
// The catalog itself is never mutated. A nil matcher falls back to
// SubstringMatcher; a matcher error likewise falls back rather than
// surfacing, since filtering is never fatal.
func (c *Catalog) Visible(st FilterState, m Matcher) []Show {
	shows := c.Shows()

	if q := strings.TrimSpace(st.Query); q != "" {
		if m == nil {
			m = SubstringMatcher{}
		}
		ids, err := m.MatchingIDs(q, shows)
		if err != nil {
			ids, _ = SubstringMatcher{}.MatchingIDs(q, shows)
		}
		kept := shows[:0]
		for _, s := range shows {
			if _, ok := ids[s.ID]; ok {
				kept = append(kept, s)
			}
		}
		shows = kept
	}

	if st.Genre != GenreAll {
		shows = c.filterByGenre(shows, st.Genre)
	}

	sortShows(shows, st.Sort)
	return shows
}

// filterByGenre prefers the genre's own show-id index. When the genre
// cannot be found, or carries no index, it falls back to each show's
// numeric genre list so that ids missing from the genre collection still
// filter correctly.
func (c *Catalog) filterByGenre(shows []Show, genreID int) []Show {
	genre, found := c.GenreByID(genreID)

	kept := shows[:0]
	if found && genre.Shows != nil {
		members := make(map[string]struct{}, len(genre.Shows))
		for _, id := range genre.Shows {
			members[id] = struct{}{}
		}
		for _, s := range shows {
			if _, ok := members[s.ID]; ok {
				kept = append(kept, s)
			}
		}
		return kept
	}

	for _, s := range shows {
		for _, id := range s.Genres {
			if id == genreID {
				kept = append(kept, s)
				break
			}
		}
	}
	return kept
}

func sortShows(shows []Show, mode SortMode) {
	switch mode {
	case SortRecent:
		// Unparseable or missing dates carry a zero UpdatedAt and land
		// at the end of the descending order.
		sort.SliceStable(shows, func(i, j int) bool {
			return shows[i].UpdatedAt.After(shows[j].UpdatedAt)
		})
	case SortSeasonsDesc:
		sort.SliceStable(shows, func(i, j int) bool {
			return shows[i].Seasons > shows[j].Seasons
		})
	case SortTitleAsc:
		sort.SliceStable(shows, func(i, j int) bool {
			return titleCollator.CompareString(shows[i].Title, shows[j].Title) < 0
		})
	}
}
