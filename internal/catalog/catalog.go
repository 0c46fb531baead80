package catalog

// Catalog is the injected, read-only data source the controller derives
// its visible list from. It is constructed once at startup and never
// mutated afterwards.
type Catalog struct {
	shows   []Show
	genres  []Genre
	seasons map[string][]SeasonDetail

	showsByID  map[string]int
	genresByID map[int]int
}

// New builds a catalog from loaded collections. Shows keep their input
// order; duplicate ids keep the first occurrence.
func New(shows []Show, genres []Genre, seasons []SeasonSet) *Catalog {
	c := &Catalog{
		shows:      make([]Show, 0, len(shows)),
		genres:     append([]Genre(nil), genres...),
		seasons:    make(map[string][]SeasonDetail, len(seasons)),
		showsByID:  make(map[string]int, len(shows)),
		genresByID: make(map[int]int, len(genres)),
	}

	for _, s := range shows {
		if _, dup := c.showsByID[s.ID]; dup {
			continue
		}
		if s.UpdatedAt.IsZero() && s.Updated != "" {
			if t, ok := ParseTimestamp(s.Updated); ok {
				s.UpdatedAt = t
			}
		}
		c.showsByID[s.ID] = len(c.shows)
		c.shows = append(c.shows, s)
	}

	for i, g := range c.genres {
		if _, dup := c.genresByID[g.ID]; !dup {
			c.genresByID[g.ID] = i
		}
	}

	for _, set := range seasons {
		if _, dup := c.seasons[set.ID]; dup {
			continue
		}
		c.seasons[set.ID] = append([]SeasonDetail(nil), set.Details...)
	}

	return c
}

// Shows returns a defensive copy of the show collection in catalog order.
func (c *Catalog) Shows() []Show {
	return append([]Show(nil), c.shows...)
}

// Genres returns a defensive copy of the genre collection.
func (c *Catalog) Genres() []Genre {
	return append([]Genre(nil), c.genres...)
}

// Len reports the number of shows in the catalog.
func (c *Catalog) Len() int { return len(c.shows) }

// ShowByID looks up a show by its id.
func (c *Catalog) ShowByID(id string) (Show, bool) {
	i, ok := c.showsByID[id]
	if !ok {
		return Show{}, false
	}
	return c.shows[i], true
}

// GenreByID looks up a genre by its numeric id.
func (c *Catalog) GenreByID(id int) (Genre, bool) {
	i, ok := c.genresByID[id]
	if !ok {
		return Genre{}, false
	}
	return c.genres[i], true
}

// SeasonsFor returns the season breakdown for a show, or ok=false when
// no breakdown is available.
func (c *Catalog) SeasonsFor(showID string) ([]SeasonDetail, bool) {
	details, ok := c.seasons[showID]
	if !ok {
		return nil, false
	}
	return append([]SeasonDetail(nil), details...), true
}

// GenreTitles resolves genre ids to their display titles, preserving
// order. Ids with no matching genre are skipped.
func (c *Catalog) GenreTitles(ids []int) []string {
	var titles []string
	for _, id := range ids {
		if g, ok := c.GenreByID(id); ok {
			titles = append(titles, g.Title)
		}
	}
	return titles
}
