// Package controller orchestrates the catalog browsing session: it owns
// the filter/sort/search state, keeps the preview-card grid in sync with
// the derived visible list, and runs the detail modal's lifecycle.
package controller

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/pders01/poddeck/internal/card"
	"github.com/pders01/poddeck/internal/catalog"
	"github.com/pders01/poddeck/internal/debounce"
)

// DefaultSearchWait is the quiet period between a search keystroke and
// the recomputation it schedules.
const DefaultSearchWait = 300 * time.Millisecond

// Focusable is the element reference the modal records on open and
// restores focus to on close.
type Focusable interface {
	Focus()
	Blur()
}

// Controller derives the visible show list from an injected read-only
// catalog and a mutable filter state. There is no incremental diffing:
// every trigger recomputes the full list and rebuilds the grid.
type Controller struct {
	mu      sync.Mutex
	cat     *catalog.Catalog
	matcher catalog.Matcher
	filter  catalog.FilterState

	cards []*card.PreviewCard
	modal modalState

	searchDebounce *debounce.Debouncer[string]
	onChange       func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithMatcher swaps the text-filter engine. Nil keeps the default
// substring matcher.
func WithMatcher(m catalog.Matcher) Option {
	return func(c *Controller) { c.matcher = m }
}

// WithSearchWait overrides the search debounce quiet period.
func WithSearchWait(wait time.Duration) Option {
	return func(c *Controller) {
		c.searchDebounce = debounce.New(wait, c.ApplySearch)
	}
}

// WithOnChange registers a callback fired after every recomputation and
// modal transition, for hosts that repaint on change.
func WithOnChange(fn func()) Option {
	return func(c *Controller) { c.onChange = fn }
}

// New builds a controller over the catalog and renders the initial,
// unfiltered grid.
func New(cat *catalog.Catalog, opts ...Option) *Controller {
	c := &Controller{cat: cat}
	c.searchDebounce = debounce.New(DefaultSearchWait, c.ApplySearch)
	for _, opt := range opts {
		opt(c)
	}
	c.Refresh()
	return c
}

// Catalog exposes the injected catalog for hosts that need genre lists
// or lookups of their own.
func (c *Controller) Catalog() *catalog.Catalog { return c.cat }

// Filter returns the current filter state.
func (c *Controller) Filter() catalog.FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// VisibleShows recomputes the derived show list without touching the
// grid. Applying the same state twice yields the same list; the catalog
// is never mutated.
func (c *Controller) VisibleShows() []catalog.Show {
	c.mu.Lock()
	st, m := c.filter, c.matcher
	c.mu.Unlock()
	return c.cat.Visible(st, m)
}

// Cards returns the current grid contents in render order.
func (c *Controller) Cards() []*card.PreviewCard {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*card.PreviewCard(nil), c.cards...)
}

// SetSearchQuery schedules a recomputation for the query after the
// debounce wait. Rapid calls collapse to the last query.
func (c *Controller) SetSearchQuery(query string) {
	c.searchDebounce.Call(query)
}

// ApplySearch recomputes immediately with the given query, bypassing the
// debounce. Hosts that debounce in their own event loop call this.
func (c *Controller) ApplySearch(query string) {
	c.mu.Lock()
	c.filter.Query = query
	c.refreshLocked()
	c.mu.Unlock()
	c.notify()
}

// SetGenre changes the active genre filter and recomputes. Use
// catalog.GenreAll to disable genre filtering.
func (c *Controller) SetGenre(genreID int) {
	c.mu.Lock()
	c.filter.Genre = genreID
	c.refreshLocked()
	c.mu.Unlock()
	c.notify()
}

// SetSortMode changes the active sort mode and recomputes.
func (c *Controller) SetSortMode(mode catalog.SortMode) {
	c.mu.Lock()
	c.filter.Sort = mode
	c.refreshLocked()
	c.mu.Unlock()
	c.notify()
}

// Refresh recomputes the visible list and rebuilds the grid from the
// current state.
func (c *Controller) Refresh() {
	c.mu.Lock()
	c.refreshLocked()
	c.mu.Unlock()
	c.notify()
}

// Close cancels any pending debounced search.
func (c *Controller) Close() {
	c.searchDebounce.Stop()
}

func (c *Controller) refreshLocked() {
	shows := c.cat.Visible(c.filter, c.matcher)

	for _, pc := range c.cards {
		pc.Unmount()
	}

	c.cards = make([]*card.PreviewCard, 0, len(shows))
	for _, s := range shows {
		pc := card.New(cardAttributes(c.cat, s))
		pc.Mount()
		pc.Subscribe(func(ev card.SelectedEvent) {
			c.OpenShow(ev.ID, pc)
		})
		c.cards = append(c.cards, pc)
	}
}

// cardAttributes flattens a show into the card's string attribute
// surface. Genre ids resolve to titles and serialize as a JSON array.
func cardAttributes(cat *catalog.Catalog, s catalog.Show) map[string]string {
	attrs := map[string]string{
		card.AttrPid:     s.ID,
		card.AttrTitle:   s.Title,
		card.AttrCover:   s.Image,
		card.AttrSeasons: strconv.Itoa(s.Seasons),
		card.AttrUpdated: s.Updated,
	}
	if titles := cat.GenreTitles(s.Genres); len(titles) > 0 {
		if data, err := json.Marshal(titles); err == nil {
			attrs[card.AttrGenres] = string(data)
		}
	}
	return attrs
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}
