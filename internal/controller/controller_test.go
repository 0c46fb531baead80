package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/poddeck/internal/card"
	"github.com/pders01/poddeck/internal/catalog"
	"github.com/pders01/poddeck/internal/placeholder"
)

func testController(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	c := New(cat, opts...)
	t.Cleanup(c.Close)
	return c
}

func cardTitles(cards []*card.PreviewCard) []string {
	out := make([]string, 0, len(cards))
	for _, pc := range cards {
		out = append(out, pc.AccessibleName())
	}
	return out
}

func TestNewBuildsInitialGrid(t *testing.T) {
	c := testController(t)

	cards := c.Cards()
	assert.Len(t, cards, c.Catalog().Len())
	for _, pc := range cards {
		assert.True(t, pc.Mounted())
	}
}

func TestCardAttributesSurface(t *testing.T) {
	c := testController(t)

	var wars *card.PreviewCard
	for _, pc := range c.Cards() {
		if pc.ResolveID() == "5012" {
			wars = pc
		}
	}
	require.NotNil(t, wars)

	assert.Equal(t, "Business Wars", wars.AccessibleName())
	assert.Equal(t, "55 seasons", wars.SeasonsLabel())
	assert.Equal(t, []string{"Business"}, wars.GenrePills(), "genre ids resolve to titles")
}

func TestApplySearchRebuildsGrid(t *testing.T) {
	c := testController(t)

	c.ApplySearch("scam")
	assert.Equal(t, []string{"Scamfluencers"}, cardTitles(c.Cards()))

	c.ApplySearch("")
	assert.Len(t, c.Cards(), c.Catalog().Len())
}

func TestRebuildUnmountsOldCards(t *testing.T) {
	c := testController(t)
	before := c.Cards()

	c.ApplySearch("scam")

	for _, pc := range before {
		assert.False(t, pc.Mounted(), "replaced cards must be detached")
	}
}

func TestSetGenreAndSort(t *testing.T) {
	c := testController(t)

	c.SetGenre(5)
	c.SetSortMode(catalog.SortTitleAsc)
	assert.Equal(t, []string{"Even the Rich", "Scamfluencers"}, cardTitles(c.Cards()))

	st := c.Filter()
	assert.Equal(t, 5, st.Genre)
	assert.Equal(t, catalog.SortTitleAsc, st.Sort)

	c.SetGenre(catalog.GenreAll)
	assert.Len(t, c.Cards(), c.Catalog().Len())
}

func TestSetSearchQueryDebounces(t *testing.T) {
	c := testController(t, WithSearchWait(10*time.Millisecond))

	c.SetSearchQuery("s")
	c.SetSearchQuery("sc")
	c.SetSearchQuery("scam")

	require.Eventually(t, func() bool {
		return c.Filter().Query == "scam"
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"Scamfluencers"}, cardTitles(c.Cards()))
}

func TestOnChangeFires(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	var calls int
	c := New(cat, WithOnChange(func() { calls++ }))
	defer c.Close()

	require.Equal(t, 1, calls, "initial refresh notifies")

	c.ApplySearch("scam")
	assert.Equal(t, 2, calls)
}

type fakeFocusable struct {
	focused bool
	blurred bool
}

func (f *fakeFocusable) Focus() { f.focused = true }
func (f *fakeFocusable) Blur()  { f.blurred = true }

func TestOpenShow(t *testing.T) {
	c := testController(t)

	origin := &fakeFocusable{}
	require.True(t, c.OpenShow("10716", origin))

	content, open := c.Modal()
	require.True(t, open)
	assert.Equal(t, "10716", content.ShowID)
	assert.Equal(t, "Something Was Wrong", content.Title)
	assert.NotEmpty(t, content.Description)
	assert.Equal(t, []string{"Personal Growth", "Investigative Journalism"}, content.GenrePills)
	require.Len(t, content.Seasons, 3)
	assert.Equal(t, "Season 1: Ally & Sylvester", content.Seasons[0].Title)
	assert.True(t, origin.blurred, "opening captures focus away from the card")
}

func TestOpenShowWithoutSeasonBreakdown(t *testing.T) {
	c := testController(t)

	require.True(t, c.OpenShow("5882", nil))
	content, _ := c.Modal()
	assert.Nil(t, content.Seasons)
}

func TestOpenShowMissingCoverUsesPlaceholder(t *testing.T) {
	c := testController(t)

	require.True(t, c.OpenShow("8514", nil))
	content, _ := c.Modal()
	assert.Equal(t, placeholder.Image(), content.Cover)
}

func TestOpenShowUnknownIDIsSilent(t *testing.T) {
	c := testController(t)

	assert.False(t, c.OpenShow("31337", nil))
	_, open := c.Modal()
	assert.False(t, open)
}

func TestOpenShowWhileOpenIsIgnored(t *testing.T) {
	c := testController(t)

	require.True(t, c.OpenShow("10716", nil))
	assert.False(t, c.OpenShow("5012", nil))

	content, open := c.Modal()
	require.True(t, open)
	assert.Equal(t, "10716", content.ShowID, "first selection stays on screen")
}

func TestCloseModalRestoresFocus(t *testing.T) {
	c := testController(t)

	origin := &fakeFocusable{}
	require.True(t, c.OpenShow("10716", origin))

	c.CloseModal()

	_, open := c.Modal()
	assert.False(t, open)
	assert.True(t, origin.focused, "close returns focus to the invoking card")
}

func TestCloseModalIsIdempotent(t *testing.T) {
	c := testController(t)

	c.CloseModal()

	require.True(t, c.OpenShow("10716", nil))
	c.CloseModal()
	c.CloseModal()

	_, open := c.Modal()
	assert.False(t, open)
}

func TestNotifyModalCoverError(t *testing.T) {
	c := testController(t)

	require.True(t, c.OpenShow("10716", nil))
	content, _ := c.Modal()
	require.NotEqual(t, placeholder.Image(), content.Cover)

	c.NotifyModalCoverError()
	content, _ = c.Modal()
	assert.Equal(t, placeholder.Image(), content.Cover)

	// Further failures while the placeholder shows change nothing.
	c.NotifyModalCoverError()
	content, _ = c.Modal()
	assert.Equal(t, placeholder.Image(), content.Cover)
}

func TestCardSelectionOpensModal(t *testing.T) {
	c := testController(t)

	cards := c.Cards()
	require.NotEmpty(t, cards)

	cards[0].Click()

	content, open := c.Modal()
	require.True(t, open)
	assert.Equal(t, cards[0].ResolveID(), content.ShowID)
}

func TestVisibleShowsIsPure(t *testing.T) {
	c := testController(t)
	c.ApplySearch("the")

	first := c.VisibleShows()
	second := c.VisibleShows()
	assert.Equal(t, first, second)
	assert.Len(t, c.Cards(), len(first))
}
