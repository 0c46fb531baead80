package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/poddeck/internal/catalog"
	"github.com/pders01/poddeck/internal/config"
	"github.com/pders01/poddeck/internal/controller"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	cat, err := catalog.Load()
	require.NoError(t, err)

	ctrl := controller.New(cat)
	t.Cleanup(ctrl.Close)

	app := NewApp(ctrl, config.TestConfig())
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return app
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewAppStartsInBrowseView(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, ViewBrowse, app.view)
	require.NotEmpty(t, app.ctrl.Cards())
	assert.True(t, app.ctrl.Cards()[0].Focused(), "first card takes initial focus")
}

func TestEnterOpensDetailView(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ViewDetail, app.view)
	content, open := app.ctrl.Modal()
	require.True(t, open)
	assert.Equal(t, app.ctrl.Cards()[0].ResolveID(), content.ShowID)
}

func TestEscClosesDetailView(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ViewDetail, app.view)

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ViewBrowse, app.view)
	_, open := app.ctrl.Modal()
	assert.False(t, open)
	assert.True(t, app.ctrl.Cards()[app.focusIndex].Focused(), "focus returns to the grid")
}

func TestQuitKey(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestGenreCycling(t *testing.T) {
	app := newTestApp(t)

	app.Update(keyRune('g'))
	assert.Equal(t, app.genreOptions[1], app.ctrl.Filter().Genre)

	// Cycling through every option wraps back to all genres.
	for i := 1; i < len(app.genreOptions); i++ {
		app.Update(keyRune('g'))
	}
	assert.Equal(t, catalog.GenreAll, app.ctrl.Filter().Genre)
}

func TestSortCycling(t *testing.T) {
	app := newTestApp(t)

	app.Update(keyRune('s'))
	assert.Equal(t, catalog.SortRecent, app.ctrl.Filter().Sort)

	app.Update(keyRune('s'))
	assert.Equal(t, catalog.SortSeasonsDesc, app.ctrl.Filter().Sort)
}

func TestGridNavigation(t *testing.T) {
	app := newTestApp(t)

	app.Update(keyRune('l'))
	assert.Equal(t, 1, app.focusIndex)
	assert.True(t, app.ctrl.Cards()[1].Focused())
	assert.False(t, app.ctrl.Cards()[0].Focused())

	app.Update(keyRune('h'))
	assert.Equal(t, 0, app.focusIndex)

	// Clamped at the edges.
	app.Update(keyRune('h'))
	assert.Equal(t, 0, app.focusIndex)
}

func TestSearchFlow(t *testing.T) {
	app := newTestApp(t)

	app.Update(keyRune('/'))
	require.True(t, app.searchInput.Focused())

	for _, r := range "scam" {
		app.Update(keyRune(r))
	}
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, app.searchInput.Focused())
	assert.Equal(t, "scam", app.ctrl.Filter().Query)
	require.Len(t, app.ctrl.Cards(), 1)
	assert.Equal(t, "Scamfluencers", app.ctrl.Cards()[0].AccessibleName())
}

func TestStaleDebounceTickIsIgnored(t *testing.T) {
	app := newTestApp(t)

	app.pendingQuery = "old"
	app.searchSeq = 5

	app.Update(searchDebounceFireMsg{seq: 4})
	assert.Empty(t, app.ctrl.Filter().Query, "stale tick must not apply its query")

	app.Update(searchDebounceFireMsg{seq: 5})
	assert.Equal(t, "old", app.ctrl.Filter().Query)
}

func TestEscClearsSearchBeforeQuitting(t *testing.T) {
	app := newTestApp(t)

	app.Update(keyRune('/'))
	app.Update(keyRune('x'))
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "x", app.ctrl.Filter().Query)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Empty(t, app.ctrl.Filter().Query)

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewRendersStatusBar(t *testing.T) {
	app := newTestApp(t)

	out := app.View()
	assert.Contains(t, out, MsgShowCount(app.ctrl.Catalog().Len()))
	assert.Contains(t, out, CompactLogo)
}

func TestDetailViewRendersModalContent(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ViewDetail, app.view)

	content, _ := app.ctrl.Modal()
	out := app.View()
	assert.Contains(t, out, content.Title)
}
