package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/poddeck/internal/catalog"
	"github.com/pders01/poddeck/internal/config"
	"github.com/pders01/poddeck/internal/controller"
	"github.com/pders01/poddeck/internal/media"
)

// searchDebounceFireMsg carries the debounce sequence number so stale
// timers fall through without recomputing.
type searchDebounceFireMsg struct {
	seq int
}

// App is the host page: it renders the controller's card grid, the
// search input, the genre/sort selectors and the detail modal, and
// feeds user events back into the controller.
type App struct {
	config *config.Config
	ctrl   *controller.Controller

	keyHandler  *KeyHandler
	launcher    *media.Launcher
	searchInput textinput.Model
	viewport    viewport.Model

	view       View
	focusIndex int

	genreOptions []int
	genreIndex   int
	sortModes    []catalog.SortMode
	sortIndex    int

	pendingQuery string
	searchSeq    int

	width  int
	height int

	glamourRenderer *glamour.TermRenderer
	rendererWidth   int

	err error
}

func NewApp(ctrl *controller.Controller, cfg *config.Config) *App {
	si := textinput.New()
	si.Placeholder = "Search titles and descriptions..."
	si.CharLimit = cfg.Search.MaxQueryLength

	vp := viewport.New(0, 0)

	app := &App{
		config:       cfg,
		ctrl:         ctrl,
		launcher:     media.NewLauncher(cfg),
		searchInput:  si,
		viewport:     vp,
		view:         ViewBrowse,
		genreOptions: []int{catalog.GenreAll},
		sortModes: []catalog.SortMode{
			catalog.SortNone,
			catalog.SortRecent,
			catalog.SortSeasonsDesc,
			catalog.SortTitleAsc,
		},
	}

	for _, g := range ctrl.Catalog().Genres() {
		app.genreOptions = append(app.genreOptions, g.ID)
	}

	app.keyHandler = NewKeyHandler(app, cfg)
	app.focusCard(0)

	return app
}

func (a *App) Init() tea.Cmd {
	return tea.EnterAltScreen
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		inputWidth := msg.Width - 4
		if inputWidth < 20 {
			inputWidth = msg.Width
		}
		a.searchInput.Width = inputWidth

		a.viewport.Width = a.modalInnerWidth()
		a.viewport.Height = a.modalBodyHeight()
		if a.view == ViewDetail {
			a.renderDetailBody()
		}

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case searchDebounceFireMsg:
		if msg.seq == a.searchSeq {
			a.ctrl.ApplySearch(a.pendingQuery)
			a.afterRecompute()
		}
	}

	return a, nil
}

// afterRecompute re-anchors card focus after the grid was rebuilt.
func (a *App) afterRecompute() {
	a.focusCard(a.focusIndex)
}

// focusCard moves keyboard focus to the card at index, clamping to the
// grid bounds. All other cards are blurred.
func (a *App) focusCard(index int) {
	cards := a.ctrl.Cards()
	if len(cards) == 0 {
		a.focusIndex = 0
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(cards) {
		index = len(cards) - 1
	}
	for i, pc := range cards {
		if i == index {
			pc.Focus()
		} else {
			pc.Blur()
		}
	}
	a.focusIndex = index
}

func (a *App) columns() int {
	minWidth := a.config.UI.Card.MinWidth
	if minWidth <= 0 {
		minWidth = 32
	}
	cols := a.width / minWidth
	if cols < 1 {
		cols = 1
	}
	if cols > 4 {
		cols = 4
	}
	return cols
}

func (a *App) activeGenreTitle() string {
	id := a.genreOptions[a.genreIndex]
	if id == catalog.GenreAll {
		return ""
	}
	if g, ok := a.ctrl.Catalog().GenreByID(id); ok {
		return g.Title
	}
	return ""
}

func (a *App) modalInnerWidth() int {
	w := (a.width * 4) / 5
	if w > 90 {
		w = 90
	}
	if w < 20 {
		w = a.width - 4
		if w < 10 {
			w = 10
		}
	}
	return w
}

func (a *App) modalBodyHeight() int {
	h := a.height - 16
	if h < 5 {
		h = 5
	}
	return h
}

func (a *App) getRenderer() (*glamour.TermRenderer, error) {
	wrap := a.modalInnerWidth()
	if max := a.config.UI.Detail.WordWrapMaxWidth; max > 0 && wrap > max {
		wrap = max
	}
	if min := a.config.UI.Detail.WordWrapMinWidth; min > 0 && wrap < min {
		wrap = min
	}

	if a.glamourRenderer == nil || a.rendererWidth != wrap {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return nil, err
		}
		a.glamourRenderer = r
		a.rendererWidth = wrap
	}

	return a.glamourRenderer, nil
}

// enterDetail switches to the detail view for the currently open modal.
func (a *App) enterDetail() {
	a.view = ViewDetail
	a.viewport.Width = a.modalInnerWidth()
	a.viewport.Height = a.modalBodyHeight()
	a.renderDetailBody()
	a.viewport.GotoTop()
}

func (a *App) renderDetailBody() {
	content, open := a.ctrl.Modal()
	if !open {
		return
	}
	body := content.Description
	if r, err := a.getRenderer(); err == nil {
		if rendered, err := r.Render(body); err == nil {
			body = rendered
		}
	}
	a.viewport.SetContent(body)
}

func (a *App) View() string {
	var content string
	switch a.view {
	case ViewDetail:
		content = a.detailView()
	default:
		content = a.browseView()
	}

	status := a.statusBar()
	separatorWidth := a.width
	if separatorWidth < 0 {
		separatorWidth = 0
	}
	separator := SeparatorStyle.Render(strings.Repeat("─", separatorWidth))

	return lipgloss.JoinVertical(lipgloss.Top, content, separator, status)
}

func (a *App) browseView() string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		HeaderStyle.Render(CompactLogo),
		"  ",
		a.searchInput.View(),
	)

	cards := a.ctrl.Cards()
	var grid string
	if len(cards) == 0 {
		grid = lipgloss.NewStyle().
			Width(a.width).
			Height(a.height-6).
			Align(lipgloss.Center, lipgloss.Center).
			Render(GetWelcomeMessage())
	} else {
		cols := a.columns()
		cardWidth := a.width/cols - 4
		if cardWidth < 16 {
			cardWidth = 16
		}

		var rows []string
		for start := 0; start < len(cards); start += cols {
			end := start + cols
			if end > len(cards) {
				end = len(cards)
			}
			rendered := make([]string, 0, cols)
			for _, pc := range cards[start:end] {
				rendered = append(rendered, pc.View(cardWidth))
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
		}
		grid = lipgloss.JoinVertical(lipgloss.Top, rows...)
	}

	body := lipgloss.NewStyle().
		Width(a.width).
		Height(a.height - 3).
		MaxHeight(a.height - 3).
		Render(lipgloss.JoinVertical(lipgloss.Top, header, "", grid))

	return body
}

func (a *App) detailView() string {
	content, open := a.ctrl.Modal()
	if !open {
		return a.browseView()
	}

	inner := a.modalInnerWidth()

	rows := []string{ModalTitleStyle.Render(truncateEnd(content.Title, inner))}

	cover := content.Cover
	if strings.HasPrefix(cover, "data:") {
		cover = "placeholder cover"
	}
	rows = append(rows, TimeStyle.Render(truncateMiddle("▣ "+cover, inner)))

	if len(content.GenrePills) > 0 {
		pills := make([]string, 0, len(content.GenrePills))
		for _, title := range content.GenrePills {
			pills = append(pills, PillStyle.Render(title))
		}
		rows = append(rows, lipgloss.NewStyle().MaxWidth(inner).Render(strings.Join(pills, " ")))
	}

	if content.Updated != "" {
		rows = append(rows, TimeStyle.Render(content.Updated))
	}

	rows = append(rows, "", a.viewport.View())

	if len(content.Seasons) > 0 {
		rows = append(rows, "", HeaderStyle.Render("Seasons"))
		for _, season := range content.Seasons {
			line := season.Title + " • " + MsgEpisodeCount(season.Episodes)
			rows = append(rows, ModalTextStyle.Render(truncateEnd(line, inner)))
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(AccentColor).
		Padding(1, 2).
		Width(inner + 4).
		Render(lipgloss.JoinVertical(lipgloss.Top, rows...))

	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height - 3).
		Align(lipgloss.Center, lipgloss.Center).
		Render(modal)
}

func (a *App) statusBar() string {
	if a.err != nil {
		return StatusBarStyle.Width(a.width).Render(
			ErrorMessageStyle.Render("✗ " + a.err.Error()))
	}

	summary := MsgFilterSummary(len(a.ctrl.Cards()), a.activeGenreTitle(), a.sortModes[a.sortIndex])
	help := strings.Join(a.keyHandler.GetHelpForCurrentView(), " • ")

	line := summary
	if help != "" {
		line += "  │  " + help
	}
	return StatusBarStyle.Width(a.width).Render(truncateEnd(line, a.width-2))
}
