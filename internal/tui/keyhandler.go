package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pders01/poddeck/internal/config"
)

type KeyHandler struct {
	app    *App
	config *config.Config
}

func NewKeyHandler(app *App, cfg *config.Config) *KeyHandler {
	return &KeyHandler{app: app, config: cfg}
}

func (kh *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return kh.app, tea.Quit
	}

	switch {
	case kh.app.view == ViewDetail:
		return kh.handleDetailKeys(msg)
	case kh.app.searchInput.Focused():
		return kh.handleSearchInput(msg)
	default:
		return kh.handleBrowseKeys(msg)
	}
}

// handleDetailKeys routes keys while the modal is open. The grid below
// is inert until the modal closes, which is the scroll-lock equivalent.
func (kh *KeyHandler) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case kh.config.Keys.Back, "x", "enter":
		kh.app.ctrl.CloseModal()
		kh.app.view = ViewBrowse
		kh.app.err = nil
		return kh.app, nil
	case kh.config.Keys.Quit:
		return kh.app, tea.Quit
	case "o":
		if content, open := kh.app.ctrl.Modal(); open {
			if err := kh.app.launcher.Open(content.Cover); err != nil {
				kh.app.err = err
			}
		}
		return kh.app, nil
	default:
		var cmd tea.Cmd
		kh.app.viewport, cmd = kh.app.viewport.Update(msg)
		return kh.app, cmd
	}
}

func (kh *KeyHandler) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case kh.config.Keys.Back:
		kh.app.searchInput.Blur()
		return kh.app, nil
	case "enter":
		kh.app.searchInput.Blur()
		query := kh.sanitizeSearchInput(kh.app.searchInput.Value())
		kh.app.searchSeq++
		kh.app.ctrl.ApplySearch(query)
		kh.app.afterRecompute()
		return kh.app, nil
	default:
		prev := kh.app.searchInput.Value()
		var cmd tea.Cmd
		kh.app.searchInput, cmd = kh.app.searchInput.Update(msg)

		newVal := kh.sanitizeSearchInput(kh.app.searchInput.Value())
		if newVal != prev {
			kh.app.pendingQuery = newVal
			kh.app.searchSeq++
			seq := kh.app.searchSeq
			wait := time.Duration(kh.config.Search.DebounceMillis) * time.Millisecond
			return kh.app, tea.Batch(cmd, tea.Tick(wait, func(time.Time) tea.Msg {
				return searchDebounceFireMsg{seq: seq}
			}))
		}
		return kh.app, cmd
	}
}

func (kh *KeyHandler) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	cols := kh.app.columns()

	switch key {
	case kh.config.Keys.Quit:
		return kh.app, tea.Quit

	case kh.config.Keys.Back:
		if kh.app.searchInput.Value() != "" {
			kh.app.searchInput.Reset()
			kh.app.searchSeq++
			kh.app.ctrl.ApplySearch("")
			kh.app.afterRecompute()
			return kh.app, nil
		}
		return kh.app, tea.Quit

	case kh.config.Keys.Search:
		kh.app.searchInput.Focus()
		return kh.app, textinput.Blink

	case kh.config.Keys.Genre:
		kh.app.genreIndex = (kh.app.genreIndex + 1) % len(kh.app.genreOptions)
		kh.app.ctrl.SetGenre(kh.app.genreOptions[kh.app.genreIndex])
		kh.app.afterRecompute()
		return kh.app, nil

	case kh.config.Keys.Sort:
		kh.app.sortIndex = (kh.app.sortIndex + 1) % len(kh.app.sortModes)
		kh.app.ctrl.SetSortMode(kh.app.sortModes[kh.app.sortIndex])
		kh.app.afterRecompute()
		return kh.app, nil

	case "left", "h":
		kh.app.focusCard(kh.app.focusIndex - 1)
		return kh.app, nil
	case "right", "l":
		kh.app.focusCard(kh.app.focusIndex + 1)
		return kh.app, nil
	case "up", "k":
		kh.app.focusCard(kh.app.focusIndex - cols)
		return kh.app, nil
	case "down", "j":
		kh.app.focusCard(kh.app.focusIndex + cols)
		return kh.app, nil

	case "enter", " ":
		cards := kh.app.ctrl.Cards()
		if kh.app.focusIndex < len(cards) {
			cards[kh.app.focusIndex].HandleKey(key)
			if _, open := kh.app.ctrl.Modal(); open {
				kh.app.enterDetail()
			}
		}
		return kh.app, nil
	}

	return kh.app, nil
}

// sanitizeSearchInput trims, collapses whitespace and bounds the query
// length.
func (kh *KeyHandler) sanitizeSearchInput(input string) string {
	input = strings.TrimSpace(input)

	if max := kh.config.Search.MaxQueryLength; max > 0 && len(input) > max {
		input = input[:max]
	}

	input = strings.ReplaceAll(input, "\n", " ")
	input = strings.ReplaceAll(input, "\r", " ")
	input = strings.ReplaceAll(input, "\t", " ")

	for strings.Contains(input, "  ") {
		input = strings.ReplaceAll(input, "  ", " ")
	}

	return strings.TrimSpace(input)
}

// GetHelpForCurrentView returns the status-bar key hints.
func (kh *KeyHandler) GetHelpForCurrentView() []string {
	switch {
	case kh.app.view == ViewDetail:
		return []string{"↑↓: scroll", "o: open cover", "esc: close"}
	case kh.app.searchInput.Focused():
		return []string{"enter: apply", "esc: done"}
	default:
		return []string{
			kh.config.Keys.Search + ": search",
			kh.config.Keys.Genre + ": genre",
			kh.config.Keys.Sort + ": sort",
			"enter: open",
			kh.config.Keys.Quit + ": quit",
		}
	}
}
