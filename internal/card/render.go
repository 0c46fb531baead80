package card

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/poddeck/internal/format"
	"github.com/pders01/poddeck/internal/placeholder"
)

const maxVisiblePills = 4

// render rebuilds the typed view model from the current attributes.
func (p *PreviewCard) render() {
	cover := p.attrs[AttrCover]
	if cover == "" || p.coverFailed {
		cover = placeholder.Image()
	}

	p.view = viewState{
		title:        p.attrs[AttrTitle],
		cover:        cover,
		genres:       parseGenres(p.attrs[AttrGenres]),
		seasonsLabel: seasonsLabel(p.attrs[AttrSeasons]),
		updatedLabel: format.UpdatedLabel(p.attrs[AttrUpdated]),
	}
	p.renders++
}

// parseGenres reads the genres attribute as a JSON array of strings,
// falling back to comma-split trimmed tokens when the JSON is invalid.
// Order is preserved from the input.
func parseGenres(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err == nil {
		return names
	}

	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// pills caps the visible genres at four, appending one "+n" pill for
// whatever remains.
func pills(genres []string) []string {
	if len(genres) <= maxVisiblePills {
		return append([]string(nil), genres...)
	}
	out := append([]string(nil), genres[:maxVisiblePills]...)
	return append(out, fmt.Sprintf("+%d", len(genres)-maxVisiblePills))
}

// seasonsLabel maps the seasons attribute to its display text. Absent,
// empty or unparseable values yield an empty label.
func seasonsLabel(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return ""
	}
	if n == 1 {
		return "1 season"
	}
	return fmt.Sprintf("%d seasons", n)
}

// Card styles. The card is style-encapsulated: hosts compose the
// rendered view without reaching into these.
var (
	cardBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#94A3B8")).
			Padding(0, 1)

	cardFocusedBorderStyle = cardBorderStyle.
				BorderForeground(lipgloss.Color("#95E1D3"))

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EAEAEA")).
			Bold(true)

	cardPillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A2E")).
			Background(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	cardMutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	cardCoverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Faint(true)
)

// View renders the card at the given inner width.
func (p *PreviewCard) View(width int) string {
	if width < 10 {
		width = 10
	}

	title := p.view.title
	if title == "" {
		title = p.AccessibleName()
	}

	rows := []string{cardTitleStyle.Render(truncate(title, width))}
	rows = append(rows, cardCoverStyle.Render(truncate(coverCaption(p.view.cover), width)))

	if pillTexts := p.GenrePills(); len(pillTexts) > 0 {
		rendered := make([]string, 0, len(pillTexts))
		for _, text := range pillTexts {
			rendered = append(rendered, cardPillStyle.Render(text))
		}
		rows = append(rows, lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(rendered, " ")))
	}

	meta := p.view.seasonsLabel
	if p.view.updatedLabel != "" {
		if meta != "" {
			meta += " • "
		}
		meta += p.view.updatedLabel
	}
	if meta != "" {
		rows = append(rows, cardMutedStyle.Render(truncate(meta, width)))
	}

	body := lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Top, rows...))
	if p.focused {
		return cardFocusedBorderStyle.Render(body)
	}
	return cardBorderStyle.Render(body)
}

// coverCaption keeps the cover line readable: inline data URIs collapse
// to a short marker instead of base64 noise.
func coverCaption(cover string) string {
	if strings.HasPrefix(cover, "data:") {
		return "▣ placeholder cover"
	}
	return "▣ " + cover
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if limit <= 0 {
		return ""
	}
	if len(r) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(r[:limit-1]) + "…"
}
