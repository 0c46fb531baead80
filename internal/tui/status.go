package tui

import (
	"fmt"

	"github.com/pders01/poddeck/internal/catalog"
)

// Canonical short status fragments used across the app.
const (
	MsgNoResults = "No results"
)

func MsgShowCount(n int) string {
	if n == 1 {
		return "1 show"
	}
	return fmt.Sprintf("%d shows", n)
}

func MsgEpisodeCount(n int) string {
	if n == 1 {
		return "1 episode"
	}
	return fmt.Sprintf("%d episodes", n)
}

// MsgFilterSummary describes the active filter state for the status
// bar, e.g. "7 shows • genre: Comedy • sort: title".
func MsgFilterSummary(visible int, genreTitle string, sort catalog.SortMode) string {
	s := MsgShowCount(visible)
	if genreTitle != "" {
		s += " • genre: " + genreTitle
	}
	if sort != catalog.SortNone {
		s += " • sort: " + sort.String()
	}
	return s
}
