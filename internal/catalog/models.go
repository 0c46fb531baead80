package catalog

import (
	"time"
)

// Show is one podcast in the catalog. Identity is ID, globally unique.
// Shows are read-only for the lifetime of the session.
type Show struct {
	ID          string `toml:"id" json:"id"`
	Title       string `toml:"title" json:"title"`
	Description string `toml:"description" json:"description"`
	Seasons     int    `toml:"seasons" json:"seasons"`
	Image       string `toml:"image" json:"image,omitempty"`
	Genres      []int  `toml:"genres" json:"genres,omitempty"`

	// Updated is the raw timestamp string as it appears in the data
	// source. It is passed through unchanged to the card attribute
	// surface so that the date formatter sees exactly what the data
	// carried, malformed values included.
	Updated string `toml:"updated" json:"updated"`

	// UpdatedAt is Updated parsed once at load time. Zero when Updated
	// is empty or unparseable, which makes such shows sort earliest
	// under the recent sort mode.
	UpdatedAt time.Time `toml:"-" json:"-"`
}

// Genre is a category with a secondary index of show ids. The Shows list
// may reference ids that are not present in the show collection; lookups
// tolerate that rather than treating it as corruption.
type Genre struct {
	ID          int      `toml:"id" json:"id"`
	Title       string   `toml:"title" json:"title"`
	Description string   `toml:"description" json:"description"`
	Shows       []string `toml:"shows" json:"shows,omitempty"`
}

// SeasonDetail is one season's title and episode count.
type SeasonDetail struct {
	Title    string `toml:"title" json:"title"`
	Episodes int    `toml:"episodes" json:"episodes"`
}

// SeasonSet is the optional per-show season breakdown. Absence of a
// show's SeasonSet means no breakdown is available, not an error.
type SeasonSet struct {
	ID      string         `toml:"id" json:"id"`
	Details []SeasonDetail `toml:"details" json:"seasonDetails"`
}

// ParseTimestamp parses the timestamp formats the catalog data carries.
// The bool result reports whether the value was parseable.
func ParseTimestamp(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
