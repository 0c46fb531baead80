// Package format turns raw catalog timestamps into the short labels the
// preview cards and the detail modal display.
package format

import (
	"fmt"
	"time"

	"github.com/pders01/poddeck/internal/catalog"
)

// UpdatedLabel maps a timestamp string to a human label. Empty input
// yields an empty label; unparseable input is returned unchanged so the
// caller sees the raw value rather than an error.
func UpdatedLabel(value string) string {
	return updatedLabelAt(value, time.Now())
}

func updatedLabelAt(value string, now time.Time) string {
	if value == "" {
		return ""
	}
	t, ok := catalog.ParseTimestamp(value)
	if !ok {
		return value
	}

	elapsed := now.Sub(t)
	switch {
	case elapsed < time.Minute:
		return "Updated just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("Updated %dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("Updated %dh ago", int(elapsed.Hours()))
	case elapsed < 7*24*time.Hour:
		return fmt.Sprintf("Updated %d days ago", int(elapsed.Hours()/24))
	default:
		return t.Format("Updated Jan 2")
	}
}
