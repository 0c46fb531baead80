// Package placeholder produces the deterministic fallback cover used
// when a show has no image or its image fails to load.
package placeholder

import (
	"encoding/base64"
	"fmt"
)

const (
	// DefaultWidth and DefaultHeight give the fixed cover aspect ratio.
	DefaultWidth  = 400
	DefaultHeight = 300
)

const svgTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d"><defs><linearGradient id="g" x1="0" y1="0" x2="1" y2="1"><stop offset="0%%" stop-color="#4ECDC4"/><stop offset="100%%" stop-color="#1A1A2E"/></linearGradient></defs><rect width="%d" height="%d" fill="url(#g)"/><text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" font-family="sans-serif" font-size="%d" fill="#EAEAEA">Podcast Cover</text></svg>`

// Image returns the default 400x300 placeholder cover as an inline SVG
// data URI. No file or network dependency; the output is stable for a
// given size.
func Image() string {
	return ImageSized(DefaultWidth, DefaultHeight)
}

// ImageSized returns a placeholder cover at the given dimensions.
// Non-positive dimensions fall back to the defaults.
func ImageSized(width, height int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	fontSize := height / 12
	if fontSize < 10 {
		fontSize = 10
	}
	svg := fmt.Sprintf(svgTemplate, width, height, width, height, width, height, fontSize)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
