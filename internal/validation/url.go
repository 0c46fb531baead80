package validation

import (
	"fmt"
	"net/url"
	"strings"
)

// CoverURLValidator checks cover image URLs before they are rendered or
// handed to an external viewer.
type CoverURLValidator struct {
	// MaxLength is the maximum allowed URL length
	MaxLength int
}

// NewCoverURLValidator creates a validator with sensible defaults.
func NewCoverURLValidator() *CoverURLValidator {
	return &CoverURLValidator{
		MaxLength: 2048,
	}
}

// ValidateAndNormalize validates a cover URL and returns the trimmed
// version. Inline data URIs pass through untouched since the renderer
// produces them itself.
func (v *CoverURLValidator) ValidateAndNormalize(input string) (string, error) {
	input = strings.TrimSpace(input)

	if input == "" {
		return "", fmt.Errorf("URL cannot be empty")
	}
	if len(input) > v.MaxLength {
		return "", fmt.Errorf("URL too long (max %d characters)", v.MaxLength)
	}

	if strings.HasPrefix(input, "data:") {
		return input, nil
	}

	if strings.ContainsAny(input, "<>\"'`") {
		return "", fmt.Errorf("URL contains invalid characters")
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return "", fmt.Errorf("invalid URL format: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return "", fmt.Errorf("URL must use http or https protocol")
	}
	if parsedURL.Host == "" {
		return "", fmt.Errorf("URL must have a valid hostname")
	}

	return parsedURL.String(), nil
}

// IsExternal reports whether the URL points at a remote resource rather
// than an inline data URI.
func IsExternal(rawURL string) bool {
	return rawURL != "" && !strings.HasPrefix(rawURL, "data:")
}
