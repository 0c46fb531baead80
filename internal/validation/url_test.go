package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAndNormalize(t *testing.T) {
	v := NewCoverURLValidator()

	t.Run("valid https URL", func(t *testing.T) {
		got, err := v.ValidateAndNormalize("https://example.com/cover.jpg")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/cover.jpg", got)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		got, err := v.ValidateAndNormalize("  https://example.com/a.png  ")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/a.png", got)
	})

	t.Run("data URIs pass through", func(t *testing.T) {
		uri := "data:image/svg+xml;base64,PHN2Zz48L3N2Zz4="
		got, err := v.ValidateAndNormalize(uri)
		require.NoError(t, err)
		assert.Equal(t, uri, got)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := v.ValidateAndNormalize("")
		assert.Error(t, err)
	})

	t.Run("rejects non-http schemes", func(t *testing.T) {
		_, err := v.ValidateAndNormalize("ftp://example.com/a.jpg")
		assert.Error(t, err)
	})

	t.Run("rejects missing host", func(t *testing.T) {
		_, err := v.ValidateAndNormalize("https:///a.jpg")
		assert.Error(t, err)
	})

	t.Run("rejects markup characters", func(t *testing.T) {
		_, err := v.ValidateAndNormalize(`https://example.com/"><script>`)
		assert.Error(t, err)
	})

	t.Run("rejects overlong URLs", func(t *testing.T) {
		_, err := v.ValidateAndNormalize("https://example.com/" + strings.Repeat("a", 3000))
		assert.Error(t, err)
	})
}

func TestIsExternal(t *testing.T) {
	assert.True(t, IsExternal("https://example.com/a.jpg"))
	assert.False(t, IsExternal("data:image/svg+xml;base64,xyz"))
	assert.False(t, IsExternal(""))
}
