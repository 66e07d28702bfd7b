package htmltomarkdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiagrib/webeater"
	"github.com/tiagrib/webeater/htmltomarkdown"
)

// Ensure Converter implements webeater.Converter at compile time.
var _ webeater.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<p>Hello, world!</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Title</h1><h2>Subtitle</h2>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>Visit <a href="https://example.com">Example</a> for more info.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>First</li><li>Second</li></ul><ol><li>One</li></ol>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
		assert.Contains(t, md, "1. One")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><tr><th>Name</th><th>Value</th></tr><tr><td>a</td><td>1</td></tr></table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "| Name | Value |")
		assert.Contains(t, md, "| a | 1 |")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, webeater.EINVALID, webeater.ErrorCode(err))
	})
}
