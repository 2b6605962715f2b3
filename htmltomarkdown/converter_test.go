package htmltomarkdown_test

import (
	"testing"

	"github.com/docubot/docubot"
	"github.com/docubot/docubot/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Install</h1><p>Download the binary.</p><h2>From source</h2>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Install")
		assert.Contains(t, md, "Download the binary.")
		assert.Contains(t, md, "## From source")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>alpha</li><li>beta</li></ul><ol><li>one</li><li>two</li></ol>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- alpha")
		assert.Contains(t, md, "- beta")
		assert.Contains(t, md, "1. one")
		assert.Contains(t, md, "2. two")
	})

	t.Run("converts code blocks with language hint", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="language-go">fmt.Println("hi")</code></pre>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "```go")
		assert.Contains(t, md, `fmt.Println("hi")`)
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Option</th><th>Default</th></tr></thead>
<tbody><tr><td>timeout</td><td>30s</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		// Cells may be padded for alignment, so check content and structure.
		assert.Contains(t, md, "Option")
		assert.Contains(t, md, "timeout")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("converts links and emphasis", func(t *testing.T) {
		t.Parallel()

		html := `<p>See <a href="https://example.com/docs">the docs</a> for <strong>details</strong>.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[the docs](https://example.com/docs)")
		assert.Contains(t, md, "**details**")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  \n ")

		require.Error(t, err)
		assert.Equal(t, docubot.EINVALID, docubot.ErrorCode(err))
	})
}
