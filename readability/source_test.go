package readability_test

import (
	"testing"

	"github.com/docubot/docubot"
	"github.com/docubot/docubot/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_FindBody(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content and title", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Getting Started Guide</title></head>
<body>
<nav><a href="/">Home</a> <a href="/about">About</a></nav>
<article>
<h1>Getting Started Guide</h1>
<p>This guide walks you through installing the toolchain, configuring your
first project, and running the development server locally. Each step builds
on the previous one, so follow them in order.</p>
<p>Before you begin, make sure you have a recent release installed and that
your environment variables point at the correct configuration directory.
The installer verifies both of these during setup.</p>
</article>
<footer>Copyright 2026</footer>
</body>
</html>`

		src := readability.NewSource()
		content, title, err := src.FindBody(html)

		require.NoError(t, err)
		assert.Equal(t, "Getting Started Guide", title)
		assert.Contains(t, content, "installing the toolchain")
		assert.NotContains(t, content, "Copyright 2026")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		src := readability.NewSource()
		_, _, err := src.FindBody("")

		require.Error(t, err)
		assert.Equal(t, docubot.EINVALID, docubot.ErrorCode(err))
	})
}
