package docubot_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/docubot/docubot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunker_short_body_yields_single_chunk(t *testing.T) {
	t.Parallel()

	c := &docubot.Chunker{}
	chunks := c.Chunk(&docubot.PageContent{
		URL:       "https://example.com",
		PlainText: "A short page.",
	})

	require.Len(t, chunks, 1)
	assert.Equal(t, "A short page.", chunks[0].Text)
	assert.Equal(t, docubot.ContentTypeMain, chunks[0].ContentType)
	assert.Equal(t, 0, chunks[0].ChunkIndex)
}

func TestChunker_prefers_markdown_body(t *testing.T) {
	t.Parallel()

	c := &docubot.Chunker{}
	chunks := c.Chunk(&docubot.PageContent{
		URL:          "https://example.com",
		PlainText:    "plain",
		MarkdownText: "# Title\n\nmarkdown body",
	})

	require.NotEmpty(t, chunks)
	assert.Equal(t, "# Title\n\nmarkdown body", chunks[0].Text)
}

func TestChunker_never_returns_empty_chunks(t *testing.T) {
	t.Parallel()

	c := &docubot.Chunker{}

	t.Run("whitespace-only body", func(t *testing.T) {
		t.Parallel()
		chunks := c.Chunk(&docubot.PageContent{
			URL:       "https://example.com",
			PlainText: "   \n\n\t  ",
		})
		assert.Empty(t, chunks)
	})

	t.Run("whitespace-only structured elements", func(t *testing.T) {
		t.Parallel()
		chunks := c.Chunk(&docubot.PageContent{
			URL: "https://example.com",
			Structured: docubot.StructuredContent{
				Headings: []docubot.Heading{{Level: 1, Text: "  ", Markdown: "  "}},
				Tables:   []docubot.Table{{Markdown: "\n"}},
			},
		})
		assert.Empty(t, chunks)
	})

	t.Run("all chunks non-empty after trimming", func(t *testing.T) {
		t.Parallel()
		chunks := c.Chunk(&docubot.PageContent{
			URL:       "https://example.com",
			PlainText: strings.Repeat("word ", 400),
		})
		require.NotEmpty(t, chunks)
		for _, chunk := range chunks {
			assert.NotEmpty(t, strings.TrimSpace(chunk.Text))
		}
	})
}

func TestChunker_boundary_prefers_sentence_break(t *testing.T) {
	t.Parallel()

	body := "Sentence one. Sentence two. " + strings.Repeat("X", 600)
	c := &docubot.Chunker{Size: 500, Overlap: 100}

	chunks := c.Chunk(&docubot.PageContent{
		URL:       "https://example.com",
		PlainText: body,
	})

	require.NotEmpty(t, chunks)
	first := chunks[0]
	assert.LessOrEqual(t, len(first.Text), 500)
	assert.Equal(t, "Sentence one. Sentence two.", first.Text)
}

func TestChunker_boundary_prefers_blank_line_over_sentence(t *testing.T) {
	t.Parallel()

	body := "First paragraph. More text.\n\nSecond paragraph " + strings.Repeat("y", 600)
	c := &docubot.Chunker{Size: 500, Overlap: 100}

	chunks := c.Chunk(&docubot.PageContent{
		URL:       "https://example.com",
		PlainText: body,
	})

	require.NotEmpty(t, chunks)
	assert.Equal(t, "First paragraph. More text.", chunks[0].Text)
}

func TestChunker_terminates_without_breaks(t *testing.T) {
	t.Parallel()

	// No newlines, no sentence breaks: every cut is at the raw target
	// length and the window must still advance.
	body := strings.Repeat("z", 2050)
	c := &docubot.Chunker{Size: 500, Overlap: 100}

	chunks := c.Chunk(&docubot.PageContent{
		URL:       "https://example.com",
		PlainText: body,
	})

	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk.Text), 500)
	}
	// Overlapping windows cover the whole body.
	var rebuilt strings.Builder
	rebuilt.WriteString(chunks[0].Text)
	for i := 1; i < len(chunks); i++ {
		rebuilt.WriteString(chunks[i].Text[100:])
	}
	assert.Equal(t, body, rebuilt.String())
}

func TestChunker_multibyte_text_stays_valid_utf8(t *testing.T) {
	t.Parallel()

	// Three-byte runes with no preferred breaks: 500 is never a multiple of
	// the rune width, so every raw cut must back off to a rune boundary.
	body := strings.Repeat("界", 400)
	c := &docubot.Chunker{}

	chunks := c.Chunk(&docubot.PageContent{
		URL:       "https://example.com",
		PlainText: body,
	})

	require.Greater(t, len(chunks), 1)
	for i, chunk := range chunks {
		assert.True(t, utf8.ValidString(chunk.Text), "chunk %d is not valid UTF-8", i)
	}
	// The windows still cover the whole body.
	assert.True(t, strings.HasPrefix(body, chunks[0].Text))
	assert.True(t, strings.HasSuffix(body, chunks[len(chunks)-1].Text))
}

func TestChunker_overlapping_windows_share_text(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("a", 500) + strings.Repeat("b", 500)
	c := &docubot.Chunker{Size: 500, Overlap: 100}

	chunks := c.Chunk(&docubot.PageContent{
		URL:       "https://example.com",
		PlainText: body,
	})

	require.GreaterOrEqual(t, len(chunks), 2)
	tail := chunks[0].Text[len(chunks[0].Text)-100:]
	assert.True(t, strings.HasPrefix(chunks[1].Text, tail))
}

func TestChunker_structured_elements_duplicate_body(t *testing.T) {
	t.Parallel()

	// The heading and code block appear in the body markdown AND as their
	// own chunks. The duplication is deliberate: short high-signal elements
	// retrieve better standalone.
	longParagraph := "This paragraph is comfortably longer than fifty characters so it qualifies."
	content := &docubot.PageContent{
		URL:          "https://example.com/doc",
		Title:        "Doc",
		MarkdownText: "# Install\n\n" + longParagraph + "\n\n```go\nfmt.Println(\"hi\")\n```",
		Structured: docubot.StructuredContent{
			Headings:   []docubot.Heading{{Level: 1, Text: "Install", Markdown: "# Install"}},
			Paragraphs: []docubot.Paragraph{{Text: longParagraph, Markdown: longParagraph}},
			CodeBlocks: []docubot.CodeBlock{{
				Language: "go",
				Content:  "fmt.Println(\"hi\")",
				Markdown: "```go\nfmt.Println(\"hi\")\n```",
			}},
		},
	}

	c := &docubot.Chunker{}
	chunks := c.Chunk(content)

	byType := make(map[docubot.ContentType][]*docubot.Chunk)
	for _, chunk := range chunks {
		byType[chunk.ContentType] = append(byType[chunk.ContentType], chunk)
	}

	require.Len(t, byType[docubot.ContentTypeMain], 1)
	require.Len(t, byType[docubot.ContentTypeHeading], 1)
	require.Len(t, byType[docubot.ContentTypeParagraph], 1)
	require.Len(t, byType[docubot.ContentTypeCode], 1)

	// The heading text is present both in the body chunk and standalone.
	assert.Contains(t, byType[docubot.ContentTypeMain][0].Text, "# Install")
	assert.Equal(t, "# Install", byType[docubot.ContentTypeHeading][0].Text)
}

func TestChunker_skips_short_paragraphs(t *testing.T) {
	t.Parallel()

	content := &docubot.PageContent{
		URL: "https://example.com",
		Structured: docubot.StructuredContent{
			Paragraphs: []docubot.Paragraph{
				{Text: "Too short to index alone."},
				{Text: "This one is comfortably longer than the fifty character cutoff for paragraphs."},
			},
		},
	}

	c := &docubot.Chunker{}
	chunks := c.Chunk(content)

	require.Len(t, chunks, 1)
	assert.Equal(t, docubot.ContentTypeParagraph, chunks[0].ContentType)
	assert.Contains(t, chunks[0].Text, "comfortably longer")
}

func TestChunker_indexes_increase_per_content_type(t *testing.T) {
	t.Parallel()

	content := &docubot.PageContent{
		URL: "https://example.com",
		Structured: docubot.StructuredContent{
			Headings: []docubot.Heading{
				{Level: 1, Text: "One", Markdown: "# One"},
				{Level: 2, Text: "Two", Markdown: "## Two"},
				{Level: 2, Text: "Three", Markdown: "## Three"},
			},
			Tables: []docubot.Table{
				{Markdown: "| a |\n| --- |\n| 1 |"},
				{Markdown: "| b |\n| --- |\n| 2 |"},
			},
		},
	}

	c := &docubot.Chunker{}
	chunks := c.Chunk(content)

	next := make(map[docubot.ContentType]int)
	for _, chunk := range chunks {
		assert.Equal(t, next[chunk.ContentType], chunk.ChunkIndex)
		next[chunk.ContentType]++
	}
	assert.Equal(t, 3, next[docubot.ContentTypeHeading])
	assert.Equal(t, 2, next[docubot.ContentTypeTable])
}

func TestChunker_list_chunk_uses_markdown(t *testing.T) {
	t.Parallel()

	content := &docubot.PageContent{
		URL: "https://example.com",
		Structured: docubot.StructuredContent{
			Lists: []docubot.ListBlock{{
				Ordered:  false,
				Items:    []string{"alpha", "beta"},
				Markdown: "- alpha\n- beta",
			}},
		},
	}

	c := &docubot.Chunker{}
	chunks := c.Chunk(content)

	require.Len(t, chunks, 1)
	assert.Equal(t, docubot.ContentTypeList, chunks[0].ContentType)
	assert.Equal(t, "- alpha\n- beta", chunks[0].Text)
	assert.Equal(t, len(chunks[0].Text), chunks[0].SizeBytes)
}

func TestChunker_nil_content(t *testing.T) {
	t.Parallel()

	c := &docubot.Chunker{}
	assert.Nil(t, c.Chunk(nil))
}
