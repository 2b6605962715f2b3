package docubot

import (
	"strings"
	"unicode/utf8"
)

// Default sliding-window geometry, in characters.
const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 100
)

// minStructuredParagraph is the minimum paragraph length emitted as its own
// chunk. Shorter paragraphs are carried by the body windows alone.
const minStructuredParagraph = 50

// Chunker splits a PageContent into an ordered sequence of tagged chunks:
// fixed-size overlapping windows over the body text, plus one chunk per
// structured element. The structured chunks deliberately duplicate body
// content; short high-signal elements retrieve better as standalone chunks.
type Chunker struct {
	// Size is the target window length in characters. Defaults to
	// DefaultChunkSize when zero.
	Size int

	// Overlap is the number of characters shared between consecutive
	// windows. Defaults to DefaultChunkOverlap when zero.
	Overlap int
}

// Chunk splits the page into chunks. Every returned chunk has non-empty
// trimmed text; empty or whitespace-only segments are dropped, never
// returned. ChunkIndex increases monotonically per content type.
func (c *Chunker) Chunk(content *PageContent) []*Chunk {
	if content == nil {
		return nil
	}

	size := c.Size
	if size <= 0 {
		size = DefaultChunkSize
	}
	overlap := c.Overlap
	if overlap < 0 || overlap >= size {
		overlap = DefaultChunkOverlap
	}

	var chunks []*Chunk
	indexes := make(map[ContentType]int)

	emit := func(text string, ct ContentType) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		chunks = append(chunks, &Chunk{
			Text:        text,
			ContentType: ct,
			SourceURL:   content.URL,
			Title:       content.Title,
			ChunkIndex:  indexes[ct],
			SizeBytes:   len(text),
		})
		indexes[ct]++
	}

	// Body windows prefer the markdown rendering when available.
	body := content.MarkdownText
	if strings.TrimSpace(body) == "" {
		body = content.PlainText
	}
	for _, window := range splitWindows(body, size, overlap) {
		emit(window, ContentTypeMain)
	}

	for _, h := range content.Structured.Headings {
		emit(preferMarkdown(h.Markdown, h.Text), ContentTypeHeading)
	}
	for _, p := range content.Structured.Paragraphs {
		if len(p.Text) < minStructuredParagraph {
			continue
		}
		emit(preferMarkdown(p.Markdown, p.Text), ContentTypeParagraph)
	}
	for _, l := range content.Structured.Lists {
		emit(preferMarkdown(l.Markdown, strings.Join(l.Items, "\n")), ContentTypeList)
	}
	for _, t := range content.Structured.Tables {
		emit(t.Markdown, ContentTypeTable)
	}
	for _, cb := range content.Structured.CodeBlocks {
		emit(preferMarkdown(cb.Markdown, cb.Content), ContentTypeCode)
	}

	return chunks
}

func preferMarkdown(markdown, plain string) string {
	if strings.TrimSpace(markdown) != "" {
		return markdown
	}
	return plain
}

// splitWindows cuts text into overlapping windows of at most size
// characters. When a window boundary falls mid-content it is moved backward
// to the nearest preferred break within the window: a blank line, then a
// newline, then sentence-ending punctuation followed by a space. If no break
// is found the cut happens at the raw target length, backed off so it never
// lands inside a multi-byte rune.
func splitWindows(text string, size, overlap int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if len(text) <= size {
		return []string{text}
	}

	var windows []string
	start := 0
	for start < len(text) {
		end := start + size
		if end >= len(text) {
			end = len(text)
		} else {
			end = breakPoint(text, start, end)
			for end > start && !utf8.RuneStart(text[end]) {
				end--
			}
			if end == start {
				// Window narrower than one rune; take the whole rune.
				_, w := utf8.DecodeRuneInString(text[start:])
				end = start + w
			}
		}

		windows = append(windows, text[start:end])

		if end >= len(text) {
			break
		}
		next := end - overlap
		for next > start && !utf8.RuneStart(text[next]) {
			next--
		}
		if next <= start {
			// Forced advancement guarantees termination.
			next = end
		}
		start = next
	}
	return windows
}

// breakPoint searches backward from end for the best cut position in
// text[start:end]. The returned position is exclusive and always > start.
func breakPoint(text string, start, end int) int {
	window := text[start:end]

	for _, sep := range []string{"\n\n", "\n"} {
		if pos := strings.LastIndex(window, sep); pos > 0 {
			return start + pos + len(sep)
		}
	}

	for i := len(window) - 2; i > 0; i-- {
		if isSentenceEnd(window[i]) && window[i+1] == ' ' {
			return start + i + 2
		}
	}

	return end
}

func isSentenceEnd(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}
