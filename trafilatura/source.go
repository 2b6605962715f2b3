// Package trafilatura implements docubot.BodySource on top of the
// go-trafilatura content extraction library. It serves as the fallback
// content strategy for pages where no known content selector matches.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/docubot/docubot"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Source implements docubot.BodySource at compile time.
var _ docubot.BodySource = (*Source)(nil)

// Source locates the main content of a page using trafilatura's
// readability heuristics.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// FindBody extracts the main content container and the page title from raw
// HTML. The content is returned re-rendered as HTML so the caller can run
// its own extraction over it.
func (s *Source) FindBody(rawHTML string) (string, string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", "", docubot.Errorf(docubot.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", "", err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return "", "", err
		}
	}

	return contentHTML, result.Metadata.Title, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
