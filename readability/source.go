// Package readability provides a go-readability based content source,
// used as an alternative fallback when CSS-selector extraction comes up
// empty.
package readability

import (
	"strings"

	"github.com/docubot/docubot"
	"github.com/go-shiori/go-readability"
)

// Ensure Source implements docubot.BodySource at compile time.
var _ docubot.BodySource = (*Source)(nil)

// Source wraps go-readability to find the main content of a page.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// FindBody extracts the main content container and title from raw HTML.
func (s *Source) FindBody(rawHTML string) (string, string, error) {
	if rawHTML == "" {
		return "", "", docubot.Errorf(docubot.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", "", err
	}

	return article.Content, article.Title, nil
}
