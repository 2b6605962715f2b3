package mock

import "github.com/docubot/docubot"

var _ docubot.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docubot.Extractor.
type Extractor struct {
	ExtractFn func(html string, pageURL string) (*docubot.PageContent, error)
}

func (e *Extractor) Extract(html string, pageURL string) (*docubot.PageContent, error) {
	return e.ExtractFn(html, pageURL)
}

var _ docubot.Converter = (*Converter)(nil)

// Converter is a mock implementation of docubot.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ docubot.BodySource = (*BodySource)(nil)

// BodySource is a mock implementation of docubot.BodySource.
type BodySource struct {
	FindBodyFn func(html string) (string, string, error)
}

func (s *BodySource) FindBody(html string) (string, string, error) {
	return s.FindBodyFn(html)
}
