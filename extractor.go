package docubot

// ExtractOptions toggles structured extraction of optional element types.
// Headings, paragraphs, lists, and links are always extracted.
type ExtractOptions struct {
	Images     bool `json:"images"`
	Tables     bool `json:"tables"`
	CodeBlocks bool `json:"codeBlocks"`
}

// DefaultExtractOptions enables all optional element types.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{Images: true, Tables: true, CodeBlocks: true}
}

// Extractor turns raw HTML into a PageContent. Implementations must be pure
// functions of their input and must not fail on malformed HTML; a page that
// cannot be parsed yields an empty PageContent body with defaulted fields.
type Extractor interface {
	Extract(html string, pageURL string) (*PageContent, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., a content container).
	Convert(html string) (string, error)
}

// BodySource locates the main content region of a page when selector
// heuristics fail. It is the second extraction strategy in the extractor's
// first-non-empty-wins sequence.
type BodySource interface {
	// FindBody returns the main content as clean HTML plus the page title
	// from metadata, or an error if no content region can be identified.
	FindBody(html string) (contentHTML string, title string, err error)
}
