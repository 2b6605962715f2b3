// Package goquery provides the CSS-selector based content extractor.
// It strips boilerplate, picks the main content container from a prioritized
// selector list, and records typed structured elements alongside plain and
// markdown text.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/docubot/docubot"
)

// Ensure Extractor implements docubot.Extractor at compile time.
var _ docubot.Extractor = (*Extractor)(nil)

// nonContentSelector matches elements removed before any extraction.
const nonContentSelector = "script, style, nav, footer, header, aside, noscript"

// contentSelectors is the prioritized list of content containers.
// The first selector yielding non-empty text wins.
var contentSelectors = []string{
	"main", "article", ".content", ".main-content", ".documentation",
	".docs", ".post", ".entry", ".page-content", ".body-content",
	"#content", "#main", "#primary", ".primary", ".main",
}

// minStructuredParagraph is the minimum text length for a paragraph to be
// recorded as a structured element. Shorter paragraphs remain in plain text.
const minStructuredParagraph = 20

// Extractor extracts a PageContent from raw HTML.
type Extractor struct {
	converter docubot.Converter
	fallback  docubot.BodySource
	opts      docubot.ExtractOptions
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithFallback sets the content strategy tried when no selector in the
// prioritized list yields text (e.g., a trafilatura-based source).
func WithFallback(src docubot.BodySource) Option {
	return func(e *Extractor) { e.fallback = src }
}

// WithOptions sets the structured-extraction toggles.
// Defaults to all element types enabled.
func WithOptions(opts docubot.ExtractOptions) Option {
	return func(e *Extractor) { e.opts = opts }
}

// NewExtractor creates an Extractor. The converter renders the selected
// content container to the page-level markdown body.
func NewExtractor(converter docubot.Converter, opts ...Option) *Extractor {
	e := &Extractor{
		converter: converter,
		opts:      docubot.DefaultExtractOptions(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML into a PageContent. It never fails on
// malformed HTML: a page that cannot be parsed yields an empty content body
// with defaulted fields.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*docubot.PageContent, error) {
	content := &docubot.PageContent{URL: pageURL}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return content, nil
	}

	content.Title = strings.TrimSpace(doc.Find("title").First().Text())
	content.Description = strings.TrimSpace(doc.Find(`meta[name="description"]`).First().AttrOr("content", ""))

	doc.Find(nonContentSelector).Remove()

	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	body := e.selectBody(doc, rawHTML)
	if body != nil {
		content.PlainText = blockText(body)
		if html, err := goquery.OuterHtml(body); err == nil {
			if markdown, err := e.converter.Convert(html); err == nil {
				content.MarkdownText = strings.TrimSpace(markdown)
			}
		}
	}

	content.Structured = e.extractStructured(doc, base)

	return content, nil
}

// selectBody returns the main content selection: the first prioritized
// selector with non-empty text, then the fallback source, then the whole
// document body.
func (e *Extractor) selectBody(doc *goquery.Document, rawHTML string) *goquery.Selection {
	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 && strings.TrimSpace(sel.Text()) != "" {
			return sel
		}
	}

	if e.fallback != nil {
		if contentHTML, _, err := e.fallback.FindBody(rawHTML); err == nil && contentHTML != "" {
			if inner, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML)); err == nil {
				sel := inner.Find("body").First()
				if strings.TrimSpace(sel.Text()) != "" {
					return sel
				}
			}
		}
	}

	sel := doc.Find("body").First()
	if sel.Length() == 0 {
		return nil
	}
	return sel
}

// extractStructured records each typed element in document order.
func (e *Extractor) extractStructured(doc *goquery.Document, base *url.URL) docubot.StructuredContent {
	var sc docubot.StructuredContent

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		level := headingLevel(goquery.NodeName(sel))
		text := strings.TrimSpace(sel.Text())
		if level == 0 || text == "" {
			return
		}
		sc.Headings = append(sc.Headings, docubot.Heading{
			Level:    level,
			Text:     text,
			Markdown: headingMarkdown(level, text),
		})
	})

	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) < minStructuredParagraph {
			return
		}
		sc.Paragraphs = append(sc.Paragraphs, docubot.Paragraph{Text: text, Markdown: text})
	})

	doc.Find("ul, ol").Each(func(_ int, sel *goquery.Selection) {
		var items []string
		sel.Find("li").Each(func(_ int, li *goquery.Selection) {
			if text := strings.TrimSpace(li.Text()); text != "" {
				items = append(items, text)
			}
		})
		if len(items) == 0 {
			return
		}
		sc.Lists = append(sc.Lists, docubot.ListBlock{
			Ordered:  goquery.NodeName(sel) == "ol",
			Items:    items,
			Markdown: listMarkdown(sel, 0),
		})
	})

	if e.opts.Tables {
		doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
			header, data, markdown := parseTable(sel)
			if len(header) == 0 {
				return
			}
			sc.Tables = append(sc.Tables, docubot.Table{
				HeaderRow: header,
				DataRows:  data,
				Markdown:  markdown,
			})
		})
	}

	if e.opts.CodeBlocks {
		doc.Find("pre").Each(func(_ int, pre *goquery.Selection) {
			code := pre.Find("code").First()
			if code.Length() == 0 {
				return
			}
			language := codeLanguage(code)
			text := code.Text()
			if strings.TrimSpace(text) == "" {
				return
			}
			sc.CodeBlocks = append(sc.CodeBlocks, docubot.CodeBlock{
				Language: language,
				Content:  text,
				Markdown: codeMarkdown(language, text),
			})
		})
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := sel.AttrOr("href", "")
		text := strings.TrimSpace(sel.Text())
		if href == "" || text == "" || isNonHTTPLink(href) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		title := sel.AttrOr("title", "")
		sc.Links = append(sc.Links, docubot.Link{
			URL:      resolved,
			Text:     text,
			Title:    title,
			Markdown: linkMarkdown(text, resolved, title),
		})
	})

	if e.opts.Images {
		doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
			src := sel.AttrOr("src", "")
			if src == "" {
				return
			}
			resolved := resolveURL(base, src)
			if resolved == "" {
				resolved = src
			}
			alt := sel.AttrOr("alt", "")
			title := sel.AttrOr("title", "")
			sc.Images = append(sc.Images, docubot.Image{
				Src:      resolved,
				Alt:      alt,
				Title:    title,
				Markdown: imageMarkdown(alt, resolved, title),
			})
		})
	}

	return sc
}

func headingLevel(nodeName string) int {
	if len(nodeName) != 2 || nodeName[0] != 'h' {
		return 0
	}
	level := int(nodeName[1] - '0')
	if level < 1 || level > 6 {
		return 0
	}
	return level
}

// codeLanguage infers the language from a language-*/lang-* class on the
// code element, then on its pre ancestor. First match wins.
func codeLanguage(code *goquery.Selection) string {
	if lang := languageFromClass(code.AttrOr("class", "")); lang != "" {
		return lang
	}
	pre := code.ParentsFiltered("pre").First()
	if pre.Length() > 0 {
		return languageFromClass(pre.AttrOr("class", ""))
	}
	return ""
}

func languageFromClass(class string) string {
	for _, c := range strings.Fields(class) {
		if lang, ok := strings.CutPrefix(c, "language-"); ok {
			return lang
		}
		if lang, ok := strings.CutPrefix(c, "lang-"); ok {
			return lang
		}
	}
	return ""
}

// resolveURL resolves href against base. Returns empty string for
// unparsable hrefs.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
