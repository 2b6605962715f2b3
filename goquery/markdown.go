package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Element-level markdown renderers. These back the Markdown field each
// structured element carries; the page-level body markdown comes from the
// Converter instead.

func headingMarkdown(level int, text string) string {
	return strings.Repeat("#", level) + " " + text
}

// listMarkdown renders a ul/ol as markdown lines, nested lists indented by
// two spaces per level. Unordered items use "-"; ordered items use "1.".
func listMarkdown(list *goquery.Selection, depth int) string {
	marker := "-"
	if goquery.NodeName(list) == "ol" {
		marker = "1."
	}
	indent := strings.Repeat("  ", depth)

	var lines []string
	list.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		own := li.Clone()
		own.Find("ul, ol").Remove()
		if text := collapseSpace(own.Text()); text != "" {
			lines = append(lines, fmt.Sprintf("%s%s %s", indent, marker, text))
		}
		li.ChildrenFiltered("ul, ol").Each(func(_ int, nested *goquery.Selection) {
			if md := listMarkdown(nested, depth+1); md != "" {
				lines = append(lines, md)
			}
		})
	})
	return strings.Join(lines, "\n")
}

// parseTable extracts the header row and data rows and renders the
// pipe-delimited markdown: header, a "---" separator row sized to the header
// width, then data rows with short rows right-padded with empty cells.
func parseTable(table *goquery.Selection) (header []string, data [][]string, markdown string) {
	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, collapseSpace(cell.Text()))
		})
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	})
	if len(rows) == 0 {
		return nil, nil, ""
	}

	header = rows[0]
	data = rows[1:]

	lines := []string{"| " + strings.Join(header, " | ") + " |"}
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	lines = append(lines, "| "+strings.Join(sep, " | ")+" |")

	for _, row := range data {
		padded := make([]string, len(row), max(len(row), len(header)))
		copy(padded, row)
		for len(padded) < len(header) {
			padded = append(padded, "")
		}
		lines = append(lines, "| "+strings.Join(padded, " | ")+" |")
	}

	return header, data, strings.Join(lines, "\n")
}

func codeMarkdown(language, content string) string {
	return "```" + language + "\n" + strings.TrimRight(content, "\n") + "\n```"
}

func linkMarkdown(text, href, title string) string {
	if title != "" {
		return fmt.Sprintf("[%s](%s '%s')", text, href, title)
	}
	return fmt.Sprintf("[%s](%s)", text, href)
}

func imageMarkdown(alt, src, title string) string {
	if title != "" {
		return fmt.Sprintf("![%s](%s '%s')", alt, src, title)
	}
	return fmt.Sprintf("![%s](%s)", alt, src)
}

// blockText flattens a selection to plain text, one line per block-level
// element, with blank lines dropped.
func blockText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		writeNodeText(n, &sb)
	}

	var lines []string
	for _, line := range strings.Split(sb.String(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

var blockTags = map[string]bool{
	"address": true, "article": true, "blockquote": true, "div": true,
	"dd": true, "dl": true, "dt": true, "figcaption": true, "figure": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "ol": true, "p": true, "pre": true, "section": true,
	"table": true, "td": true, "th": true, "tr": true, "ul": true,
}

func writeNodeText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		if text := collapseSpace(n.Data); text != "" {
			sb.WriteString(text)
			sb.WriteByte(' ')
		}
	case html.ElementNode:
		if n.Data == "br" {
			sb.WriteByte('\n')
			return
		}
		block := blockTags[n.Data]
		if block {
			sb.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNodeText(c, sb)
		}
		if block {
			sb.WriteByte('\n')
		}
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNodeText(c, sb)
		}
	}
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
