package journal

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is a markdown heading located in journal source, with the byte
// offsets needed to splice new content without disturbing anything else.
type Heading struct {
	Level        int    // 1-6
	Title        string // header text without the leading hashes
	LineStart    int    // byte offset of the heading line start
	ContentStart int    // byte offset just past the heading line's newline
}

// Headings parses source as markdown and returns all headings in document
// order. Parsing with a real markdown parser rather than a line regex means
// a "## Detailed log" line inside a fenced code block is not a heading.
func Headings(source string) []Heading {
	src := []byte(source)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Lines().Len() == 0 {
			return ast.WalkSkipChildren, nil
		}

		// The segment covers the heading text; derive the line boundaries
		// from it so content always starts just past the heading line.
		seg := h.Lines().At(0)
		lineStart := strings.LastIndexByte(source[:seg.Start], '\n') + 1
		contentStart := len(source)
		if idx := strings.IndexByte(source[lineStart:], '\n'); idx >= 0 {
			contentStart = lineStart + idx + 1
		}

		headings = append(headings, Heading{
			Level:        h.Level,
			Title:        strings.TrimSpace(source[seg.Start:seg.Stop]),
			LineStart:    lineStart,
			ContentStart: contentStart,
		})
		return ast.WalkSkipChildren, nil
	})

	return headings
}

// FindHeading returns the first heading with the given level and title
// (case-insensitive), or nil.
func FindHeading(headings []Heading, level int, title string) *Heading {
	for i := range headings {
		if headings[i].Level == level && strings.EqualFold(headings[i].Title, title) {
			return &headings[i]
		}
	}
	return nil
}
