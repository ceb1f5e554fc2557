package pdf

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// LinesFromMarkdown flattens a Markdown document into the plain text
// lines consumed by Report. Headings and paragraph lines keep their text,
// list items render with a leading dash, and top-level blocks are
// separated by a blank line. Inline markup is dropped; only the text
// survives.
func LinesFromMarkdown(src []byte) []string {
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var lines []string
	sep := func() {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
	}

	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Heading:
			sep()
			lines = append(lines, nodeText(n, src))
		case *ast.Paragraph:
			sep()
			lines = append(lines, strings.Split(nodeText(n, src), "\n")...)
		case *ast.List:
			sep()
			for item := n.FirstChild(); item != nil; item = item.NextSibling() {
				lines = append(lines, "- "+nodeText(item, src))
			}
		}
	}
	return lines
}

// nodeText concatenates the text segments under n. Soft line breaks
// become newlines so paragraph lines can be split back apart.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := node.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimRight(b.String(), "\n")
}
