package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// LinesPerPage is the fixed body capacity of one report page.
const LinesPerPage = 35

// US Letter, in points.
const (
	pageWidth  = 612
	pageHeight = 792
)

// Color is an RGB triple with components in [0, 1].
type Color struct {
	R, G, B float64
}

// operand renders the color as content-stream operands for rg.
func (c Color) operand() string {
	return fmt.Sprintf("%s %s %s", num(c.R), num(c.G), num(c.B))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Report is a paginated plain-text document: an accent-colored title is
// repeated at the top of every page, followed by up to LinesPerPage body
// lines at fixed vertical offsets.
type Report struct {
	Title  string
	Lines  []string
	Accent Color
}

// Build assembles the complete PDF file for the report.
func (r *Report) Build() ([]byte, error) {
	doc := NewDocument()

	// Catalog, Pages, and Font are numbered before any page object; page
	// bodies reference all three.
	catalog := doc.Alloc()
	pages := doc.Alloc()
	font := doc.Alloc()

	var pageRefs []Ref
	for _, chunk := range paginate(r.Lines) {
		compressed, err := flateEncode(r.pageContent(chunk))
		if err != nil {
			return nil, err
		}

		content := doc.Alloc()
		var stream bytes.Buffer
		fmt.Fprintf(&stream, "<< /Length %d /Filter /FlateDecode >>\nstream\n", len(compressed))
		stream.Write(compressed)
		stream.WriteString("\nendstream")
		doc.Finalize(content, stream.Bytes())

		page := doc.Alloc()
		doc.Finalize(page, fmt.Appendf(nil,
			"<< /Type /Page /Parent %s /MediaBox [0 0 %d %d] /Contents %s /Resources << /Font << /F1 %s >> >> >>",
			pages, pageWidth, pageHeight, content, font))
		pageRefs = append(pageRefs, page)
	}

	doc.Finalize(font, []byte("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"))

	kids := make([]string, len(pageRefs))
	for i, ref := range pageRefs {
		kids[i] = ref.String()
	}
	doc.Finalize(pages, fmt.Appendf(nil,
		"<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pageRefs)))

	doc.Finalize(catalog, fmt.Appendf(nil, "<< /Type /Catalog /Pages %s >>", pages))
	doc.SetRoot(catalog)

	return doc.Bytes()
}

// pageContent builds the uncompressed content stream for one page.
func (r *Report) pageContent(lines []string) []byte {
	var b bytes.Buffer
	b.WriteString("BT\n")
	b.WriteString("/F1 14 Tf\n")
	fmt.Fprintf(&b, "%s rg\n", r.Accent.operand())
	b.WriteString("50 750 Td\n")
	fmt.Fprintf(&b, "(%s) Tj\n", Escape(r.Title))
	b.WriteString("0 0 0 rg\n")
	b.WriteString("/F1 10 Tf\n")
	b.WriteString("0 -24 Td\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "(%s) Tj\n", Escape(line))
		b.WriteString("0 -14 Td\n")
	}
	b.WriteString("ET\n")
	return b.Bytes()
}

// paginate splits lines into fixed-size page chunks. Chunks alias the
// input slice.
func paginate(lines []string) [][]string {
	var chunks [][]string
	for start := 0; start < len(lines); start += LinesPerPage {
		end := min(start+LinesPerPage, len(lines))
		chunks = append(chunks, lines[start:end])
	}
	return chunks
}

// Escape backslash-escapes the three characters with syntactic meaning
// inside a PDF string literal. Skipping this for any input containing
// them corrupts the content stream, so it is applied to every string
// written, not treated as optional sanitization.
func Escape(s string) string {
	if !strings.ContainsAny(s, `\()`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\', '(', ')':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
