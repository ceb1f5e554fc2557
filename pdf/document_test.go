package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"
)

// parseXref locates the xref table via startxref and returns the offset of
// every in-use object, indexed by object id (index 0 is the free head and
// stays zero), along with the declared table size.
func parseXref(t *testing.T, data []byte) (offsets []int, size int) {
	t.Helper()

	idx := bytes.LastIndex(data, []byte("startxref"))
	if idx < 0 {
		t.Fatalf("startxref not found")
	}
	var xrefStart int
	if _, err := fmt.Sscanf(string(data[idx:]), "startxref\n%d", &xrefStart); err != nil {
		t.Fatalf("parse startxref: %v", err)
	}

	section := string(data[xrefStart:])
	lines := strings.Split(section, "\n")
	if lines[0] != "xref" {
		t.Fatalf("startxref points at %q, want the xref keyword", lines[0])
	}
	var first int
	if _, err := fmt.Sscanf(lines[1], "%d %d", &first, &size); err != nil {
		t.Fatalf("parse xref subsection header %q: %v", lines[1], err)
	}
	if first != 0 {
		t.Fatalf("xref subsection starts at %d, want 0", first)
	}
	if lines[2] != "0000000000 65535 f " {
		t.Fatalf("free head entry = %q", lines[2])
	}

	offsets = make([]int, size)
	for id := 1; id < size; id++ {
		line := lines[2+id]
		if len(line)+1 != 20 {
			t.Fatalf("xref entry for object %d is %d bytes, want 20: %q", id, len(line)+1, line)
		}
		off, err := strconv.Atoi(line[:10])
		if err != nil {
			t.Fatalf("parse offset in %q: %v", line, err)
		}
		if line[10:] != " 00000 n " {
			t.Fatalf("xref entry tail = %q", line[10:])
		}
		offsets[id] = off
	}
	return offsets, size
}

// contentStreams decompresses every FlateDecode stream in the file, in
// file order, verifying each declared /Length on the way.
func contentStreams(t *testing.T, data []byte) [][]byte {
	t.Helper()
	var out [][]byte
	rest := data
	for {
		idx := bytes.Index(rest, []byte("/Length "))
		if idx < 0 {
			return out
		}
		var length int
		if _, err := fmt.Sscanf(string(rest[idx:]), "/Length %d", &length); err != nil {
			t.Fatalf("parse /Length: %v", err)
		}
		start := bytes.Index(rest[idx:], []byte("stream\n"))
		if start < 0 {
			t.Fatalf("stream keyword missing after /Length")
		}
		raw := rest[idx+start+len("stream\n"):]
		if len(raw) < length {
			t.Fatalf("stream truncated: have %d bytes, /Length %d", len(raw), length)
		}
		if !bytes.HasPrefix(raw[length:], []byte("\nendstream")) {
			t.Fatalf("declared /Length %d does not land on endstream", length)
		}
		zr, err := zlib.NewReader(bytes.NewReader(raw[:length]))
		if err != nil {
			t.Fatalf("open flate stream: %v", err)
		}
		plain, err := io.ReadAll(zr)
		if err != nil {
			t.Fatalf("decompress stream: %v", err)
		}
		out = append(out, plain)
		rest = raw[length:]
	}
}

// textLines extracts the string literals shown on a page, title included,
// undoing the string-literal escaping.
func textLines(t *testing.T, stream []byte) []string {
	t.Helper()
	var out []string
	for _, line := range strings.Split(string(stream), "\n") {
		if !strings.HasSuffix(line, ") Tj") || !strings.HasPrefix(line, "(") {
			continue
		}
		lit := line[1 : len(line)-len(") Tj")]
		var b strings.Builder
		for i := 0; i < len(lit); i++ {
			if lit[i] == '\\' && i+1 < len(lit) {
				i++
			}
			b.WriteByte(lit[i])
		}
		out = append(out, b.String())
	}
	return out
}

func lineRange(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return lines
}

func TestReport_FileStructure(t *testing.T) {
	r := &Report{Title: "Quarterly Report", Lines: lineRange(5), Accent: Color{B: 0.8}}
	data, err := r.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF-1.4\n")) {
		t.Fatalf("missing header: %q", data[:16])
	}
	if data[9] != '%' || bytes.IndexByte(data[9:15], '\n') < 0 {
		t.Fatalf("missing binary comment line")
	}
	if !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Fatalf("missing EOF marker")
	}
}

func TestReport_XrefOffsets(t *testing.T) {
	r := &Report{Title: "Offsets", Lines: lineRange(80), Accent: Color{R: 0.6, G: 0.1}}
	data, err := r.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	offsets, size := parseXref(t, data)
	for id := 1; id < size; id++ {
		header := fmt.Sprintf("%d 0 obj\n", id)
		if !bytes.HasPrefix(data[offsets[id]:], []byte(header)) {
			t.Fatalf("object %d: offset %d points at %q, want %q",
				id, offsets[id], data[offsets[id]:offsets[id]+len(header)], header)
		}
	}

	if want := fmt.Sprintf("/Size %d ", size); !bytes.Contains(data, []byte(want)) {
		t.Fatalf("trailer /Size does not match xref table size %d", size)
	}
	// Catalog, Pages, Font, then one Content and one Page per chunk.
	if wantSize := 1 + 3 + 2*3; size != wantSize {
		t.Fatalf("table size = %d, want %d", size, wantSize)
	}
}

func TestReport_PaginationBoundaries(t *testing.T) {
	cases := []struct {
		lines     int
		pages     int
		lastCount int // body lines on the final page
	}{
		{lines: LinesPerPage * 2, pages: 2, lastCount: LinesPerPage},
		{lines: LinesPerPage*2 + 1, pages: 3, lastCount: 1},
		{lines: 1, pages: 1, lastCount: 1},
	}
	for _, tc := range cases {
		r := &Report{Title: "Pages", Lines: lineRange(tc.lines)}
		data, err := r.Build()
		if err != nil {
			t.Fatalf("%d lines: build: %v", tc.lines, err)
		}
		streams := contentStreams(t, data)
		if len(streams) != tc.pages {
			t.Fatalf("%d lines: %d pages, want %d", tc.lines, len(streams), tc.pages)
		}
		if got := bytes.Count(data, []byte("/Type /Page /")); got != tc.pages {
			t.Fatalf("%d lines: %d page objects, want %d", tc.lines, got, tc.pages)
		}
		last := textLines(t, streams[len(streams)-1])
		if got := len(last) - 1; got != tc.lastCount {
			t.Fatalf("%d lines: last page holds %d body lines, want %d", tc.lines, got, tc.lastCount)
		}
	}
}

func TestReport_TitleOnEveryPage(t *testing.T) {
	r := &Report{Title: "Repeated", Lines: lineRange(LinesPerPage + 3), Accent: Color{R: 0.6, G: 0.1}}
	data, err := r.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for i, stream := range contentStreams(t, data) {
		got := textLines(t, stream)
		if len(got) == 0 || got[0] != "Repeated" {
			t.Fatalf("page %d does not lead with the title: %q", i, got)
		}
		if !bytes.Contains(stream, []byte("0.6 0.1 0 rg\n")) {
			t.Fatalf("page %d missing accent color operator", i)
		}
	}
}

func TestReport_EscapingRoundTrip(t *testing.T) {
	tricky := []string{
		`f(x) = \sum (a_i)`,
		`back\slash`,
		`(parens) (everywhere)`,
	}
	r := &Report{Title: "Escapes (v2)", Lines: tricky}
	data, err := r.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	streams := contentStreams(t, data)
	got := textLines(t, streams[0])
	want := append([]string{"Escapes (v2)"}, tricky...)
	if len(got) != len(want) {
		t.Fatalf("decoded %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReport_Deterministic(t *testing.T) {
	r := &Report{Title: "Same", Lines: lineRange(50), Accent: Color{G: 0.2, B: 0.6}}
	a, err := r.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b, err := r.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("two builds of identical input differ")
	}
}

func TestEscape(t *testing.T) {
	cases := map[string]string{
		"plain":   "plain",
		`a\b`:     `a\\b`,
		"(hi)":    `\(hi\)`,
		`\(mix)\`: `\\\(mix\)\\`,
	}
	for in, want := range cases {
		if got := Escape(in); got != want {
			t.Fatalf("Escape(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDocument_RejectsUnfinalized(t *testing.T) {
	doc := NewDocument()
	root := doc.Alloc()
	doc.Finalize(root, []byte("<< /Type /Catalog >>"))
	doc.SetRoot(root)
	doc.Alloc() // never finalized
	if _, err := doc.Bytes(); err == nil {
		t.Fatalf("expected error for unfinalized object")
	}
}

func TestDocument_RejectsMissingRoot(t *testing.T) {
	doc := NewDocument()
	ref := doc.Alloc()
	doc.Finalize(ref, []byte("<< >>"))
	if _, err := doc.Bytes(); err == nil {
		t.Fatalf("expected error for missing root")
	}
}

func TestDocument_DoubleFinalizePanics(t *testing.T) {
	doc := NewDocument()
	ref := doc.Alloc()
	doc.Finalize(ref, []byte("<< >>"))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on double finalize")
		}
	}()
	doc.Finalize(ref, []byte("<< >>"))
}

func TestDocument_SequentialIDs(t *testing.T) {
	doc := NewDocument()
	for want := 1; want <= 5; want++ {
		if got := doc.Alloc(); int(got) != want {
			t.Fatalf("Alloc() = %d, want %d", int(got), want)
		}
	}
	if got := Ref(7).String(); got != "7 0 R" {
		t.Fatalf("Ref.String() = %q", got)
	}
}
