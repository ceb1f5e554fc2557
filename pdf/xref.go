package pdf

import (
	"bytes"
	"fmt"
)

// writeXref appends the cross-reference section, trailer, and EOF marker.
// offsets[i] is the byte position of object i+1's "N 0 obj" header within
// the buffer written so far.
//
// Every entry line is exactly 20 bytes: a ten-digit zero-padded offset, a
// space, a five-digit generation, a space, the in-use flag, a space, and a
// newline. Readers seek into the table arithmetically, so any width drift
// breaks the whole file. Object 0 is the conventional free-list head.
func writeXref(buf *bytes.Buffer, offsets []int, root Ref) {
	xrefStart := buf.Len()
	size := len(offsets) + 1

	fmt.Fprintf(buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(buf, "%010d 00000 n \n", off)
	}

	fmt.Fprintf(buf, "trailer\n<< /Size %d /Root %s >>\n", size, root)
	fmt.Fprintf(buf, "startxref\n%d\n", xrefStart)
	buf.WriteString("%%EOF\n")
}
