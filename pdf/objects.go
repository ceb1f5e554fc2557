// Package pdf assembles small, structurally valid PDF documents entirely
// in memory: a flat page tree, one shared Type1 font, FlateDecode content
// streams, and a classic cross-reference table.
//
// Object construction is split into two explicit phases. Alloc reserves an
// object number immediately; Finalize attaches the body later. The split
// exists because some bodies depend on objects that do not exist yet: the
// Pages tree is numbered before any page so pages can name their parent,
// but its Kids array is only knowable once every page has been built.
// Bytes refuses to serialize while any allocated object lacks a body.
package pdf

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Ref is a 1-based indirect object number. Its string form is the
// indirect reference syntax used inside object bodies.
type Ref int

func (r Ref) String() string { return fmt.Sprintf("%d 0 R", int(r)) }

// Document accumulates the indirect objects of a single build call. The
// allocator is owned by the Document and starts at 1; ids are handed out
// in strict creation order and never reused or skipped.
type Document struct {
	bodies    [][]byte
	finalized *bitset.BitSet
	root      Ref
}

func NewDocument() *Document {
	return &Document{finalized: bitset.New(16)}
}

// Alloc reserves the next object number.
func (d *Document) Alloc() Ref {
	d.bodies = append(d.bodies, nil)
	return Ref(len(d.bodies))
}

// Finalize attaches the serialized body of ref. Finalizing an unallocated
// object, or the same object twice, is an assembler bug and panics.
func (d *Document) Finalize(ref Ref, body []byte) {
	if ref < 1 || int(ref) > len(d.bodies) {
		panic(fmt.Sprintf("pdf: finalize of unallocated object %d", int(ref)))
	}
	if d.finalized.Test(uint(ref)) {
		panic(fmt.Sprintf("pdf: object %d finalized twice", int(ref)))
	}
	d.bodies[int(ref)-1] = body
	d.finalized.Set(uint(ref))
}

// SetRoot names the document catalog referenced from the trailer.
func (d *Document) SetRoot(ref Ref) { d.root = ref }

var fileHeader = []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")

// Bytes serializes the document: header, objects in ascending id order,
// cross-reference table, trailer, and end-of-file marker. An object that
// was allocated but never finalized fails the build; a partially wired
// graph must never produce a buffer.
func (d *Document) Bytes() ([]byte, error) {
	if d.root == 0 {
		return nil, errors.New("pdf: document root not set")
	}
	for i := range d.bodies {
		if !d.finalized.Test(uint(i + 1)) {
			return nil, fmt.Errorf("pdf: object %d allocated but never finalized", i+1)
		}
	}

	var buf bytes.Buffer
	buf.Write(fileHeader)
	offsets := make([]int, len(d.bodies))
	for i, body := range d.bodies {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n", i+1)
		buf.Write(body)
		buf.WriteString("\nendobj\n")
	}
	writeXref(&buf, offsets, d.root)
	return buf.Bytes(), nil
}
