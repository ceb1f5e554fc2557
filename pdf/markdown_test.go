package pdf

import (
	"reflect"
	"testing"
)

func TestLinesFromMarkdown(t *testing.T) {
	src := []byte(`# Summary

This quarter went well.
Milestones were hit.

## Infrastructure

- Metadata store with migrations
- Storage backends via router

Closing paragraph.
`)
	got := LinesFromMarkdown(src)
	want := []string{
		"Summary",
		"",
		"This quarter went well.",
		"Milestones were hit.",
		"",
		"Infrastructure",
		"",
		"- Metadata store with migrations",
		"- Storage backends via router",
		"",
		"Closing paragraph.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %#v, want %#v", got, want)
	}
}

func TestLinesFromMarkdown_Empty(t *testing.T) {
	if got := LinesFromMarkdown(nil); len(got) != 0 {
		t.Fatalf("lines = %#v, want none", got)
	}
}
