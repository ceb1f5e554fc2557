package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestTextLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, LevelInfo)

	log.Info("photo written", String("name", "paris_01.jpg"), Int("bytes", 40231))
	log.Debug("dropped", String("reason", "below level"))
	log.Error("encode failed", Error("err", errors.New("boom")))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), lines)
	}
	if lines[0] != "INFO photo written name=paris_01.jpg bytes=40231" {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if lines[1] != "ERROR encode failed err=boom" {
		t.Fatalf("line 1 = %q", lines[1])
	}
}

func TestTextLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, LevelDebug).With(String("job", "conflicts"))

	log.Debug("start", Int64("files", 7))
	if got := buf.String(); got != "DEBUG start job=conflicts files=7\n" {
		t.Fatalf("line = %q", got)
	}
}

func TestNopLogger(t *testing.T) {
	var log Logger = NopLogger{}
	log.Info("ignored", String("k", "v"))
	if child := log.With(String("k", "v")); child == nil {
		t.Fatalf("With returned nil")
	}
}
