// Package video produces MP4 fixture clips by driving an external ffmpeg
// binary. The encoder is a collaborator, not part of the container
// assembly: it is awaited to completion and its exit status decides
// whether the output file survives. A failed encode is fatal for that one
// file only and leaves no partial output behind.
package video

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// Runner executes an external command to completion. Tests substitute a
// fake to inspect the argument list without spawning processes.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return fmt.Errorf("%s: %w: %s", name, err, lastLine(msg))
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// lastLine keeps the tail of ffmpeg's stderr, which carries the actual
// failure reason.
func lastLine(b []byte) []byte {
	b = bytes.TrimRight(b, "\n")
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		return b[i+1:]
	}
	return b
}

// Encoder renders clips through ffmpeg. The zero value uses the ffmpeg
// binary from PATH and a real process runner.
type Encoder struct {
	FFmpeg string
	Runner Runner
}

func (e *Encoder) binary() string {
	if e.FFmpeg != "" {
		return e.FFmpeg
	}
	return "ffmpeg"
}

func (e *Encoder) runner() Runner {
	if e.Runner != nil {
		return e.Runner
	}
	return execRunner{}
}

// Solid writes a 640x480 solid-color clip with a drawtext label and a
// running timestamp to path. hexColor is an ffmpeg color like "#1E1E96".
func (e *Encoder) Solid(ctx context.Context, path, hexColor, label string, d time.Duration) error {
	if err := e.runner().Run(ctx, e.binary(), solidArgs(path, hexColor, label, d)...); err != nil {
		// Do not keep whatever ffmpeg managed to write.
		os.Remove(path)
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return nil
}

func solidArgs(path, hexColor, label string, d time.Duration) []string {
	return []string{
		"-y",
		"-f", "lavfi",
		"-i", fmt.Sprintf("color=c=%s:size=640x480:duration=%d:rate=24", hexColor, int(d.Seconds())),
		"-vf", fmt.Sprintf("drawtext=text='%s':fontsize=28:fontcolor=white:x=20:y=20,"+
			`drawtext=text='%%{pts\:hms}':fontsize=20:fontcolor=white:x=20:y=440`, label),
		"-c:v", "libx264",
		"-preset", "ultrafast",
		"-pix_fmt", "yuv420p",
		"-movflags", "+faststart",
		path,
	}
}
