// Package fixtures renders the test asset set for the sync platform: a
// catalog of labeled gradient photos with EXIF metadata, plus conflict
// pairs of photos, audio recordings, video clips, and PDF reports.
//
// Every asset is assembled fully in memory and written in one call, so a
// failed generation never leaves a half-written fixture behind. The one
// exception is video, which ffmpeg writes directly; Encoder removes its
// partial output on failure.
package fixtures

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mediakit/exif"
	"mediakit/observability"
	"mediakit/pdf"
	"mediakit/photo"
	"mediakit/video"
	"mediakit/wav"
)

const (
	defaultQuality = 85
	audioRate      = 22050
)

// Generator writes the fixture set to disk.
type Generator struct {
	PhotosDir string
	MediaDir  string

	// Encoder produces the MP4 clips. A nil Encoder skips video
	// generation, for machines without ffmpeg.
	Encoder *video.Encoder

	// Quality is the JPEG encoding quality; zero means 85.
	Quality int

	Log observability.Logger
}

func (g *Generator) log() observability.Logger {
	if g.Log != nil {
		return g.Log
	}
	return observability.NopLogger{}
}

func (g *Generator) quality() int {
	if g.Quality != 0 {
		return g.Quality
	}
	return defaultQuality
}

// GeneratePhotos renders the full catalog into PhotosDir.
func (g *Generator) GeneratePhotos(ctx context.Context) error {
	if err := os.MkdirAll(g.PhotosDir, 0o755); err != nil {
		return fmt.Errorf("create photos dir: %w", err)
	}
	for _, p := range Catalog() {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := renderPhoto(p, g.quality())
		if err != nil {
			return fmt.Errorf("render %s: %w", p.Name, err)
		}
		if err := g.write(filepath.Join(g.PhotosDir, p.Name), data); err != nil {
			return err
		}
	}
	return nil
}

// GenerateConflicts writes the conflict pairs: divergent photo edits into
// PhotosDir, and original/conflict audio, video, and report pairs into
// MediaDir. Stale clips from earlier fixture revisions are removed first.
func (g *Generator) GenerateConflicts(ctx context.Context) error {
	for _, dir := range []string{g.PhotosDir, g.MediaDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	g.cleanupStale()

	for _, c := range photoConflicts {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := renderConflictPhoto(c, g.quality())
		if err != nil {
			return fmt.Errorf("render conflict of %s: %w", c.Original, err)
		}
		name := ConflictName(c.Original, c.Date)
		if err := g.write(filepath.Join(g.PhotosDir, name), data); err != nil {
			return err
		}
	}

	if err := g.write(filepath.Join(g.MediaDir, recordingName),
		wav.Tone(recordingFreq, 3*time.Second, audioRate)); err != nil {
		return err
	}
	if err := g.write(filepath.Join(g.MediaDir, ConflictName(recordingName, audioDate)),
		wav.Tone(conflictFreq, 3500*time.Millisecond, audioRate)); err != nil {
		return err
	}

	if err := g.generateClips(ctx); err != nil {
		return err
	}

	report, err := buildReport(reportTitle, reportMarkdown, reportAccent)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}
	if err := g.write(filepath.Join(g.MediaDir, reportName), report); err != nil {
		return err
	}
	conflict, err := buildReport(reportTitle+" (Draft v2)", conflictMarkdown, conflictAccent)
	if err != nil {
		return fmt.Errorf("build conflict report: %w", err)
	}
	return g.write(filepath.Join(g.MediaDir, ConflictName(reportName, reportDate)), conflict)
}

func (g *Generator) generateClips(ctx context.Context) error {
	if g.Encoder == nil {
		g.log().Info("no encoder configured, skipping video clips")
		return nil
	}
	path := filepath.Join(g.MediaDir, clipName)
	if err := g.Encoder.Solid(ctx, path, clipColor, "Original Clip", 5*time.Second); err != nil {
		return err
	}
	g.log().Info("clip written", observability.String("path", path))

	path = filepath.Join(g.MediaDir, ConflictName(clipName, clipDate))
	if err := g.Encoder.Solid(ctx, path, clipConflict, "Conflict Clip", 5*time.Second); err != nil {
		return err
	}
	g.log().Info("clip written", observability.String("path", path))
	return nil
}

func (g *Generator) write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	g.log().Info("fixture written",
		observability.String("path", path),
		observability.Int("bytes", len(data)))
	return nil
}

// cleanupStale removes clip files left over from fixture revisions that
// used other container formats.
func (g *Generator) cleanupStale() {
	for _, name := range staleMedia {
		path := filepath.Join(g.MediaDir, name)
		if err := os.Remove(path); err == nil {
			g.log().Info("removed stale fixture", observability.String("path", path))
		}
	}
}

// renderPhoto draws the labeled gradient and splices the EXIF segment in
// after the JPEG start-of-image marker.
func renderPhoto(p Photo, quality int) ([]byte, error) {
	img := photo.Gradient(p.Pattern, p.From, p.To, imageWidth, imageHeight)
	photo.Annotate(img, []string{
		displayTitle(p.Name),
		p.Meta.Make + " " + p.Meta.Model,
		p.Meta.DateTimeOriginal.Format("2006-01-02 15:04"),
	})
	jpg, err := photo.EncodeJPEG(img, quality)
	if err != nil {
		return nil, err
	}
	meta := p.Meta
	meta.Width = imageWidth
	meta.Height = imageHeight
	seg, err := exif.Build(meta)
	if err != nil {
		return nil, err
	}
	return photo.InsertAPP1(jpg, seg)
}

// renderConflictPhoto draws the divergent edit. Conflict copies carry no
// EXIF segment: they stand in for edits exported by a tool that strips
// metadata.
func renderConflictPhoto(c photoConflict, quality int) ([]byte, error) {
	img := photo.Gradient(c.Pattern, c.From, c.To, imageWidth, imageHeight)
	photo.Annotate(img, []string{
		displayTitle(c.Original) + " (edited)",
		"modified " + c.Date,
	})
	return photo.EncodeJPEG(img, quality)
}

func buildReport(title, markdown string, accent pdf.Color) ([]byte, error) {
	r := &pdf.Report{
		Title:  title,
		Lines:  pdf.LinesFromMarkdown([]byte(markdown)),
		Accent: accent,
	}
	return r.Build()
}

// displayTitle turns a fixture file name like "paris_01.jpg" into the
// label "Paris 01".
func displayTitle(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	words := strings.Split(base, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
