package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"mediakit/fixtures"
	"mediakit/observability"
	"mediakit/video"
)

type options struct {
	photosDir string
	mediaDir  string
	ffmpeg    string
	quality   int
	skipVideo bool
	verbose   bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mediagen: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "mediagen: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: mediagen [flags]\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.photosDir, "photos", "testdata/photos", "Directory for generated photos")
	flag.StringVar(&opts.mediaDir, "media", "testdata/media", "Directory for audio, video, and document fixtures")
	flag.StringVar(&opts.ffmpeg, "ffmpeg", "", "Path to the ffmpeg binary (default: first in PATH)")
	flag.IntVar(&opts.quality, "quality", 0, "JPEG quality, 1-100 (default 85)")
	flag.BoolVar(&opts.skipVideo, "skip-video", false, "Skip video clip generation")
	flag.BoolVar(&opts.verbose, "v", false, "Log every written fixture")
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		return options{}, fmt.Errorf("unexpected argument %q", flag.Arg(0))
	}
	if opts.quality < 0 || opts.quality > 100 {
		return options{}, fmt.Errorf("quality %d out of range", opts.quality)
	}
	return opts, nil
}

func run(opts options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	level := observability.LevelInfo
	if opts.verbose {
		level = observability.LevelDebug
	}
	log := observability.NewTextLogger(os.Stderr, level)

	gen := &fixtures.Generator{
		PhotosDir: opts.photosDir,
		MediaDir:  opts.mediaDir,
		Quality:   opts.quality,
		Log:       log,
	}
	if !opts.skipVideo {
		gen.Encoder = &video.Encoder{FFmpeg: opts.ffmpeg}
	}

	if err := gen.GeneratePhotos(ctx); err != nil {
		return fmt.Errorf("generate photos: %w", err)
	}
	if err := gen.GenerateConflicts(ctx); err != nil {
		return fmt.Errorf("generate conflicts: %w", err)
	}
	log.Info("fixture generation complete",
		observability.String("photos", opts.photosDir),
		observability.String("media", opts.mediaDir))
	return nil
}
