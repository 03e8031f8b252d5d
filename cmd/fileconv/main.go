// Command fileconv converts a single file from the command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	fileconv "github.com/fileconvd/fileconv-go"
)

var version = "dev"

func main() {
	var (
		format      string
		output      string
		quality     int
		timeout     time.Duration
		verbose     bool
		showVersion bool
	)

	flag.StringVar(&format, "f", "", "Target format extension (required), e.g. pdf, gif, mp3")
	flag.StringVar(&format, "format", "", "Target format extension (required)")
	flag.StringVar(&output, "o", "", "Output file (default: input name with new extension)")
	flag.StringVar(&output, "output", "", "Output file (default: input name with new extension)")
	flag.IntVar(&quality, "q", 0, "Quality 1-100 where the target supports it")
	flag.DurationVar(&timeout, "timeout", fileconv.DefaultTimeout, "Per-conversion time budget")
	flag.BoolVar(&verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&showVersion, "v", false, "Show version")
	flag.BoolVar(&showVersion, "version", false, "Show version")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fileconv -f FORMAT [flags] FILE\n\n")
		fmt.Fprintf(os.Stderr, "Convert a file to another format.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("fileconv %s\n", version)
		os.Exit(0)
	}

	if format == "" || flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	source := flag.Arg(0)

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	data, err := os.ReadFile(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine := fileconv.New(
		fileconv.WithLogger(log),
		fileconv.WithTimeout(timeout),
	)

	res, err := engine.Convert(context.Background(), fileconv.Request{
		Data:         data,
		Filename:     filepath.Base(source),
		TargetFormat: format,
		Quality:      quality,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if output == "" {
		output = res.Filename
	}
	if err := os.WriteFile(output, res.Data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s (%d bytes, %s)\n", output, res.Size(), res.ContentType)
}
