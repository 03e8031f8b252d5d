package fileconv

import (
	"context"
	"fmt"
	"os"
)

// mediaStrategy is the default for every pair not claimed by a specialized
// strategy: write the source into a fresh workspace, run the general
// transcoder with a format-specific option profile, and read the output
// back. The workspace is removed on every exit path.
type mediaStrategy struct{}

func (mediaStrategy) convert(ctx context.Context, e *Engine, req Request) (*Result, error) {
	inputExt, outputExt := req.InputExt(), req.OutputExt()

	if !e.transcoder.Available() {
		return nil, &EnvironmentUnsupportedError{Input: inputExt, Output: outputExt, Provider: "a media transcoder"}
	}

	ws, err := acquireWorkspace(e.log)
	if err != nil {
		return nil, &ConversionFailedError{Input: inputExt, Output: outputExt, Err: err}
	}
	defer ws.Release()

	inputPath, err := ws.WriteFile("input."+inputExt, req.Data)
	if err != nil {
		return nil, &ConversionFailedError{Input: inputExt, Output: outputExt, Err: err}
	}
	outputPath := ws.Path("output." + outputExt)

	args := transcodeArgs(inputExt, outputExt, req.Quality)
	if err := e.transcoder.Transcode(ctx, inputPath, outputPath, args); err != nil {
		if ctx.Err() != nil {
			return nil, &TimeoutError{Input: inputExt, Output: outputExt}
		}
		return nil, &ConversionFailedError{Input: inputExt, Output: outputExt, Err: err}
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, &ConversionFailedError{Input: inputExt, Output: outputExt, Err: err}
	}

	return &Result{
		Data:        data,
		ContentType: contentTypeForExt(outputExt),
		Filename:    req.OutputFilename(),
	}, nil
}

func isStillImageExt(ext string) bool {
	switch ext {
	case "png", "jpg", "jpeg", "webp", "avif":
		return true
	}
	return false
}

// stillFrameArgs extracts exactly one representative frame from a
// multi-frame source: frame 0, no frame-rate sync, high per-frame quality.
func stillFrameArgs() []string {
	return []string{
		"-vf", `select=eq(n\,0)`,
		"-vsync", "0",
		"-frames:v", "1",
		"-q:v", "2",
		"-update", "1",
	}
}

// transcodeArgs builds the option profile for a pair:
//   - gif to a still image: single-frame extraction
//   - mp4/webm/gif outputs: fastest preset to bound worst-case latency
//   - webp output: "fast" (this encoder rejects ultrafast)
//   - avif output: fast preset, reduced quality, input capped at 10s so slow
//     encodes cannot run past the request budget
//
// A non-zero quality adds a rate-factor mapping where the profile does not
// already pin one.
func transcodeArgs(inputExt, outputExt string, quality int) []string {
	if inputExt == "gif" && isStillImageExt(outputExt) {
		return stillFrameArgs()
	}

	switch outputExt {
	case "mp4", "webm", "gif":
		args := []string{"-preset", "ultrafast"}
		if quality > 0 && outputExt != "gif" {
			args = append(args, "-crf", fmt.Sprintf("%d", videoCRF(quality)))
		}
		return args
	case "webp":
		return []string{"-preset", "fast"}
	case "avif":
		return []string{"-preset", "fast", "-crf", "30", "-t", "10"}
	case "mp3", "ogg":
		if quality > 0 {
			return []string{"-q:a", fmt.Sprintf("%d", audioQuality(quality))}
		}
	}
	return nil
}

// videoCRF maps quality 1-100 onto the usable CRF range 28-18
// (lower is better).
func videoCRF(quality int) int {
	return 28 - quality*10/100
}

// audioQuality maps quality 1-100 onto VBR quality 9-0 (lower is better).
func audioQuality(quality int) int {
	return 9 - quality*9/100
}
