package fileconv

import (
	"log/slog"
	"time"
)

// Option configures an Engine.
type Option func(*Engine)

// WithTranscoder replaces the media transcoder provider.
func WithTranscoder(t Transcoder) Option {
	return func(e *Engine) {
		e.transcoder = t
	}
}

// WithFFmpegPath points the default transcoder at a specific ffmpeg binary
// instead of discovering one.
func WithFFmpegPath(path string) Option {
	return func(e *Engine) {
		e.transcoder = NewFFmpegTranscoder(path)
	}
}

// WithRasterizer replaces the rasterizer provider.
func WithRasterizer(r Rasterizer) Option {
	return func(e *Engine) {
		e.rasterizer = r
	}
}

// WithLogger sets the engine logger (default: slog.Default()).
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithTimeout sets the per-request wall-clock budget.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}
