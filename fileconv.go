// Package fileconv converts uploaded files between formats. The engine
// classifies an (input extension, output extension) pair, selects one of a
// small set of conversion strategies, and executes it against pluggable
// capability providers (document writers, a media transcoder, an optional
// rasterizer), normalizing every failure into a typed, user-presentable
// error.
package fileconv

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds one conversion end to end. Slow codecs are already
// capped per-profile; this is the dispatcher-level safety net.
const DefaultTimeout = 2 * time.Minute

// Engine is the conversion dispatcher. It is safe for concurrent use: the
// only shared state is the read-only capability table and the providers,
// which manage their own synchronization.
type Engine struct {
	transcoder Transcoder
	rasterizer Rasterizer
	log        *slog.Logger
	timeout    time.Duration
}

// New creates an Engine with the given options. Providers default to an
// ffmpeg binary discovered on disk and the build's rasterizer.
func New(opts ...Option) *Engine {
	e := &Engine{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	if e.transcoder == nil {
		e.transcoder = NewFFmpegTranscoder("")
	}
	if e.rasterizer == nil {
		e.rasterizer = NewRasterizer()
	}
	return e
}

// strategyFor maps classification results to executable strategies.
func strategyFor(id strategyID) strategy {
	switch id {
	case strategyTextDocument:
		return textDocumentStrategy{}
	case strategyImageDocument:
		return imageDocumentStrategy{}
	case strategyDocumentText:
		return documentTextStrategy{}
	case strategyDocumentImage:
		return documentImageStrategy{}
	case strategyTextImage:
		return textImageStrategy{}
	case strategyMedia:
		return mediaStrategy{}
	}
	return nil
}

type strategyOutcome struct {
	res *Result
	err error
}

// Convert dispatches one request. It never panics outward: every failure is
// returned as one of the typed errors in this package.
func (e *Engine) Convert(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	inputExt, outputExt := req.InputExt(), req.OutputExt()

	log := e.log.With(
		"request_id", uuid.NewString(),
		"input", inputExt,
		"output", outputExt,
	)

	if err := req.Validate(); err != nil {
		log.Warn("invalid conversion request", "error", err)
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	id := classify(inputExt, outputExt)
	if id == strategyNone {
		log.Info("conversion rejected", "reason", "no matching strategy")
		return nil, &UnsupportedConversionError{Input: inputExt, Output: outputExt}
	}
	log.Debug("conversion classified",
		"strategy", id.String(),
		"sniffed_type", sniffContentType(req.Data),
	)

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	ch := make(chan strategyOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- strategyOutcome{err: &ConversionFailedError{
					Input:  inputExt,
					Output: outputExt,
					Err:    fmt.Errorf("internal error: %v", r),
				}}
			}
		}()
		res, err := strategyFor(id).convert(ctx, e, req)
		ch <- strategyOutcome{res: res, err: err}
	}()

	var out strategyOutcome
	select {
	case <-ctx.Done():
		// The context cancels any in-flight transcoder process; the
		// strategy goroutine finishes its own cleanup.
		log.Warn("conversion timed out", "strategy", id.String(), "elapsed", time.Since(start))
		return nil, &TimeoutError{Input: inputExt, Output: outputExt}
	case out = <-ch:
	}

	if out.err != nil {
		log.Info("conversion failed",
			"strategy", id.String(),
			"kind", KindOf(out.err).String(),
			"elapsed", time.Since(start),
			"error", out.err,
		)
		return nil, out.err
	}

	// Final safety net: a strategy reporting success with no bytes means
	// the pair was not actually convertible.
	if out.res == nil || len(out.res.Data) == 0 {
		return nil, &UnsupportedConversionError{Input: inputExt, Output: outputExt}
	}

	log.Info("conversion succeeded",
		"strategy", id.String(),
		"filename", out.res.Filename,
		"size", out.res.Size(),
		"elapsed", time.Since(start),
	)
	return out.res, nil
}
