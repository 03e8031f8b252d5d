package fileconv

import (
	"context"
	"strings"
)

// Text preview limits: enough for a thumbnail, cheap to render.
const (
	textImageMaxLines   = 20
	textImageMaxLineLen = 80
)

// textImageStrategy rasterizes the beginning of a txt/md file onto a fixed
// white canvas. Requires the optional Rasterizer.
type textImageStrategy struct{}

func (textImageStrategy) convert(ctx context.Context, e *Engine, req Request) (*Result, error) {
	inputExt, outputExt := req.InputExt(), req.OutputExt()
	if !isTextExt(inputExt) {
		return nil, &UnsupportedConversionError{Input: inputExt, Output: outputExt}
	}

	if !e.rasterizer.Available() {
		return nil, &EnvironmentUnsupportedError{Input: inputExt, Output: outputExt, Provider: "a text rasterizer"}
	}

	lines := previewLines(decodeText(req.Data))
	img, err := e.rasterizer.RenderTextLines(lines)
	if err != nil {
		return nil, &ConversionFailedError{Input: inputExt, Output: outputExt, Err: err}
	}

	data, contentType, err := encodePixels(img, outputExt, req.Quality)
	if err != nil {
		return nil, &ConversionFailedError{Input: inputExt, Output: outputExt, Err: err}
	}

	return &Result{
		Data:        data,
		ContentType: contentType,
		Filename:    req.OutputFilename(),
	}, nil
}

// previewLines takes at most the first textImageMaxLines lines, each
// truncated to textImageMaxLineLen characters.
func previewLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) > textImageMaxLines {
		lines = lines[:textImageMaxLines]
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		runes := []rune(line)
		if len(runes) > textImageMaxLineLen {
			runes = runes[:textImageMaxLineLen]
		}
		out = append(out, string(runes))
	}
	return out
}
