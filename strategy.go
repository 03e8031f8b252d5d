package fileconv

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Request describes one conversion invocation. It is treated as immutable:
// strategies read Data but never modify it.
type Request struct {
	// Data is the raw source file content.
	Data []byte
	// Filename is the original upload name. It is used only to derive the
	// input extension and the output filename.
	Filename string
	// TargetFormat is the desired output extension, e.g. "pdf" or "gif".
	TargetFormat string
	// Quality is an optional 1-100 setting applied where the target format
	// supports it. Zero selects the encoder default.
	Quality int
}

var reFormatToken = regexp.MustCompile(`^[a-z0-9]+$`)

// Validate checks the request fields that the engine cannot default.
func (r Request) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Filename, validation.Required),
		validation.Field(&r.TargetFormat, validation.Required,
			validation.Match(reFormatToken).Error("must be a lowercase extension token")),
		validation.Field(&r.Quality, validation.Min(0), validation.Max(100)),
	)
}

// InputExt returns the lowercased source extension without the leading dot,
// or "" when the filename has no suffix.
func (r Request) InputExt() string {
	ext := filepath.Ext(r.Filename)
	if ext == "" {
		return ""
	}
	return strings.ToLower(ext[1:])
}

// OutputExt returns the lowercased target extension without a leading dot.
func (r Request) OutputExt() string {
	return strings.ToLower(strings.TrimPrefix(r.TargetFormat, "."))
}

// OutputFilename derives the result filename: the source name with its
// suffix replaced by the target extension.
func (r Request) OutputFilename() string {
	base := r.Filename
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	return base + "." + r.OutputExt()
}

// Result is a successful conversion outcome.
type Result struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Size returns the output length in bytes.
func (r *Result) Size() int { return len(r.Data) }

// strategy is one self-contained conversion procedure. Strategies receive
// the engine for provider access and must return a typed error from
// errors.go on every failure path.
type strategy interface {
	convert(ctx context.Context, e *Engine, req Request) (*Result, error)
}

// strategyID identifies the outcome of classification, separate from
// execution so routing is testable without invoking any provider.
type strategyID int

const (
	strategyNone strategyID = iota
	strategyTextDocument
	strategyImageDocument
	strategyDocumentText
	strategyDocumentImage
	strategyTextImage
	strategyMedia
)

func (s strategyID) String() string {
	switch s {
	case strategyTextDocument:
		return "text-to-document"
	case strategyImageDocument:
		return "image-to-document"
	case strategyDocumentText:
		return "document-to-text"
	case strategyDocumentImage:
		return "document-to-image"
	case strategyTextImage:
		return "text-to-image"
	case strategyMedia:
		return "media-transcode"
	}
	return "none"
}

func isTextExt(ext string) bool {
	return ext == "txt" || ext == "md"
}

func isRasterExt(ext string) bool {
	switch ext {
	case "jpg", "jpeg", "png", "gif", "webp", "bmp", "tiff", "avif":
		return true
	}
	return false
}

// classify selects the strategy for an extension pair. First match wins:
// document outputs have narrow input requirements and are checked first,
// then the two cross-category image bridges, then the general transcoder.
// Pairs that hit a document-output rule with an unusable input classify to
// strategyNone and are rejected before any provider runs.
func classify(inputExt, outputExt string) strategyID {
	switch outputExt {
	case "pdf":
		if isTextExt(inputExt) {
			return strategyTextDocument
		}
		if isRasterExt(inputExt) {
			return strategyImageDocument
		}
		return strategyNone
	case "docx":
		if isTextExt(inputExt) {
			return strategyTextDocument
		}
		return strategyNone
	case "txt":
		if isTextExt(inputExt) || inputExt == "pdf" {
			return strategyDocumentText
		}
		return strategyNone
	}

	if inputExt == "pdf" && (outputExt == "jpg" || outputExt == "png") {
		return strategyDocumentImage
	}
	if isTextExt(inputExt) {
		switch outputExt {
		case "jpg", "jpeg", "png", "webp", "avif":
			return strategyTextImage
		}
	}
	if inputExt == "" || outputExt == "" {
		return strategyNone
	}
	return strategyMedia
}
