package fileconv

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"
)

// Embed geometry from the document writer: image anchored near the top-left
// with width fixed and height scaled to the aspect ratio.
const (
	embedImageX     = 10
	embedImageY     = 10
	embedImageWidth = 190
)

// imageDocumentStrategy converts raster images into a single-page PDF.
// Primary path: the general transcoder renders the image straight into a
// PDF. Fallback chain when that fails:
//  1. jpg/jpeg/png: embed the raw bytes into a PDF page without re-encoding.
//  2. other rasters: transcode to PNG first (frame 0 for animated sources),
//     then embed that PNG.
//
// The chain is strictly sequential; a fallback only runs once the previous
// step has failed.
type imageDocumentStrategy struct{}

func (imageDocumentStrategy) convert(ctx context.Context, e *Engine, req Request) (*Result, error) {
	inputExt, outputExt := req.InputExt(), req.OutputExt()
	if !isRasterExt(inputExt) {
		return nil, &UnsupportedConversionError{Input: inputExt, Output: outputExt}
	}

	ws, err := acquireWorkspace(e.log)
	if err != nil {
		return nil, &ConversionFailedError{Input: inputExt, Output: outputExt, Err: err}
	}
	defer ws.Release()

	data, primaryErr := renderImagePDFDirect(ctx, e, ws, req.Data, inputExt)
	if primaryErr != nil {
		e.log.Debug("direct image-to-pdf render failed, trying embed fallback",
			"input", inputExt, "error", primaryErr)
		data, err = embedImageFallback(ctx, e, ws, req.Data, inputExt)
		if err != nil {
			return nil, &ConversionFailedError{Input: inputExt, Output: outputExt, Err: err}
		}
	}

	return &Result{
		Data:        data,
		ContentType: contentTypeForExt("pdf"),
		Filename:    req.OutputFilename(),
	}, nil
}

// renderImagePDFDirect asks the transcoder to produce a PDF page from the
// image file.
func renderImagePDFDirect(ctx context.Context, e *Engine, ws *workspace, data []byte, inputExt string) ([]byte, error) {
	if !e.transcoder.Available() {
		return nil, fmt.Errorf("transcoder unavailable")
	}
	inputPath, err := ws.WriteFile("input."+inputExt, data)
	if err != nil {
		return nil, err
	}
	outputPath := ws.Path("output.pdf")
	if err := e.transcoder.Transcode(ctx, inputPath, outputPath, nil); err != nil {
		return nil, err
	}
	return os.ReadFile(outputPath)
}

// embedImageFallback builds the PDF locally. JPEG and PNG bytes embed as-is;
// everything else is first flattened to a single PNG frame.
func embedImageFallback(ctx context.Context, e *Engine, ws *workspace, data []byte, inputExt string) ([]byte, error) {
	switch inputExt {
	case "jpg", "jpeg":
		return embedImagePDF(data, "JPEG")
	case "png":
		return embedImagePDF(data, "PNG")
	}

	if !e.transcoder.Available() {
		return nil, fmt.Errorf("transcoder unavailable for %s flattening", upper(inputExt))
	}
	inputPath := ws.Path("input." + inputExt)
	if _, err := os.Stat(inputPath); err != nil {
		if inputPath, err = ws.WriteFile("input."+inputExt, data); err != nil {
			return nil, err
		}
	}
	stillPath := ws.Path("still.png")
	if err := e.transcoder.Transcode(ctx, inputPath, stillPath, stillFrameArgs()); err != nil {
		return nil, err
	}
	still, err := os.ReadFile(stillPath)
	if err != nil {
		return nil, err
	}
	return embedImagePDF(still, "PNG")
}

// embedImagePDF places the image bytes onto one PDF page without
// re-encoding them.
func embedImagePDF(img []byte, imageType string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	opts := fpdf.ImageOptions{ImageType: imageType}
	doc.RegisterImageOptionsReader("source", opts, bytes.NewReader(img))
	doc.ImageOptions("source", embedImageX, embedImageY, embedImageWidth, 0, false, opts, 0, "")
	if doc.Err() {
		return nil, fmt.Errorf("embed image: %v", doc.Error())
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize PDF: %w", err)
	}
	return buf.Bytes(), nil
}
