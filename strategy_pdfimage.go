package fileconv

import "context"

// pdfPageScale is the fixed upscale factor applied when rasterizing, chosen
// for legibility of the resulting image. Page 1 only: multi-page output is
// out of scope by policy, not omission.
const pdfPageScale = 2.0

// documentImageStrategy renders the first page of a PDF to jpg or png via
// the optional Rasterizer. A missing rasterizer is a declared environment
// limitation, not a conversion bug.
type documentImageStrategy struct{}

func (documentImageStrategy) convert(ctx context.Context, e *Engine, req Request) (*Result, error) {
	inputExt, outputExt := req.InputExt(), req.OutputExt()
	if inputExt != "pdf" {
		return nil, &UnsupportedConversionError{Input: inputExt, Output: outputExt}
	}

	if !e.rasterizer.Available() {
		return nil, &EnvironmentUnsupportedError{Input: inputExt, Output: outputExt, Provider: "a PDF rasterizer"}
	}

	img, err := e.rasterizer.RenderPDFPage(req.Data, 0, pdfPageScale)
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
