package fileconv

import "context"

// documentTextStrategy produces plain text: pass-through decode for txt/md
// sources, full text extraction for PDF.
type documentTextStrategy struct{}

func (documentTextStrategy) convert(ctx context.Context, e *Engine, req Request) (*Result, error) {
	inputExt, outputExt := req.InputExt(), req.OutputExt()

	var text string
	switch {
	case isTextExt(inputExt):
		text = decodeText(req.Data)
	case inputExt == "pdf":
		extracted, err := extractPDFText(req.Data)
		if err != nil {
			return nil, &ConversionFailedError{Input: inputExt, Output: outputExt, Err: err}
		}
		text = extracted
	default:
		return nil, &UnsupportedConversionError{Input: inputExt, Output: outputExt}
	}

	return &Result{
		Data:        []byte(text),
		ContentType: contentTypeForExt("txt"),
		Filename:    req.OutputFilename(),
	}, nil
}
