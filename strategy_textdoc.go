package fileconv

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/fileconvd/fileconv-go/internal/docxml"
)

// Page geometry for rendered text PDFs, in millimeters on A4.
const (
	textPDFWrapWidth  = 180
	textPDFMarginX    = 15
	textPDFMarginY    = 15
	textPDFLineHeight = 6
)

// textDocumentStrategy converts txt/md sources into pdf or docx: decode the
// bytes as text, lay them out as a single flowed block, and serialize via
// the document-format writer.
type textDocumentStrategy struct{}

func (textDocumentStrategy) convert(ctx context.Context, e *Engine, req Request) (*Result, error) {
	inputExt, outputExt := req.InputExt(), req.OutputExt()
	if !isTextExt(inputExt) {
		return nil, &UnsupportedConversionError{Input: inputExt, Output: outputExt}
	}

	text := decodeText(req.Data)

	var (
		data []byte
		err  error
	)
	switch outputExt {
	case "pdf":
		data, err = renderTextPDF(text)
	case "docx":
		data, err = docxml.FromText(text)
	default:
		return nil, &UnsupportedConversionError{Input: inputExt, Output: outputExt}
	}
	if err != nil {
		return nil, &ConversionFailedError{Input: inputExt, Output: outputExt, Err: err}
	}

	return &Result{
		Data:        data,
		ContentType: contentTypeForExt(outputExt),
		Filename:    req.OutputFilename(),
	}, nil
}

// renderTextPDF lays the text out as one word-wrapped block on A4 pages.
func renderTextPDF(text string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, textPDFMarginY)
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	doc.SetXY(textPDFMarginX, textPDFMarginY)

	// Core fonts are cp1252; translate so accented text survives.
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.MultiCell(textPDFWrapWidth, textPDFLineHeight, tr(text), "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize PDF: %w", err)
	}
	return buf.Bytes(), nil
}
