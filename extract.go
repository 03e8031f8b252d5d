package fileconv

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDFText pulls all text content out of a PDF, page by page in
// reading order. Word boundaries are reconstructed from the empty-string
// separators the parser emits between words.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}

	var out strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text := extractPageRows(page)
		if text == "" {
			continue
		}
		out.WriteString(text)
		out.WriteString("\n")
	}
	return strings.TrimSpace(out.String()), nil
}

func extractPageRows(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil {
		return ""
	}

	var result strings.Builder
	for _, row := range rows {
		var line strings.Builder
		pendingSpace := false
		for _, word := range row.Content {
			if word.S == "" {
				pendingSpace = true
				continue
			}
			if pendingSpace && line.Len() > 0 && !strings.HasSuffix(line.String(), " ") {
				line.WriteString(" ")
			}
			line.WriteString(word.S)
			pendingSpace = false
		}
		if text := strings.TrimSpace(line.String()); text != "" {
			result.WriteString(text)
			result.WriteString("\n")
		}
	}
	return strings.TrimSpace(result.String())
}
