// Package docxml writes minimal WordprocessingML (DOCX) packages: a zip
// archive with content types, package relationships, and a single document
// part. It covers exactly what text-to-document conversion needs and is not
// a general OOXML authoring layer.
package docxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Wordprocessing namespaces.
const (
	nsContentTypes     = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelationships    = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsWordprocessingML = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

	relTypeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"

	documentContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// runFontHalfPoints is the run size in half-points (12pt body text).
const runFontHalfPoints = 24

// FromText builds a DOCX package containing the text as one paragraph run.
// Line breaks in the input become soft breaks within the run.
func FromText(text string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML()},
		{"_rels/.rels", relationshipsXML()},
		{"word/document.xml", documentXML(text)},
	}
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("create part %s: %w", p.name, err)
		}
		if _, err := w.Write([]byte(p.content)); err != nil {
			return nil, fmt.Errorf("write part %s: %w", p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize package: %w", err)
	}
	return buf.Bytes(), nil
}

func contentTypesXML() string {
	return xmlHeader +
		`<Types xmlns="` + nsContentTypes + `">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/word/document.xml" ContentType="` + documentContentType + `"/>` +
		`</Types>`
}

func relationshipsXML() string {
	return xmlHeader +
		`<Relationships xmlns="` + nsRelationships + `">` +
		`<Relationship Id="rId1" Type="` + relTypeDocument + `" Target="word/document.xml"/>` +
		`</Relationships>`
}

func documentXML(text string) string {
	var body strings.Builder
	body.WriteString(`<w:p><w:r><w:rPr><w:sz w:val="`)
	fmt.Fprintf(&body, "%d", runFontHalfPoints)
	body.WriteString(`"/></w:rPr>`)

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		if i > 0 {
			body.WriteString(`<w:br/>`)
		}
		body.WriteString(`<w:t xml:space="preserve">`)
		body.WriteString(escape(line))
		body.WriteString(`</w:t>`)
	}
	body.WriteString(`</w:r></w:p>`)

	return xmlHeader +
		`<w:document xmlns:w="` + nsWordprocessingML + `">` +
		`<w:body>` + body.String() + `<w:sectPr/></w:body>` +
		`</w:document>`
}

func escape(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails on writer errors; bytes.Buffer never errors.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
