//go:build !nopdfium

package fileconv

import (
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/klippa-app/go-pdfium/webassembly"
)

var (
	pdfiumPool     pdfium.Pool
	pdfiumPoolOnce sync.Once
	pdfiumPoolErr  error
)

func initPdfiumPool() {
	pdfiumPool, pdfiumPoolErr = webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  1,
		MaxTotal: 1,
	})
}

// pdfiumRasterizer renders PDF pages through the PDFium library compiled to
// WebAssembly, and text through the shared canvas renderer. The wasm pool is
// process-wide and initialized on first use.
type pdfiumRasterizer struct{}

// NewRasterizer returns the default Rasterizer for this build.
func NewRasterizer() Rasterizer {
	return &pdfiumRasterizer{}
}

func (r *pdfiumRasterizer) Available() bool {
	pdfiumPoolOnce.Do(initPdfiumPool)
	return pdfiumPoolErr == nil
}

func (r *pdfiumRasterizer) RenderPDFPage(pdf []byte, pageIndex int, scale float64) (image.Image, error) {
	pdfiumPoolOnce.Do(initPdfiumPool)
	if pdfiumPoolErr != nil {
		return nil, fmt.Errorf("init pdfium: %w", pdfiumPoolErr)
	}

	instance, err := pdfiumPool.GetInstance(30 * time.Second)
	if err != nil {
		return nil, fmt.Errorf("get pdfium instance: %w", err)
	}
	defer instance.Close()

	doc, err := instance.OpenDocument(&requests.OpenDocument{
		File: &pdf,
	})
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}
	defer instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	pageCount, err := instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: doc.Document,
	})
	if err != nil {
		return nil, fmt.Errorf("get page count: %w", err)
	}
	if pageIndex < 0 || pageIndex >= pageCount.PageCount {
		return nil, fmt.Errorf("page %d out of range (document has %d)", pageIndex, pageCount.PageCount)
	}

	// PDF points are 1/72 inch; scale maps directly onto DPI.
	rendered, err := instance.RenderPageInDPI(&requests.RenderPageInDPI{
		DPI: int(72 * scale),
		Page: requests.Page{
			ByIndex: &requests.PageByIndex{
				Document: doc.Document,
				Index:    pageIndex,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return rendered.Result.Image, nil
}

func (r *pdfiumRasterizer) RenderTextLines(lines []string) (image.Image, error) {
	return renderTextCanvas(lines), nil
}
