//go:build nopdfium

package fileconv

import (
	"fmt"
	"image"
)

// disabledRasterizer is used in builds without the PDFium wasm runtime.
// Strategies treat it as an environment limitation, not a failure.
type disabledRasterizer struct{}

// NewRasterizer returns the default Rasterizer for this build.
func NewRasterizer() Rasterizer {
	return disabledRasterizer{}
}

func (disabledRasterizer) Available() bool { return false }

func (disabledRasterizer) RenderPDFPage([]byte, int, float64) (image.Image, error) {
	return nil, fmt.Errorf("rasterizer disabled in this build")
}

func (disabledRasterizer) RenderTextLines([]string) (image.Image, error) {
	return nil, fmt.Errorf("rasterizer disabled in this build")
}
