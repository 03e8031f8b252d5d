package fileconv

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Rasterizer renders pixel buffers from documents and text. It is an
// optional capability: restricted runtimes may ship without it, in which
// case the strategies that need it report the environment as unsupported
// instead of failing the user's input.
type Rasterizer interface {
	// Available reports whether rendering can be attempted at all. It is
	// resolved once and cached; strategies consult it before calling.
	Available() bool
	// RenderPDFPage rasterizes one page (zero-based) of a PDF at the given
	// upscale factor.
	RenderPDFPage(pdf []byte, pageIndex int, scale float64) (image.Image, error)
	// RenderTextLines draws pre-truncated text lines onto a fixed-size
	// canvas.
	RenderTextLines(lines []string) (image.Image, error)
}

// Text canvas geometry. Fixed by policy: a preview canvas, not a typesetter.
const (
	textCanvasWidth  = 800
	textCanvasHeight = 600
	textCanvasMargin = 20
	textCanvasTopY   = 30
	textLineHeight   = 20
	textCanvasMaxY   = 580
)

// renderTextCanvas draws lines as monospaced black text on a white canvas,
// stopping early when vertical space runs out.
func renderTextCanvas(lines []string) image.Image {
	canvas := image.NewRGBA(image.Rect(0, 0, textCanvasWidth, textCanvasHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}

	y := textCanvasTopY
	for _, line := range lines {
		if y > textCanvasMaxY {
			break
		}
		drawer.Dot = fixed.P(textCanvasMargin, y)
		drawer.DrawString(line)
		y += textLineHeight
	}
	return canvas
}

// encodePixels serializes a pixel buffer for the requested output extension
// and returns the bytes plus the content type actually produced. PNG targets
// encode PNG; every other raster target encodes JPEG. webp/avif requests get
// JPEG bytes too, with the content type reporting what was really written.
func encodePixels(img image.Image, outputExt string, quality int) ([]byte, string, error) {
	var buf bytes.Buffer
	if outputExt == "png" {
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/png", nil
	}

	if quality <= 0 || quality > 100 {
		quality = 90
	}
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "image/jpeg", nil
}
