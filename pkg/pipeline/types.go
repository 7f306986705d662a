package pipeline

import (
	"image/color"

	"github.com/user/rastercomp/pkg/raster"
)

// =============================================================================
// Decode Stage Types
// =============================================================================

// DecodeInput names the image file to load.
type DecodeInput struct {
	Path string
}

// DecodeResult is the normalized source image.
type DecodeResult struct {
	Image     *raster.RasterImage
	Container string // e.g. "png", "jpeg"
}

// =============================================================================
// Composite Stage Types
// =============================================================================

// TextOverlay describes the annotation drawn after the image.
type TextOverlay struct {
	Content string
	// X, Y is the baseline origin in device pixels.
	X, Y  float64
	Font  raster.TextRasterizer
	Paint raster.Paint
}

// CompositeInput contains everything drawn onto the surface.
type CompositeInput struct {
	Source     *raster.RasterImage
	Background color.Color
	// ImageTransform scopes only the source image draw.
	ImageTransform raster.Matrix
	Text           TextOverlay
}

// DefaultCompositeInput returns the drawing parameters of the stock run
// with no source or font attached.
func DefaultCompositeInput() CompositeInput {
	return CompositeInput{
		Background:     color.Black,
		ImageTransform: raster.Scale(1.5),
		Text: TextOverlay{
			Content: "AAAAAAA! AAAAAAA! AAAAAAA! AAAAAAA! AAAAAAA! ",
			X:       100,
			Y:       300,
			Paint:   raster.Paint{Color: color.RGBA{B: 0xff, A: 0xff}, AntiAlias: true},
		},
	}
}

// CompositeResult hands the drawn surface to the extractor, which owns it
// from then on.
type CompositeResult struct {
	Surface *raster.Surface
}

// =============================================================================
// Extract Stage Types
// =============================================================================

// ExtractInput is the surface to read back.
type ExtractInput struct {
	Surface *raster.Surface
}

// ExtractResult is an encodable pixel buffer.
type ExtractResult struct {
	Pix    []byte
	Width  int
	Height int
	Format raster.PixelFormat
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains the pixels and destination of the output image.
type EncodeInput struct {
	Snapshot   ExtractResult
	OutputPath string
}

// EncodeResult describes the written output.
type EncodeResult struct {
	Path     string
	FileSize int64
}
