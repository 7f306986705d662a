// Package raster implements the in-memory compositing core: pixel buffers,
// the drawing surface, transform scopes and snapshot readback.
package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// PixelFormat identifies how the RGBA8 channels of a buffer relate to alpha.
type PixelFormat int

const (
	// RGBA8Straight stores colour channels independent of alpha.
	RGBA8Straight PixelFormat = iota
	// RGBA8Premultiplied stores colour channels pre-scaled by alpha.
	RGBA8Premultiplied
)

// String returns the string representation of the pixel format.
func (f PixelFormat) String() string {
	switch f {
	case RGBA8Straight:
		return "rgba8"
	case RGBA8Premultiplied:
		return "rgba8-premul"
	default:
		return "unknown"
	}
}

// RasterImage is an immutable RGBA8 pixel buffer with rows packed
// top-to-bottom and a stride of Width*4.
type RasterImage struct {
	width  int
	height int
	pix    []byte
	format PixelFormat
}

// NewRasterImage validates pix against the dimensions and takes a private
// copy of it.
func NewRasterImage(width, height int, pix []byte, format PixelFormat) (*RasterImage, error) {
	if width <= 0 || height <= 0 {
		return nil, Errorf(ErrDecode, "new raster image", "invalid dimensions %dx%d", width, height)
	}
	want, ok := bufferLen(width, height)
	if !ok {
		return nil, Errorf(ErrAllocation, "new raster image", "dimensions %dx%d overflow", width, height)
	}
	if len(pix) != want {
		return nil, Errorf(ErrDecode, "new raster image", "buffer length %d, want %d for %dx%d", len(pix), want, width, height)
	}
	if format != RGBA8Straight && format != RGBA8Premultiplied {
		return nil, Errorf(ErrDecode, "new raster image", "unsupported pixel format %d", format)
	}
	buf := make([]byte, want)
	copy(buf, pix)
	return &RasterImage{width: width, height: height, pix: buf, format: format}, nil
}

// FromImage coerces any decoded image (gray, paletted, YCbCr, CMYK, 16-bit...)
// into a straight-alpha RasterImage whose origin is (0,0).
func FromImage(img image.Image) (*RasterImage, error) {
	if img == nil {
		return nil, Errorf(ErrDecode, "from image", "nil image")
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, Errorf(ErrDecode, "from image", "empty image %dx%d", b.Dx(), b.Dy())
	}
	if _, ok := bufferLen(b.Dx(), b.Dy()); !ok {
		return nil, Errorf(ErrAllocation, "from image", "dimensions %dx%d overflow", b.Dx(), b.Dy())
	}

	nrgba := imaging.Clone(img)
	w, h := nrgba.Rect.Dx(), nrgba.Rect.Dy()
	pix := make([]byte, w*h*BytesPerPixel)
	for y := 0; y < h; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*BytesPerPixel]
		copy(pix[y*w*BytesPerPixel:], src)
	}
	return &RasterImage{width: w, height: h, pix: pix, format: RGBA8Straight}, nil
}

// Width returns the image width in pixels.
func (r *RasterImage) Width() int { return r.width }

// Height returns the image height in pixels.
func (r *RasterImage) Height() int { return r.height }

// Format returns the alpha convention of the pixel buffer.
func (r *RasterImage) Format() PixelFormat { return r.format }

// Stride returns the number of bytes per row.
func (r *RasterImage) Stride() int { return r.width * BytesPerPixel }

// Pix returns a copy of the pixel buffer.
func (r *RasterImage) Pix() []byte {
	out := make([]byte, len(r.pix))
	copy(out, r.pix)
	return out
}

// Premultiplied returns the image converted to premultiplied alpha. An image
// that is already premultiplied is returned as is.
func (r *RasterImage) Premultiplied() *RasterImage {
	if r.format == RGBA8Premultiplied {
		return r
	}
	pix := make([]byte, len(r.pix))
	for i := 0; i < len(r.pix); i += BytesPerPixel {
		a := uint32(r.pix[i+3])
		pix[i+0] = premul(r.pix[i+0], a)
		pix[i+1] = premul(r.pix[i+1], a)
		pix[i+2] = premul(r.pix[i+2], a)
		pix[i+3] = uint8(a)
	}
	return &RasterImage{width: r.width, height: r.height, pix: pix, format: RGBA8Premultiplied}
}

// Image returns a standard library view of the pixels: *image.NRGBA for
// straight alpha, *image.RGBA for premultiplied. The returned image shares
// no memory with r.
func (r *RasterImage) Image() image.Image {
	rect := image.Rect(0, 0, r.width, r.height)
	if r.format == RGBA8Premultiplied {
		return &image.RGBA{Pix: r.Pix(), Stride: r.Stride(), Rect: rect}
	}
	return &image.NRGBA{Pix: r.Pix(), Stride: r.Stride(), Rect: rect}
}

// At returns the straight-alpha colour at (x, y).
func (r *RasterImage) At(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return color.NRGBA{}
	}
	i := (y*r.width + x) * BytesPerPixel
	c := color.NRGBA{R: r.pix[i], G: r.pix[i+1], B: r.pix[i+2], A: r.pix[i+3]}
	if r.format == RGBA8Premultiplied {
		return color.NRGBAModel.Convert(color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}).(color.NRGBA)
	}
	return c
}

// WrapRGBA checks pix against width*height*4 and wraps it as a premultiplied
// *image.RGBA without copying.
func WrapRGBA(width, height int, pix []byte) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, Errorf(ErrAllocation, "wrap rgba", "invalid dimensions %dx%d", width, height)
	}
	want, ok := bufferLen(width, height)
	if !ok {
		return nil, Errorf(ErrAllocation, "wrap rgba", "dimensions %dx%d overflow", width, height)
	}
	if len(pix) != want {
		return nil, Errorf(ErrAllocation, "wrap rgba", "buffer length %d, want %d for %dx%d", len(pix), want, width, height)
	}
	return &image.RGBA{Pix: pix, Stride: width * BytesPerPixel, Rect: image.Rect(0, 0, width, height)}, nil
}

func premul(c uint8, a uint32) uint8 {
	return uint8((uint32(c)*a + 127) / 255)
}

// bufferLen returns width*height*4 and false if it does not fit in an int.
func bufferLen(width, height int) (int, bool) {
	const maxInt = int(^uint(0) >> 1)
	if width > maxInt/height/BytesPerPixel {
		return 0, false
	}
	return width * height * BytesPerPixel, true
}
