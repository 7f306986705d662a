package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// MaxSurfacePixels bounds the backing store of a single surface (1 GiB of RGBA8).
const MaxSurfacePixels = 1 << 28

// maxDeviceOffset is far beyond any surface edge; whole-pixel blits
// translated further than this are entirely clipped.
const maxDeviceOffset = 1 << 30

// Paint is the fill style of a draw call.
type Paint struct {
	Color     color.Color
	AntiAlias bool
}

// DefaultPaint returns opaque black without anti-aliasing.
func DefaultPaint() Paint {
	return Paint{Color: color.Black}
}

// TextRasterizer turns a single-line run of text into glyph coverage in
// device space. Implementations must return a mask confined to clip, or nil
// when no glyph pixel falls inside it.
type TextRasterizer interface {
	RasterizeText(s string, x, y float64, clip image.Rectangle, antiAlias bool) (*image.Alpha, error)
}

// Surface is a fixed-size premultiplied RGBA8 canvas.
type Surface struct {
	width   int
	height  int
	backing *image.RGBA
	dc      *gg.Context
	current Matrix
	stack   []Matrix
}

// NewSurface allocates a zeroed surface of the given size.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, Errorf(ErrAllocation, "new surface", "invalid dimensions %dx%d", width, height)
	}
	if width > MaxSurfacePixels/height {
		return nil, Errorf(ErrAllocation, "new surface", "%dx%d exceeds %d pixels", width, height, MaxSurfacePixels)
	}
	backing := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Surface{
		width:   width,
		height:  height,
		backing: backing,
		dc:      gg.NewContextForRGBA(backing),
		current: Identity(),
	}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Transform returns the transform applied to image draws.
func (s *Surface) Transform() Matrix { return s.current }

// Depth returns the number of open transform scopes.
func (s *Surface) Depth() int { return len(s.stack) }

// Clear fills the whole surface with c, ignoring the current transform.
func (s *Surface) Clear(c color.Color) error {
	if s.dc == nil {
		return Errorf(ErrAllocation, "clear", "surface released")
	}
	s.dc.SetColor(c)
	s.dc.Clear()
	return nil
}

// WithTransform runs body with m composed onto the current transform. The
// previous transform is restored when body returns or panics.
func (s *Surface) WithTransform(m Matrix, body func() error) error {
	if s.dc == nil {
		return Errorf(ErrAllocation, "with transform", "surface released")
	}
	s.dc.Push()
	s.stack = append(s.stack, s.current)
	s.current = s.current.Multiply(m)
	s.dc.Translate(m.TranslateX, m.TranslateY)
	s.dc.Scale(m.ScaleX, m.ScaleY)

	defer func() {
		s.dc.Pop()
		s.current = s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
	}()
	return body()
}

// DrawImage composites img with its top-left corner at (x, y) in the current
// transformed space. Scaled draws are resampled bilinearly; anything outside
// the surface is clipped.
func (s *Surface) DrawImage(img *RasterImage, x, y float64) error {
	if s.dc == nil {
		return Errorf(ErrAllocation, "draw image", "surface released")
	}
	if img == nil {
		return Errorf(ErrDecode, "draw image", "nil image")
	}

	total := s.current.Multiply(Translate(x, y))
	if !total.Invertible() {
		// A degenerate scale covers no pixel.
		return nil
	}

	src := img.Premultiplied().Image().(*image.RGBA)

	if total.IsIntegerTranslation() {
		if math.Abs(total.TranslateX) > maxDeviceOffset || math.Abs(total.TranslateY) > maxDeviceOffset {
			return nil
		}
		dp := image.Pt(int(total.TranslateX), int(total.TranslateY))
		r := image.Rectangle{Min: dp, Max: dp.Add(src.Rect.Size())}
		draw.Draw(s.backing, r, src, image.Point{}, draw.Over)
		return nil
	}

	s.dc.Push()
	defer s.dc.Pop()
	s.dc.Translate(x, y)
	s.dc.DrawImage(src, 0, 0)
	return nil
}

// DrawText renders text with its baseline origin at device coordinates
// (x, y). The current transform is not applied.
func (s *Surface) DrawText(text string, x, y float64, font TextRasterizer, paint Paint) error {
	if s.dc == nil {
		return Errorf(ErrAllocation, "draw text", "surface released")
	}
	if font == nil {
		return Errorf(ErrFontResolution, "draw text", "nil font")
	}
	if text == "" {
		return nil
	}

	mask, err := font.RasterizeText(text, x, y, s.backing.Rect, paint.AntiAlias)
	if err != nil {
		return err
	}
	if mask == nil {
		return nil
	}

	c := paint.Color
	if c == nil {
		c = color.Black
	}
	r := mask.Rect.Intersect(s.backing.Rect)
	draw.DrawMask(s.backing, r, image.NewUniform(c), image.Point{}, mask, r.Min, draw.Over)
	return nil
}

// Snapshot returns a copy of the backing buffer: premultiplied RGBA8,
// stride Width*4, rows top-to-bottom.
func (s *Surface) Snapshot() ([]byte, error) {
	if s.backing == nil {
		return nil, Errorf(ErrSnapshot, "snapshot", "backing store not available")
	}
	want := s.width * s.height * BytesPerPixel
	if s.backing.Stride != s.width*BytesPerPixel || len(s.backing.Pix) != want {
		return nil, Errorf(ErrSnapshot, "snapshot", "backing store is %d bytes with stride %d, want %d with stride %d",
			len(s.backing.Pix), s.backing.Stride, want, s.width*BytesPerPixel)
	}
	out := make([]byte, want)
	copy(out, s.backing.Pix)
	return out, nil
}

// Release drops the backing buffer. Further draws and snapshots fail.
func (s *Surface) Release() {
	s.dc = nil
	s.backing = nil
	s.stack = nil
	s.current = Identity()
}
