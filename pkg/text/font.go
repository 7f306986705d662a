// Package text resolves the default typeface and renders single-line glyph
// runs into coverage masks for raster.Surface.
package text

import (
	"bytes"
	"errors"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/user/rastercomp/pkg/ports"
	"github.com/user/rastercomp/pkg/raster"
)

// Typeface is a parsed font file. It is read-only after resolution.
type Typeface struct {
	family string
	data   []byte
	sfnt   *sfnt.Font
	shape  *gotext.Font
}

// ParseTypeface parses OpenType/TrueType data for both outline extraction
// (x/image sfnt) and shaping (go-text).
func ParseTypeface(data []byte) (*Typeface, error) {
	if len(data) == 0 {
		return nil, errors.New("empty font data")
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse outlines: %w", err)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse for shaping: %w", err)
	}
	family, err := sf.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		family = ""
	}
	return &Typeface{family: family, data: data, sfnt: sf, shape: face.Font}, nil
}

// Family returns the family name recorded in the font, if any.
func (t *Typeface) Family() string { return t.family }

// Font binds a typeface to a size and rendering policy.
type Font struct {
	typeface  *Typeface
	size      float64
	antiAlias bool
	subpixel  bool

	buf sfnt.Buffer
}

// ResolveDefaultFont asks fm for the process default typeface once and
// binds it to sizePt. Size is pixels per em at 72 DPI.
func ResolveDefaultFont(fm ports.FontManager, sizePt float64) (*Font, error) {
	const op = "resolve default font"
	if fm == nil {
		return nil, raster.Errorf(raster.ErrFontResolution, op, "no font manager")
	}
	if sizePt <= 0 {
		return nil, raster.Errorf(raster.ErrFontResolution, op, "invalid size %g", sizePt)
	}
	fd, err := fm.DefaultTypeface()
	if err != nil {
		return nil, raster.NewError(raster.ErrFontResolution, op, err)
	}
	tf, err := ParseTypeface(fd.Data)
	if err != nil {
		return nil, raster.NewError(raster.ErrFontResolution, op, fmt.Errorf("typeface %q: %w", fd.Family, err))
	}
	if tf.family == "" {
		tf.family = fd.Family
	}
	return NewFont(tf, sizePt), nil
}

// NewFont returns an anti-aliased font without subpixel positioning.
func NewFont(tf *Typeface, size float64) *Font {
	return &Font{typeface: tf, size: size, antiAlias: true}
}

// Configure sets the rendering flags used by every later draw.
func (f *Font) Configure(antiAlias, subpixel bool) {
	f.antiAlias = antiAlias
	f.subpixel = subpixel
}

// Typeface returns the bound typeface.
func (f *Font) Typeface() *Typeface { return f.typeface }

// Size returns the em size in pixels.
func (f *Font) Size() float64 { return f.size }

// AntiAlias reports whether glyph edges are smoothed.
func (f *Font) AntiAlias() bool { return f.antiAlias }

// Subpixel reports whether glyph origins keep fractional positions.
func (f *Font) Subpixel() bool { return f.subpixel }

// Metrics describes the extent of a shaped run, in pixels.
type Metrics struct {
	Advance float64
	Ascent  float64
	Descent float64
}

// Measure returns the advance of s and the typeface's ascent/descent.
func (f *Font) Measure(s string) (Metrics, error) {
	m, err := f.typeface.sfnt.Metrics(&f.buf, f.ppem(), font.HintingNone)
	if err != nil {
		return Metrics{}, fmt.Errorf("font metrics: %w", err)
	}
	var adv float64
	for _, g := range f.shape(s) {
		adv += g.advance
	}
	return Metrics{
		Advance: adv,
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
	}, nil
}

func (f *Font) ppem() fixed.Int26_6 {
	return floatToFixed(f.size)
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
