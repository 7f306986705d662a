package text

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/vector"

	"github.com/user/rastercomp/pkg/raster"
)

// sharpThreshold splits coverage into on/off when anti-aliasing is disabled.
const sharpThreshold = 128

// placedOutline is a glyph outline translated to device space.
type placedOutline struct {
	segments sfnt.Segments
	ox, oy   float64
}

// RasterizeText implements raster.TextRasterizer. The baseline origin is
// (x, y) in device pixels; glyph edges are smoothed only when both the font
// and the caller ask for it.
func (f *Font) RasterizeText(s string, x, y float64, clip image.Rectangle, antiAlias bool) (*image.Alpha, error) {
	glyphs := f.shape(s)
	if len(glyphs) == 0 || clip.Empty() {
		return nil, nil
	}

	outlines := make([]placedOutline, 0, len(glyphs))
	bounds := image.Rectangle{}
	for _, g := range glyphs {
		ox, oy := x+g.x, y+g.y
		if !f.subpixel {
			ox, oy = math.Round(ox), math.Round(oy)
		}

		segs, err := f.typeface.sfnt.LoadGlyph(&f.buf, g.id, f.ppem(), nil)
		if err != nil {
			if errors.Is(err, sfnt.ErrColoredGlyph) {
				continue
			}
			return nil, fmt.Errorf("load glyph %d: %w", g.id, err)
		}
		if len(segs) == 0 {
			continue
		}
		// LoadGlyph reuses f.buf, so keep a private copy.
		segs = append(sfnt.Segments(nil), segs...)

		gb := segs.Bounds()
		r := image.Rect(
			int(math.Floor(ox+fixedToFloat(gb.Min.X))),
			int(math.Floor(oy+fixedToFloat(gb.Min.Y))),
			int(math.Ceil(ox+fixedToFloat(gb.Max.X))),
			int(math.Ceil(oy+fixedToFloat(gb.Max.Y))),
		)
		bounds = bounds.Union(r)
		outlines = append(outlines, placedOutline{segments: segs, ox: ox, oy: oy})
	}

	area := bounds.Intersect(clip)
	if area.Empty() {
		return nil, nil
	}

	z := vector.NewRasterizer(area.Dx(), area.Dy())
	z.DrawOp = draw.Src
	for _, o := range outlines {
		trace(z, o.segments, float32(o.ox-float64(area.Min.X)), float32(o.oy-float64(area.Min.Y)))
	}

	mask := image.NewAlpha(image.Rect(0, 0, area.Dx(), area.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	if !(antiAlias && f.antiAlias) {
		sharpen(mask)
	}
	mask.Rect = area
	return mask, nil
}

// trace feeds an outline to the rasterizer, offset by (dx, dy).
func trace(z *vector.Rasterizer, segs sfnt.Segments, dx, dy float32) {
	pt := func(i int, s sfnt.Segment) (float32, float32) {
		return float32(s.Args[i].X)/64 + dx, float32(s.Args[i].Y)/64 + dy
	}
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(0, s))
			open = true
		case sfnt.SegmentOpLineTo:
			z.LineTo(pt(0, s))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(0, s)
			cx, cy := pt(1, s)
			z.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(0, s)
			cx, cy := pt(1, s)
			ex, ey := pt(2, s)
			z.CubeTo(bx, by, cx, cy, ex, ey)
		}
	}
	if open {
		z.ClosePath()
	}
}

// sharpen quantizes coverage to fully on or off.
func sharpen(mask *image.Alpha) {
	for i, v := range mask.Pix {
		if v < sharpThreshold {
			mask.Pix[i] = 0
		} else {
			mask.Pix[i] = 0xff
		}
	}
}

var _ raster.TextRasterizer = (*Font)(nil)
