package text

import (
	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
)

// positionedGlyph is a shaped glyph relative to the run's baseline origin.
type positionedGlyph struct {
	id      sfnt.GlyphIndex
	x, y    float64
	advance float64
}

// shape lays s out as one left-to-right run. No wrapping or line breaking.
func (f *Font) shape(s string) []positionedGlyph {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(f.typeface.shape),
		Size:      f.ppem(),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	}
	var hb shaping.HarfbuzzShaper
	out := hb.Shape(input)

	glyphs := make([]positionedGlyph, 0, len(out.Glyphs))
	var pen float64
	for _, g := range out.Glyphs {
		adv := fixedToFloat(g.Advance)
		// go-text offsets are y-up, sfnt outlines are y-down.
		glyphs = append(glyphs, positionedGlyph{
			id:      sfnt.GlyphIndex(g.GlyphID),
			x:       pen + fixedToFloat(g.XOffset),
			y:       -fixedToFloat(g.YOffset),
			advance: adv,
		})
		pen += adv
	}
	return glyphs
}

// scriptOf returns the script of the first non-space rune.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
