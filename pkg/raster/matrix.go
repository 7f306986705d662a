package raster

import "math"

// Matrix is a 2D affine transform restricted to independent x/y scale and
// translation: x' = ScaleX*x + TranslateX, y' = ScaleY*y + TranslateY.
type Matrix struct {
	ScaleX     float64
	ScaleY     float64
	TranslateX float64
	TranslateY float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{ScaleX: 1, ScaleY: 1}
}

// Scale returns an isotropic scale transform.
func Scale(s float64) Matrix {
	return Matrix{ScaleX: s, ScaleY: s}
}

// ScaleXY returns an anisotropic scale transform.
func ScaleXY(sx, sy float64) Matrix {
	return Matrix{ScaleX: sx, ScaleY: sy}
}

// Translate returns a translation.
func Translate(tx, ty float64) Matrix {
	return Matrix{ScaleX: 1, ScaleY: 1, TranslateX: tx, TranslateY: ty}
}

// Multiply returns a·b, the transform that applies b first and then a.
func (a Matrix) Multiply(b Matrix) Matrix {
	return Matrix{
		ScaleX:     a.ScaleX * b.ScaleX,
		ScaleY:     a.ScaleY * b.ScaleY,
		TranslateX: a.ScaleX*b.TranslateX + a.TranslateX,
		TranslateY: a.ScaleY*b.TranslateY + a.TranslateY,
	}
}

// Apply maps a point through the transform.
func (a Matrix) Apply(x, y float64) (float64, float64) {
	return a.ScaleX*x + a.TranslateX, a.ScaleY*y + a.TranslateY
}

// IsIdentity reports whether a leaves every point unchanged.
func (a Matrix) IsIdentity() bool {
	return a == Identity()
}

// IsIntegerTranslation reports whether a is a unit-scale translation by
// whole pixels, so drawing under it needs no resampling.
func (a Matrix) IsIntegerTranslation() bool {
	return a.ScaleX == 1 && a.ScaleY == 1 &&
		isWhole(a.TranslateX) && isWhole(a.TranslateY)
}

func isWhole(v float64) bool {
	return !math.IsInf(v, 0) && v == math.Trunc(v)
}

// Invertible reports whether both scale factors are non-zero and finite.
func (a Matrix) Invertible() bool {
	ok := func(v float64) bool { return v != 0 && !math.IsInf(v, 0) && !math.IsNaN(v) }
	return ok(a.ScaleX) && ok(a.ScaleY) &&
		!math.IsNaN(a.TranslateX) && !math.IsNaN(a.TranslateY) &&
		!math.IsInf(a.TranslateX, 0) && !math.IsInf(a.TranslateY, 0)
}
