package raster

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode is returned when input bytes cannot be turned into a RasterImage.
	ErrDecode = errors.New("raster: decode failed")

	// ErrAllocation is returned when a surface or pixel buffer cannot be sized.
	ErrAllocation = errors.New("raster: allocation failed")

	// ErrFontResolution is returned when no usable default typeface exists.
	ErrFontResolution = errors.New("raster: font resolution failed")

	// ErrSnapshot is returned when surface pixels cannot be read back.
	ErrSnapshot = errors.New("raster: snapshot failed")

	// ErrEncode is returned when the output image cannot be encoded or written.
	ErrEncode = errors.New("raster: encode failed")
)

// Error describes a fatal pipeline failure. Kind is one of the Err* sentinels
// above, so callers can match with errors.Is.
type Error struct {
	Kind error
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewError builds an *Error of the given kind.
func NewError(kind error, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf builds an *Error of the given kind with a formatted cause.
func Errorf(kind error, op string, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}
