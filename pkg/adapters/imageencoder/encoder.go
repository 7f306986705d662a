// Package imageencoder encodes images into the container implied by the
// output file extension.
package imageencoder

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/user/rastercomp/pkg/ports"
)

// Options configures encoding.
type Options struct {
	JPEGQuality      int // 1-100
	PNGCompression   png.CompressionLevel
	DefaultExtension string // used when the output path has no extension
}

// DefaultOptions returns the options used by New.
func DefaultOptions() Options {
	return Options{
		JPEGQuality:      95,
		PNGCompression:   png.DefaultCompression,
		DefaultExtension: ".png",
	}
}

// Encoder implements ports.ImageEncoder using imaging.
type Encoder struct {
	opts Options
}

// New creates an encoder with default options.
func New() *Encoder {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates an encoder with explicit options.
func NewWithOptions(opts Options) *Encoder {
	return &Encoder{opts: opts}
}

// Format returns the container chosen for path.
func (e *Encoder) Format(path string) (imaging.Format, error) {
	name := path
	if filepath.Ext(name) == "" && e.opts.DefaultExtension != "" {
		name += e.opts.DefaultExtension
	}
	return imaging.FormatFromFilename(name)
}

// Encode serializes img in the container implied by path.
func (e *Encoder) Encode(img image.Image, path string) ([]byte, error) {
	format, err := e.Format(path)
	if err != nil {
		return nil, fmt.Errorf("output %q: %w", path, err)
	}

	var buf bytes.Buffer
	err = imaging.Encode(&buf, img, format,
		imaging.JPEGQuality(e.opts.JPEGQuality),
		imaging.PNGCompressionLevel(e.opts.PNGCompression),
	)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var _ ports.ImageEncoder = (*Encoder)(nil)
