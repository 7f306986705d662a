// Package imagedecoder decodes raster image containers after sniffing their
// type, honouring EXIF orientation.
package imagedecoder

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	// Register decoders beyond imaging's defaults.
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"

	"github.com/user/rastercomp/pkg/adapters/formatdetect"
	"github.com/user/rastercomp/pkg/ports"
)

// ErrEmptyImage is returned for containers that decode to zero pixels.
var ErrEmptyImage = errors.New("imagedecoder: empty image")

// Options configures the decoder.
type Options struct {
	// AutoOrient applies the EXIF orientation tag of JPEG/TIFF inputs.
	AutoOrient bool
}

// Decoder implements ports.ImageDecoder.
type Decoder struct {
	opts Options
}

// New creates a decoder with EXIF auto-orientation enabled.
func New() *Decoder {
	return NewWithOptions(Options{AutoOrient: true})
}

// NewWithOptions creates a decoder with explicit options.
func NewWithOptions(opts Options) *Decoder {
	return &Decoder{opts: opts}
}

// Decode sniffs and decodes the image in data.
func (d *Decoder) Decode(data []byte) (image.Image, string, error) {
	container, err := formatdetect.DetectFromBytes(data)
	if err != nil {
		return nil, "", err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(d.opts.AutoOrient))
	if err != nil {
		return nil, string(container), fmt.Errorf("decode %s: %w", container, err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, string(container), fmt.Errorf("%w: %dx%d", ErrEmptyImage, b.Dx(), b.Dy())
	}
	return img, string(container), nil
}

var _ ports.ImageDecoder = (*Decoder)(nil)
