// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/rastercomp/pkg/ports"
)

// File names written under the sink's base directory.
const (
	SourceFile   = "source.png"
	TextMaskFile = "text-mask.png"
	ConfigFile   = "config.yaml"
)

// Sink saves debug output to files.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
	encoder ports.ImageEncoder
}

// New creates a new Sink.
func New(baseDir string, fs ports.FileSystem, encoder ports.ImageEncoder) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
		encoder: encoder,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveSource saves the normalized source image as PNG.
func (s *Sink) SaveSource(img image.Image) error {
	return s.savePNG(SourceFile, img)
}

// SaveTextMask saves the glyph coverage mask as a grayscale PNG.
func (s *Sink) SaveTextMask(mask *image.Alpha) error {
	if mask == nil {
		return nil
	}
	gray := image.NewGray(image.Rect(0, 0, mask.Rect.Dx(), mask.Rect.Dy()))
	for y := 0; y < mask.Rect.Dy(); y++ {
		src := mask.Pix[y*mask.Stride : y*mask.Stride+mask.Rect.Dx()]
		copy(gray.Pix[y*gray.Stride:], src)
	}
	return s.savePNG(TextMaskFile, gray)
}

// SaveConfig saves the effective configuration.
func (s *Sink) SaveConfig(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, ConfigFile), data)
}

func (s *Sink) savePNG(name string, img image.Image) error {
	path := filepath.Join(s.baseDir, name)
	data, err := s.encoder.Encode(img, path)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return s.fs.WriteFile(path, data)
}

var _ ports.DebugSink = (*Sink)(nil)
