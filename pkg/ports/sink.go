package ports

import (
	"image"
)

// DebugSink receives intermediate pipeline results for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveSource saves the normalized source image before compositing.
	SaveSource(img image.Image) error

	// SaveTextMask saves the glyph coverage mask of the annotation.
	SaveTextMask(mask *image.Alpha) error

	// SaveConfig saves the effective configuration.
	SaveConfig(data []byte) error
}
