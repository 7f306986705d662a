package ports

import (
	"image"
)

// ImageEncoder abstracts encoding a raster image into a container.
type ImageEncoder interface {
	// Encode serializes img in the container implied by path's extension.
	// It does not write to path.
	Encode(img image.Image, path string) ([]byte, error)
}
