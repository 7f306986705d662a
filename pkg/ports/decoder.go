package ports

import (
	"image"
)

// ImageDecoder abstracts decoding of a raster image container.
type ImageDecoder interface {
	// Decode parses the full contents of an image file. It returns the
	// decoded image and the container name (e.g. "png", "jpeg").
	Decode(data []byte) (image.Image, string, error)
}
