// Package formatdetect identifies image containers from their leading bytes.
package formatdetect

import (
	"errors"
	"fmt"

	"github.com/h2non/filetype"
)

// Container represents an image container type.
type Container string

const (
	ContainerPNG     Container = "png"
	ContainerJPEG    Container = "jpeg"
	ContainerGIF     Container = "gif"
	ContainerBMP     Container = "bmp"
	ContainerTIFF    Container = "tiff"
	ContainerWebP    Container = "webp"
	ContainerUnknown Container = "unknown"
)

// headerSize is the number of leading bytes filetype inspects.
const headerSize = 262

var (
	// ErrUnknownContainer is returned when the bytes match no known file type.
	ErrUnknownContainer = errors.New("formatdetect: unknown container")
	// ErrNotImage is returned when the bytes are a known type that is not an image.
	ErrNotImage = errors.New("formatdetect: not an image")
	// ErrUnsupportedImage is returned for image types no decoder is registered for.
	ErrUnsupportedImage = errors.New("formatdetect: unsupported image type")
)

var byExtension = map[string]Container{
	"png":  ContainerPNG,
	"jpg":  ContainerJPEG,
	"gif":  ContainerGIF,
	"bmp":  ContainerBMP,
	"tif":  ContainerTIFF,
	"webp": ContainerWebP,
}

// DetectFromBytes detects the image container of data.
func DetectFromBytes(data []byte) (Container, error) {
	if len(data) == 0 {
		return ContainerUnknown, ErrUnknownContainer
	}
	head := data
	if len(head) > headerSize {
		head = head[:headerSize]
	}

	kind, err := filetype.Match(head)
	if err != nil {
		return ContainerUnknown, fmt.Errorf("match file type: %w", err)
	}
	if kind == filetype.Unknown {
		return ContainerUnknown, ErrUnknownContainer
	}
	if !filetype.IsImage(head) {
		return ContainerUnknown, fmt.Errorf("%w: %s", ErrNotImage, kind.MIME.Value)
	}
	if c, ok := byExtension[kind.Extension]; ok {
		return c, nil
	}
	return ContainerUnknown, fmt.Errorf("%w: %s", ErrUnsupportedImage, kind.MIME.Value)
}
