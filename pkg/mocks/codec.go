package mocks

import (
	"image"

	"github.com/user/rastercomp/pkg/ports"
)

// ImageDecoder is a mock implementation of ports.ImageDecoder.
type ImageDecoder struct {
	DecodeFunc func(data []byte) (image.Image, string, error)

	Calls int
}

func (m *ImageDecoder) Decode(data []byte) (image.Image, string, error) {
	m.Calls++
	if m.DecodeFunc != nil {
		return m.DecodeFunc(data)
	}
	return image.NewNRGBA(image.Rect(0, 0, 100, 100)), "png", nil
}

var _ ports.ImageDecoder = (*ImageDecoder)(nil)

// ImageEncoder is a mock implementation of ports.ImageEncoder.
type ImageEncoder struct {
	EncodeFunc func(img image.Image, path string) ([]byte, error)

	// Last is the most recently encoded image.
	Last image.Image
}

func (m *ImageEncoder) Encode(img image.Image, path string) ([]byte, error) {
	m.Last = img
	if m.EncodeFunc != nil {
		return m.EncodeFunc(img, path)
	}
	return []byte("encoded"), nil
}

var _ ports.ImageEncoder = (*ImageEncoder)(nil)
