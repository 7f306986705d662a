package formatdetect

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"
)

func encode(t *testing.T, fn func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := fn(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	return buf.Bytes()
}

func TestDetectFromBytes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Container
	}{
		{"png", encode(t, func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) }), ContainerPNG},
		{"jpeg", encode(t, func(b *bytes.Buffer, m image.Image) error { return jpeg.Encode(b, m, nil) }), ContainerJPEG},
		{"gif", encode(t, func(b *bytes.Buffer, m image.Image) error { return gif.Encode(b, m, nil) }), ContainerGIF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFromBytes(tt.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDetectFromBytes_Unknown(t *testing.T) {
	_, err := DetectFromBytes([]byte("definitely not an image"))
	if !errors.Is(err, ErrUnknownContainer) {
		t.Errorf("expected ErrUnknownContainer, got %v", err)
	}
}

func TestDetectFromBytes_Empty(t *testing.T) {
	got, err := DetectFromBytes(nil)
	if !errors.Is(err, ErrUnknownContainer) {
		t.Errorf("expected ErrUnknownContainer, got %v", err)
	}
	if got != ContainerUnknown {
		t.Errorf("expected unknown container, got %s", got)
	}
}

func TestDetectFromBytes_NotImage(t *testing.T) {
	// ZIP local file header.
	data := append([]byte{0x50, 0x4B, 0x03, 0x04}, make([]byte, 64)...)
	_, err := DetectFromBytes(data)
	if !errors.Is(err, ErrNotImage) {
		t.Errorf("expected ErrNotImage, got %v", err)
	}
}
