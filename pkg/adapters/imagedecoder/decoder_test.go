package imagedecoder

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/user/rastercomp/pkg/adapters/formatdetect"
)

func TestDecoder_DecodePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 12, 7))
	for y := 0; y < 7; y++ {
		for x := 0; x < 12; x++ {
			src.Set(x, y, color.NRGBA{R: uint8(x * 20), G: uint8(y * 30), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}

	img, format, err := New().Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if format != "png" {
		t.Errorf("expected format png, got %s", format)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 7 {
		t.Errorf("expected 12x7, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
	r, g, _, _ := img.At(5, 3).RGBA()
	if r>>8 != 100 || g>>8 != 90 {
		t.Errorf("unexpected pixel at (5,3): r=%d g=%d", r>>8, g>>8)
	}
}

func TestDecoder_DecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 3, 5))); err != nil {
		t.Fatalf("bmp.Encode failed: %v", err)
	}

	img, format, err := New().Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if format != "bmp" {
		t.Errorf("expected format bmp, got %s", format)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 5 {
		t.Errorf("expected 3x5, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestDecoder_DecodeGarbage(t *testing.T) {
	_, _, err := New().Decode([]byte("not an image at all"))
	if !errors.Is(err, formatdetect.ErrUnknownContainer) {
		t.Errorf("expected ErrUnknownContainer, got %v", err)
	}
}

func TestDecoder_DecodeTruncatedPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 64, 64))); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	truncated := buf.Bytes()[:40]

	_, format, err := New().Decode(truncated)
	if err == nil {
		t.Fatal("expected error for truncated PNG")
	}
	if format != "png" {
		t.Errorf("expected sniffed format png, got %q", format)
	}
}
