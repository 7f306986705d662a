package decode

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/user/rastercomp/pkg/adapters/logger"
	"github.com/user/rastercomp/pkg/mocks"
	"github.com/user/rastercomp/pkg/pipeline"
	"github.com/user/rastercomp/pkg/raster"
)

func TestStage_Execute(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("in.png", []byte("fake"))

	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	src.SetNRGBA(1, 2, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	dec := &mocks.ImageDecoder{
		DecodeFunc: func(data []byte) (image.Image, string, error) {
			if string(data) != "fake" {
				t.Errorf("decoder got %q", data)
			}
			return src, "png", nil
		},
	}

	stage := NewStage(fs, dec, mocks.NewDebugSink(false), logger.NewNoop())
	result, err := stage.Execute(context.Background(), pipeline.DecodeInput{Path: "in.png"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Container != "png" {
		t.Errorf("expected container png, got %s", result.Container)
	}
	img := result.Image
	if img.Width() != 4 || img.Height() != 3 {
		t.Fatalf("expected 4x3, got %dx%d", img.Width(), img.Height())
	}
	if img.Format() != raster.RGBA8Straight {
		t.Errorf("expected straight alpha, got %s", img.Format())
	}
	if got := img.At(1, 2); got != (color.NRGBA{R: 200, G: 100, B: 50, A: 128}) {
		t.Errorf("unexpected pixel %v", got)
	}
}

func TestStage_Execute_ReadError(t *testing.T) {
	stage := NewStage(mocks.NewFileSystem(), &mocks.ImageDecoder{}, mocks.NewDebugSink(false), logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.DecodeInput{Path: "missing.png"})
	if !errors.Is(err, raster.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestStage_Execute_DecoderError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("in.png", []byte("junk"))
	cause := errors.New("bad header")
	dec := &mocks.ImageDecoder{
		DecodeFunc: func(data []byte) (image.Image, string, error) {
			return nil, "", cause
		},
	}

	stage := NewStage(fs, dec, mocks.NewDebugSink(false), logger.NewNoop())
	_, err := stage.Execute(context.Background(), pipeline.DecodeInput{Path: "in.png"})
	if !errors.Is(err, raster.ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be preserved, got %v", err)
	}
}

func TestStage_Execute_EmptyPath(t *testing.T) {
	dec := &mocks.ImageDecoder{}
	stage := NewStage(mocks.NewFileSystem(), dec, mocks.NewDebugSink(false), logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.DecodeInput{})
	if !errors.Is(err, raster.ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
	if dec.Calls != 0 {
		t.Errorf("decoder should not be called, got %d calls", dec.Calls)
	}
}

func TestStage_Execute_DebugSink(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("in.png", []byte("fake"))
	sink := mocks.NewDebugSink(true)

	stage := NewStage(fs, &mocks.ImageDecoder{}, sink, logger.NewNoop())
	if _, err := stage.Execute(context.Background(), pipeline.DecodeInput{Path: "in.png"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sink.Source == nil {
		t.Fatal("expected source to be saved")
	}
	if b := sink.Source.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Errorf("expected 100x100 debug source, got %v", b)
	}
}

func TestStage_Execute_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stage := NewStage(mocks.NewFileSystem(), &mocks.ImageDecoder{}, mocks.NewDebugSink(false), logger.NewNoop())
	if _, err := stage.Execute(ctx, pipeline.DecodeInput{Path: "in.png"}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
