// Package integration contains integration tests for the rastercomp pipeline.
package integration

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/user/rastercomp/pkg/adapters/filesink"
	"github.com/user/rastercomp/pkg/adapters/gofonts"
	"github.com/user/rastercomp/pkg/adapters/imagedecoder"
	"github.com/user/rastercomp/pkg/adapters/imageencoder"
	"github.com/user/rastercomp/pkg/adapters/logger"
	"github.com/user/rastercomp/pkg/adapters/nullsink"
	"github.com/user/rastercomp/pkg/adapters/osfilesystem"
	"github.com/user/rastercomp/pkg/config"
	"github.com/user/rastercomp/pkg/orchestrator"
	"github.com/user/rastercomp/pkg/ports"
	"github.com/user/rastercomp/pkg/raster"
	"github.com/user/rastercomp/pkg/stages/composite"
	"github.com/user/rastercomp/pkg/stages/decode"
	"github.com/user/rastercomp/pkg/stages/encode"
	"github.com/user/rastercomp/pkg/stages/extract"
)

func newOrchestrator(sink ports.DebugSink) *orchestrator.Orchestrator {
	fs := osfilesystem.New()
	log := logger.NewNoop()
	encoder := imageencoder.New()
	return orchestrator.New(
		decode.NewStage(fs, imagedecoder.New(), sink, log),
		composite.NewStage(sink, log),
		extract.NewStage(log),
		encode.NewStage(encoder, fs, log),
		gofonts.New(),
		log,
	)
}

func writeSolid(t *testing.T, path string, w, h int, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func readImage(t *testing.T, path string) *image.NRGBA {
	t.Helper()
	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	return imaging.Clone(img)
}

// TestRedImage_TextBelowSurface renders the stock configuration onto a
// 200x100 red image: the upscaled image covers the surface and the text
// baseline at y=300 is fully clipped.
func TestRedImage_TextBelowSurface(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "red.png")
	out := filepath.Join(dir, "result.png")
	writeSolid(t, in, 200, 100, color.NRGBA{R: 255, A: 255})

	cfg, err := config.Defaults().ToOrchestratorConfig(in, out)
	if err != nil {
		t.Fatalf("invalid config: %v", err)
	}
	result, err := newOrchestrator(nullsink.New()).Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Width != 200 || result.Height != 100 {
		t.Errorf("expected 200x100, got %dx%d", result.Width, result.Height)
	}
	if result.Container != "png" {
		t.Errorf("expected png container, got %s", result.Container)
	}

	got := readImage(t, out)
	if got.Bounds() != image.Rect(0, 0, 200, 100) {
		t.Fatalf("expected 200x100 output, got %v", got.Bounds())
	}
	for i := 0; i < len(got.Pix); i += 4 {
		if !bytes.Equal(got.Pix[i:i+4], []byte{255, 0, 0, 255}) {
			t.Fatalf("pixel %d: expected opaque red, got %v", i/4, got.Pix[i:i+4])
		}
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() != result.FileSize {
		t.Errorf("reported size %d, file is %d bytes", result.FileSize, info.Size())
	}
}

// TestTextPlacementIgnoresScale checks that glyphs land on the same device
// pixels whatever the image scale.
func TestTextPlacementIgnoresScale(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "black.png")
	writeSolid(t, in, 160, 80, color.NRGBA{A: 255})

	render := func(scale float64, name string) *image.NRGBA {
		out := filepath.Join(dir, name)
		cfg, err := config.NewBuilder().
			WithScale(scale).
			WithText("AAAA!").
			WithBaseline(10, 50).
			WithFontSize(32).
			WithTextColor("#ffffff").
			BuildOrchestratorConfig(in, out)
		if err != nil {
			t.Fatalf("invalid config: %v", err)
		}
		if _, err := newOrchestrator(nullsink.New()).Run(context.Background(), cfg); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		return readImage(t, out)
	}

	a := render(1, "scale1.png")
	b := render(2.5, "scale2.png")
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("output differs between scales")
	}

	lit := 0
	for i := 0; i < len(a.Pix); i += 4 {
		if a.Pix[i] > 128 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("expected visible text")
	}
	// Nothing is drawn below the descender-free run.
	for y := 55; y < 80; y++ {
		for x := 0; x < 160; x++ {
			if c := a.NRGBAAt(x, y); c.R != 0 {
				t.Fatalf("unexpected text pixel at (%d,%d): %v", x, y, c)
			}
		}
	}
}

func TestJPEGInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "photo.jpg")
	out := filepath.Join(dir, "result.png")
	writeSolid(t, in, 64, 48, color.NRGBA{R: 30, G: 120, B: 200, A: 255})

	cfg, err := config.NewBuilder().WithText("").BuildOrchestratorConfig(in, out)
	if err != nil {
		t.Fatalf("invalid config: %v", err)
	}
	result, err := newOrchestrator(nullsink.New()).Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Container != "jpeg" {
		t.Errorf("expected jpeg container, got %s", result.Container)
	}
	if got := readImage(t, out); got.Bounds() != image.Rect(0, 0, 64, 48) {
		t.Errorf("expected 64x48 output, got %v", got.Bounds())
	}
}

func TestDecodeFailure(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "broken.png")
	out := filepath.Join(dir, "result.png")
	if err := os.WriteFile(in, []byte("definitely not an image"), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	cfg, _ := config.Defaults().ToOrchestratorConfig(in, out)
	_, err := newOrchestrator(nullsink.New()).Run(context.Background(), cfg)
	if !errors.Is(err, raster.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("no output should be written")
	}
}

func TestMissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg, _ := config.Defaults().ToOrchestratorConfig(filepath.Join(dir, "nope.png"), filepath.Join(dir, "out.png"))

	if _, err := newOrchestrator(nullsink.New()).Run(context.Background(), cfg); !errors.Is(err, raster.ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

func TestUnsupportedOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "result.xyz")
	writeSolid(t, in, 10, 10, color.NRGBA{G: 255, A: 255})

	cfg, _ := config.Defaults().ToOrchestratorConfig(in, out)
	_, err := newOrchestrator(nullsink.New()).Run(context.Background(), cfg)
	if !errors.Is(err, raster.ErrEncode) {
		t.Fatalf("expected ErrEncode, got %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only the input file, found %d entries", len(entries))
	}
}

func TestDebugOutput(t *testing.T) {
	dir := t.TempDir()
	debugDir := filepath.Join(dir, "debug")
	in := filepath.Join(dir, "in.png")
	writeSolid(t, in, 120, 60, color.NRGBA{R: 200, G: 200, B: 200, A: 255})

	fs := osfilesystem.New()
	if err := fs.MkdirAll(debugDir); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	sink := filesink.New(debugDir, fs, imageencoder.New())

	cfg, err := config.NewBuilder().WithBaseline(5, 40).BuildOrchestratorConfig(in, filepath.Join(dir, "out.png"))
	if err != nil {
		t.Fatalf("invalid config: %v", err)
	}
	if _, err := newOrchestrator(sink).Run(context.Background(), cfg); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, name := range []string{filesink.SourceFile, filesink.TextMaskFile} {
		if _, err := os.Stat(filepath.Join(debugDir, name)); err != nil {
			t.Errorf("expected debug file %s: %v", name, err)
		}
	}
}
