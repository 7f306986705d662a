// Package composite implements the drawing stage: it paints the source image
// and the text annotation onto a fresh surface.
package composite

import (
	"context"
	"image"
	"image/color"

	"github.com/user/rastercomp/pkg/pipeline"
	"github.com/user/rastercomp/pkg/ports"
	"github.com/user/rastercomp/pkg/raster"
)

// Stage draws one frame.
type Stage struct {
	sink   ports.DebugSink
	logger ports.Logger
}

// NewStage creates a new composite stage.
func NewStage(sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		sink:   sink,
		logger: logger.WithComponent("composite"),
	}
}

// Execute allocates a surface the size of the source, clears it, draws the
// source inside the image transform scope and then draws the text with no
// transform applied. On error the surface is released and not returned.
func (s *Stage) Execute(ctx context.Context, input pipeline.CompositeInput) (pipeline.CompositeResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.CompositeResult{}, err
	}
	if input.Source == nil {
		return pipeline.CompositeResult{}, raster.Errorf(raster.ErrDecode, "composite", "no source image")
	}

	surface, err := raster.NewSurface(input.Source.Width(), input.Source.Height())
	if err != nil {
		return pipeline.CompositeResult{}, err
	}
	if err := s.draw(surface, input); err != nil {
		surface.Release()
		return pipeline.CompositeResult{}, err
	}

	s.logger.Debug("Composited %dx%d surface", surface.Width(), surface.Height())
	return pipeline.CompositeResult{Surface: surface}, nil
}

func (s *Stage) draw(surface *raster.Surface, input pipeline.CompositeInput) error {
	bg := input.Background
	if bg == nil {
		bg = color.Transparent
	}
	if err := surface.Clear(bg); err != nil {
		return err
	}

	m := input.ImageTransform
	s.logger.Debug("Image transform scale=(%g,%g) translate=(%g,%g)", m.ScaleX, m.ScaleY, m.TranslateX, m.TranslateY)
	err := surface.WithTransform(m, func() error {
		return surface.DrawImage(input.Source, 0, 0)
	})
	if err != nil {
		return err
	}

	text := input.Text
	if text.Content == "" {
		return nil
	}
	if err := surface.DrawText(text.Content, text.X, text.Y, text.Font, text.Paint); err != nil {
		return err
	}
	s.logger.Debug("Drew %d characters of text at (%g,%g)", len([]rune(text.Content)), text.X, text.Y)

	if s.sink.Enabled() {
		s.saveTextMask(surface, text)
	}
	return nil
}

func (s *Stage) saveTextMask(surface *raster.Surface, text pipeline.TextOverlay) {
	clip := image.Rect(0, 0, surface.Width(), surface.Height())
	mask, err := text.Font.RasterizeText(text.Content, text.X, text.Y, clip, text.Paint.AntiAlias)
	if err != nil || mask == nil {
		return
	}
	if err := s.sink.SaveTextMask(mask); err != nil {
		s.logger.Warn("Failed to save debug output: %s", err)
	}
}
