// Package decode implements the pixel source stage: it loads an image file
// and normalizes it to straight-alpha RGBA8.
package decode

import (
	"context"

	"github.com/user/rastercomp/pkg/pipeline"
	"github.com/user/rastercomp/pkg/ports"
	"github.com/user/rastercomp/pkg/raster"
)

// Stage reads and decodes the input image.
type Stage struct {
	fs      ports.FileSystem
	decoder ports.ImageDecoder
	sink    ports.DebugSink
	logger  ports.Logger
}

// NewStage creates a new decode stage.
func NewStage(fs ports.FileSystem, decoder ports.ImageDecoder, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		fs:      fs,
		decoder: decoder,
		sink:    sink,
		logger:  logger.WithComponent("decode"),
	}
}

// Execute reads the whole file in one go and converts it to a RasterImage.
// Every failure is a raster.ErrDecode.
func (s *Stage) Execute(ctx context.Context, input pipeline.DecodeInput) (pipeline.DecodeResult, error) {
	const op = "decode"
	if err := ctx.Err(); err != nil {
		return pipeline.DecodeResult{}, err
	}
	if input.Path == "" {
		return pipeline.DecodeResult{}, raster.Errorf(raster.ErrDecode, op, "no input path")
	}

	data, err := s.fs.ReadFile(input.Path)
	if err != nil {
		return pipeline.DecodeResult{}, raster.NewError(raster.ErrDecode, op, err)
	}
	s.logger.Debug("Read %d bytes from %s", len(data), input.Path)

	img, container, err := s.decoder.Decode(data)
	if err != nil {
		return pipeline.DecodeResult{}, raster.NewError(raster.ErrDecode, op, err)
	}

	ri, err := raster.FromImage(img)
	if err != nil {
		return pipeline.DecodeResult{}, err
	}
	s.logger.Debug("Decoded %dx%d %s image", ri.Width(), ri.Height(), container)

	if s.sink.Enabled() {
		if err := s.sink.SaveSource(ri.Image()); err != nil {
			s.logger.Warn("Failed to save debug output: %s", err)
		}
	}

	return pipeline.DecodeResult{Image: ri, Container: container}, nil
}
