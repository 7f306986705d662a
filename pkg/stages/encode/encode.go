// Package encode implements the output stage: it encodes the snapshot in the
// format implied by the output path and writes the file.
package encode

import (
	"context"

	"github.com/user/rastercomp/pkg/pipeline"
	"github.com/user/rastercomp/pkg/ports"
	"github.com/user/rastercomp/pkg/raster"
)

// Stage encodes and writes the output image.
type Stage struct {
	encoder ports.ImageEncoder
	fs      ports.FileSystem
	logger  ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(encoder ports.ImageEncoder, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		encoder: encoder,
		fs:      fs,
		logger:  logger.WithComponent("encode"),
	}
}

// Execute encodes the snapshot and writes it to OutputPath. Every failure is
// a raster.ErrEncode; the file system write is atomic, so a failed run does
// not leave a partial file behind.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	const op = "encode"
	if err := ctx.Err(); err != nil {
		return pipeline.EncodeResult{}, err
	}
	if input.OutputPath == "" {
		return pipeline.EncodeResult{}, raster.Errorf(raster.ErrEncode, op, "no output path")
	}

	snap := input.Snapshot
	if snap.Format != raster.RGBA8Premultiplied {
		return pipeline.EncodeResult{}, raster.Errorf(raster.ErrEncode, op, "unsupported pixel format %s", snap.Format)
	}
	img, err := raster.WrapRGBA(snap.Width, snap.Height, snap.Pix)
	if err != nil {
		return pipeline.EncodeResult{}, raster.NewError(raster.ErrEncode, op, err)
	}

	data, err := s.encoder.Encode(img, input.OutputPath)
	if err != nil {
		return pipeline.EncodeResult{}, raster.NewError(raster.ErrEncode, op, err)
	}
	if err := s.fs.WriteFile(input.OutputPath, data); err != nil {
		return pipeline.EncodeResult{}, raster.NewError(raster.ErrEncode, op, err)
	}

	s.logger.Debug("Wrote %d bytes to %s", len(data), input.OutputPath)
	return pipeline.EncodeResult{Path: input.OutputPath, FileSize: int64(len(data))}, nil
}
