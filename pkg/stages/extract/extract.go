// Package extract implements the snapshot stage: it reads the drawn surface
// back into an encodable buffer and releases the surface.
package extract

import (
	"context"

	"github.com/user/rastercomp/pkg/pipeline"
	"github.com/user/rastercomp/pkg/ports"
	"github.com/user/rastercomp/pkg/raster"
)

// Stage snapshots a surface.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new extract stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{logger: logger.WithComponent("extract")}
}

// Execute copies the surface pixels out. The surface is released whether or
// not the snapshot succeeds.
func (s *Stage) Execute(ctx context.Context, input pipeline.ExtractInput) (pipeline.ExtractResult, error) {
	const op = "extract"
	if input.Surface == nil {
		return pipeline.ExtractResult{}, raster.Errorf(raster.ErrSnapshot, op, "no surface")
	}
	defer input.Surface.Release()

	if err := ctx.Err(); err != nil {
		return pipeline.ExtractResult{}, err
	}

	w, h := input.Surface.Width(), input.Surface.Height()
	pix, err := input.Surface.Snapshot()
	if err != nil {
		return pipeline.ExtractResult{}, err
	}
	if want := w * h * raster.BytesPerPixel; len(pix) != want {
		return pipeline.ExtractResult{}, raster.Errorf(raster.ErrSnapshot, op, "got %d bytes, want %d", len(pix), want)
	}

	s.logger.Debug("Snapshot %dx%d (%d bytes)", w, h, len(pix))
	return pipeline.ExtractResult{
		Pix:    pix,
		Width:  w,
		Height: h,
		Format: raster.RGBA8Premultiplied,
	}, nil
}
