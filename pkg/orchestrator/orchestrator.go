// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/ideamans/go-l10n"

	"github.com/user/rastercomp/pkg/pipeline"
	"github.com/user/rastercomp/pkg/ports"
	"github.com/user/rastercomp/pkg/raster"
	"github.com/user/rastercomp/pkg/text"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input/Output
	InputPath  string
	OutputPath string

	// Image
	Scale      float64
	Background color.Color

	// Text
	Text      string
	TextX     float64
	TextY     float64
	FontSize  float64
	TextColor color.Color
	AntiAlias bool
	Subpixel  bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	d := pipeline.DefaultCompositeInput()
	return Config{
		OutputPath: "result.png",
		Scale:      d.ImageTransform.ScaleX,
		Background: d.Background,
		Text:       d.Text.Content,
		TextX:      d.Text.X,
		TextY:      d.Text.Y,
		FontSize:   48,
		TextColor:  d.Text.Paint.Color,
		AntiAlias:  d.Text.Paint.AntiAlias,
		Subpixel:   true,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	decodeStage    pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult]
	compositeStage pipeline.Stage[pipeline.CompositeInput, pipeline.CompositeResult]
	extractStage   pipeline.Stage[pipeline.ExtractInput, pipeline.ExtractResult]
	encodeStage    pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	fonts          ports.FontManager
	logger         ports.Logger
}

// New creates a new Orchestrator.
func New(
	decodeStage pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult],
	compositeStage pipeline.Stage[pipeline.CompositeInput, pipeline.CompositeResult],
	extractStage pipeline.Stage[pipeline.ExtractInput, pipeline.ExtractResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	fonts ports.FontManager,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		decodeStage:    decodeStage,
		compositeStage: compositeStage,
		extractStage:   extractStage,
		encodeStage:    encodeStage,
		fonts:          fonts,
		logger:         logger,
	}
}

// Run executes the complete pipeline. The first failing stage ends the run
// and its error is returned unchanged in kind.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info(l10n.T("Starting pipeline"))

	// 1. Decode source
	o.logger.Info(l10n.F("Decoding %s", config.InputPath))
	decoded, err := o.decodeStage.Execute(ctx, pipeline.DecodeInput{Path: config.InputPath})
	if err != nil {
		o.logger.Error(l10n.F("Failed to decode image: %s", err))
		return RunResult{}, fmt.Errorf("decode stage: %w", err)
	}
	o.logger.Info(l10n.F("Decoded %dx%d %s image", decoded.Image.Width(), decoded.Image.Height(), decoded.Container))

	// 2. Resolve the default font once for the whole run
	font, err := text.ResolveDefaultFont(o.fonts, config.FontSize)
	if err != nil {
		o.logger.Error(l10n.F("Failed to resolve font: %s", err))
		return RunResult{}, fmt.Errorf("resolve font: %w", err)
	}
	font.Configure(config.AntiAlias, config.Subpixel)
	o.logger.Debug(l10n.F("Using font %s at %gpx", font.Typeface().Family(), font.Size()))

	start := time.Now()

	// 3. Composite
	composite, err := o.compositeStage.Execute(ctx, o.buildCompositeInput(config, decoded, font))
	if err != nil {
		o.logger.Error(l10n.F("Failed to composite image: %s", err))
		return RunResult{}, fmt.Errorf("composite stage: %w", err)
	}

	// 4. Snapshot
	snapshot, err := o.extractStage.Execute(ctx, pipeline.ExtractInput{Surface: composite.Surface})
	if err != nil {
		o.logger.Error(l10n.F("Failed to read back surface: %s", err))
		return RunResult{}, fmt.Errorf("extract stage: %w", err)
	}

	// 5. Encode and write
	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{Snapshot: snapshot, OutputPath: config.OutputPath})
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode image: %s", err))
		return RunResult{}, fmt.Errorf("encode stage: %w", err)
	}

	elapsed := time.Since(start)
	o.logger.Info(l10n.T("Pipeline completed successfully"))

	return RunResult{
		InputPath:      config.InputPath,
		OutputPath:     encoded.Path,
		Container:      decoded.Container,
		Width:          snapshot.Width,
		Height:         snapshot.Height,
		Scale:          config.Scale,
		FontFamily:     font.Typeface().Family(),
		FontSize:       font.Size(),
		FileSize:       encoded.FileSize,
		RenderDuration: elapsed,
	}, nil
}

func (o *Orchestrator) buildCompositeInput(config Config, decoded pipeline.DecodeResult, font *text.Font) pipeline.CompositeInput {
	return pipeline.CompositeInput{
		Source:         decoded.Image,
		Background:     config.Background,
		ImageTransform: raster.Scale(config.Scale),
		Text: pipeline.TextOverlay{
			Content: config.Text,
			X:       config.TextX,
			Y:       config.TextY,
			Font:    font,
			Paint:   raster.Paint{Color: config.TextColor, AntiAlias: config.AntiAlias},
		},
	}
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	InputPath  string
	OutputPath string
	Container  string

	// Surface dimensions, equal to the source image
	Width  int
	Height int
	Scale  float64

	FontFamily string
	FontSize   float64

	FileSize int64

	// RenderDuration spans composite, snapshot and encode.
	RenderDuration time.Duration
}

// RenderMs returns the render latency in fractional milliseconds.
func (r RunResult) RenderMs() float64 {
	return float64(r.RenderDuration.Microseconds()) / 1000
}
