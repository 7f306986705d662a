package config

import "github.com/user/rastercomp/pkg/orchestrator"

// Builder provides a fluent interface for building a Config.
type Builder struct {
	config Config
}

// NewBuilder creates a new Builder starting from Defaults.
func NewBuilder() *Builder {
	return &Builder{config: Defaults()}
}

// FromConfig creates a new Builder starting from cfg.
func FromConfig(cfg Config) *Builder {
	return &Builder{config: cfg}
}

// WithScale sets the image scale factor.
func (b *Builder) WithScale(scale float64) *Builder {
	b.config.Scale = scale
	return b
}

// WithBackgroundColor sets the clear color (hex).
func (b *Builder) WithBackgroundColor(hex string) *Builder {
	b.config.BackgroundColor = hex
	return b
}

// WithText sets the annotation content.
func (b *Builder) WithText(content string) *Builder {
	b.config.Text.Content = content
	return b
}

// WithBaseline sets the text baseline origin in device pixels.
func (b *Builder) WithBaseline(x, y float64) *Builder {
	b.config.Text.X = x
	b.config.Text.Y = y
	return b
}

// WithFontSize sets the em size in pixels.
func (b *Builder) WithFontSize(size float64) *Builder {
	b.config.Text.Size = size
	return b
}

// WithTextColor sets the text color (hex).
func (b *Builder) WithTextColor(hex string) *Builder {
	b.config.Text.Color = hex
	return b
}

// WithAntiAlias toggles smoothed glyph edges.
func (b *Builder) WithAntiAlias(enabled bool) *Builder {
	b.config.Text.AntiAlias = enabled
	return b
}

// WithSubpixel toggles fractional glyph positioning.
func (b *Builder) WithSubpixel(enabled bool) *Builder {
	b.config.Text.Subpixel = enabled
	return b
}

// Build returns the constructed Config.
func (b *Builder) Build() Config {
	return b.config
}

// BuildOrchestratorConfig validates the configuration and converts it for a
// run from input to output.
func (b *Builder) BuildOrchestratorConfig(input, output string) (orchestrator.Config, error) {
	return b.config.ToOrchestratorConfig(input, output)
}
