// Package summarizer provides summary generation for render results.
package summarizer

import "time"

// Summary contains all data collected during a render.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Source image
	Source SourceInfo

	// Drawing parameters
	Render RenderInfo

	// Output image
	Output OutputInfo
}

// SourceInfo describes the decoded input.
type SourceInfo struct {
	Path      string
	Container string
	Width     int
	Height    int
}

// RenderInfo describes how the surface was drawn and how long it took.
type RenderInfo struct {
	Scale      float64
	FontFamily string
	FontSize   float64
	DurationMs float64
}

// OutputInfo describes the written file.
type OutputInfo struct {
	Path     string
	FileSize int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSource sets source image information.
func (b *Builder) WithSource(path, container string, width, height int) *Builder {
	b.summary.Source = SourceInfo{
		Path:      path,
		Container: container,
		Width:     width,
		Height:    height,
	}
	return b
}

// WithRender sets drawing parameters and latency.
func (b *Builder) WithRender(render RenderInfo) *Builder {
	b.summary.Render = render
	return b
}

// WithOutput sets output file information.
func (b *Builder) WithOutput(path string, fileSize int64) *Builder {
	b.summary.Output = OutputInfo{
		Path:     path,
		FileSize: fileSize,
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
