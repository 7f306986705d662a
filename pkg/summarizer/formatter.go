package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// Formatter defines the interface for formatting a Summary.
type Formatter interface {
	// Format converts a Summary to a formatted string.
	Format(summary *Summary) string
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(summary *Summary) string

// Format implements the Formatter interface.
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// LatencyLine returns the one-line report printed after every run.
func LatencyLine(summary *Summary) string {
	return fmt.Sprintf("Rendered in %.2fms", summary.Render.DurationMs)
}

// NewTextFormatter returns a Formatter producing the latency line only.
func NewTextFormatter() Formatter {
	return FormatFunc(LatencyLine)
}

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder

	b.WriteString("# Render Summary\n\n")
	fmt.Fprintf(&b, "Generated at %s\n\n", s.GeneratedAt.Format(time.RFC3339))

	b.WriteString("## Source\n\n")
	fmt.Fprintf(&b, "- Path: %s\n", s.Source.Path)
	fmt.Fprintf(&b, "- Format: %s\n", orDash(s.Source.Container))
	fmt.Fprintf(&b, "- Size: %dx%d\n\n", s.Source.Width, s.Source.Height)

	b.WriteString("## Render\n\n")
	fmt.Fprintf(&b, "- Scale: %g\n", s.Render.Scale)
	fmt.Fprintf(&b, "- Font: %s %gpx\n", orDash(s.Render.FontFamily), s.Render.FontSize)
	fmt.Fprintf(&b, "- Latency: %.2f ms\n\n", s.Render.DurationMs)

	b.WriteString("## Output\n\n")
	fmt.Fprintf(&b, "- Path: %s\n", s.Output.Path)
	fmt.Fprintf(&b, "- File size: %s\n", formatBytes(s.Output.FileSize))

	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatBytes(n int64) string {
	const unit = 1024
	switch {
	case n < unit:
		return fmt.Sprintf("%d B", n)
	case n < unit*unit:
		return fmt.Sprintf("%.2f KB", float64(n)/unit)
	default:
		return fmt.Sprintf("%.2f MB", float64(n)/(unit*unit))
	}
}
