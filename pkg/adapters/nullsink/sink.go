// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/rastercomp/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveSource does nothing.
func (s *Sink) SaveSource(img image.Image) error {
	return nil
}

// SaveTextMask does nothing.
func (s *Sink) SaveTextMask(mask *image.Alpha) error {
	return nil
}

// SaveConfig does nothing.
func (s *Sink) SaveConfig(data []byte) error {
	return nil
}

var _ ports.DebugSink = (*Sink)(nil)
