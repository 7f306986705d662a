package mocks

import (
	"image"
	"sync"

	"github.com/user/rastercomp/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Source   image.Image
	TextMask *image.Alpha
	Config   []byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{enabled: enabled}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveSource(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Source = img
	return nil
}

func (m *DebugSink) SaveTextMask(mask *image.Alpha) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TextMask = mask
	return nil
}

func (m *DebugSink) SaveConfig(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Config = data
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
