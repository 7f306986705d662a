package mocks

import (
	"errors"

	"github.com/user/rastercomp/pkg/ports"
)

// ErrNoTypeface is returned by an empty FontManager.
var ErrNoTypeface = errors.New("mocks: no typeface")

// FontManager is a mock implementation of ports.FontManager.
type FontManager struct {
	DefaultTypefaceFunc func() (ports.FontData, error)

	Calls int
}

func (m *FontManager) DefaultTypeface() (ports.FontData, error) {
	m.Calls++
	if m.DefaultTypefaceFunc != nil {
		return m.DefaultTypefaceFunc()
	}
	return ports.FontData{}, ErrNoTypeface
}

var _ ports.FontManager = (*FontManager)(nil)
