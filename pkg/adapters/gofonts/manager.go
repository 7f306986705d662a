// Package gofonts provides a font manager whose default typeface is the
// Go Regular font bundled with golang.org/x/image.
package gofonts

import (
	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/rastercomp/pkg/ports"
)

// Family is the family name of the bundled default typeface.
const Family = "Go"

// Manager implements ports.FontManager.
type Manager struct{}

// New creates a new Manager.
func New() *Manager {
	return &Manager{}
}

// DefaultTypeface returns Go Regular.
func (m *Manager) DefaultTypeface() (ports.FontData, error) {
	return ports.FontData{Family: Family, Data: goregular.TTF}, nil
}

var _ ports.FontManager = (*Manager)(nil)
