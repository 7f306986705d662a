// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/rastercomp/pkg/orchestrator"
)

// ErrInvalidColor is returned by ParseColor for malformed hex strings.
var ErrInvalidColor = errors.New("config: invalid color")

// Config represents the full configuration for rastercomp.
type Config struct {
	// Image
	Scale           float64 `yaml:"scale"`
	BackgroundColor string  `yaml:"background_color"`

	// Text
	Text TextConfig `yaml:"text"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Debug
	DebugDir string `yaml:"debug_dir"`
}

// TextConfig represents the annotation drawn over the image.
type TextConfig struct {
	Content   string  `yaml:"content"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Size      float64 `yaml:"size"`
	Color     string  `yaml:"color"`
	AntiAlias bool    `yaml:"anti_alias"`
	Subpixel  bool    `yaml:"subpixel"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Scale:           1.5,
		BackgroundColor: "#000000",

		Text: TextConfig{
			Content:   strings.Repeat("AAAAAAA! ", 5),
			X:         100,
			Y:         300,
			Size:      48,
			Color:     "#0000ff",
			AntiAlias: true,
			Subpixel:  true,
		},

		LogLevel: "info",
	}
}

// Parse decodes YAML over the defaults. Keys missing from data keep their
// default values.
func Parse(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), err
	}
	return Parse(data)
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	var errs []error
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %g", c.Scale))
	}
	if c.Text.Size <= 0 {
		errs = append(errs, fmt.Errorf("text.size must be positive, got %g", c.Text.Size))
	}
	if _, err := ParseColor(c.BackgroundColor); err != nil {
		errs = append(errs, fmt.Errorf("background_color: %w", err))
	}
	if _, err := ParseColor(c.Text.Color); err != nil {
		errs = append(errs, fmt.Errorf("text.color: %w", err))
	}
	return errors.Join(errs...)
}

// ParseColor parses #rgb, #rrggbb or #rrggbbaa (the leading # is optional)
// into a straight-alpha color.
func ParseColor(hex string) (color.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	digits := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		v, ok := hexValue(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		digits[i] = v
	}

	switch len(digits) {
	case 3:
		return color.NRGBA{R: digits[0] * 0x11, G: digits[1] * 0x11, B: digits[2] * 0x11, A: 0xff}, nil
	case 6:
		return color.NRGBA{R: pair(digits, 0), G: pair(digits, 2), B: pair(digits, 4), A: 0xff}, nil
	case 8:
		return color.NRGBA{R: pair(digits, 0), G: pair(digits, 2), B: pair(digits, 4), A: pair(digits, 6)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
}

func pair(d []uint8, i int) uint8 {
	return d[i]<<4 | d[i+1]
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// ToOrchestratorConfig validates c and converts it to orchestrator.Config.
func (c Config) ToOrchestratorConfig(input, output string) (orchestrator.Config, error) {
	if err := c.Validate(); err != nil {
		return orchestrator.Config{}, err
	}
	bg, _ := ParseColor(c.BackgroundColor)
	fg, _ := ParseColor(c.Text.Color)

	return orchestrator.Config{
		InputPath:  input,
		OutputPath: output,

		Scale:      c.Scale,
		Background: bg,

		Text:      c.Text.Content,
		TextX:     c.Text.X,
		TextY:     c.Text.Y,
		FontSize:  c.Text.Size,
		TextColor: fg,
		AntiAlias: c.Text.AntiAlias,
		Subpixel:  c.Text.Subpixel,
	}, nil
}
