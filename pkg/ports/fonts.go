package ports

// FontData is the raw font file of a typeface.
type FontData struct {
	Family string
	Data   []byte
}

// FontManager is the process-wide source of typefaces. It is constructed once
// at startup and passed to whatever needs to resolve fonts.
type FontManager interface {
	// DefaultTypeface returns the default system typeface, or an error when
	// none is available.
	DefaultTypeface() (FontData, error)
}
