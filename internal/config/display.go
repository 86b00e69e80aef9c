package config

import (
	"fmt"

	"github.com/atseng3/w2d2/internal/errors"
	"github.com/atseng3/w2d2/internal/render"
)

// DisplayConfig holds settings related to drawing the board.
type DisplayConfig struct {
	// Glyphs selects Unicode chess symbols or ASCII letters
	Glyphs render.GlyphStyle

	// Colour wraps piece glyphs in ANSI colour escapes
	Colour bool

	// ShowBoard redraws the board before every prompt
	ShowBoard bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Glyphs:    render.UnicodeGlyphs,
		ShowBoard: true,
	}
}

// Options returns the renderer options for this configuration.
func (d *DisplayConfig) Options() render.Options {
	return render.Options{Glyphs: d.Glyphs, Colour: d.Colour}
}

// Validate checks the display settings.
func (d *DisplayConfig) Validate() error {
	if d.Glyphs != render.UnicodeGlyphs && d.Glyphs != render.ASCIIGlyphs {
		return fmt.Errorf("unknown glyph style %d: %w", int(d.Glyphs), errors.ErrInvalidConfig)
	}
	return nil
}
