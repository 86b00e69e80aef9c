package config

import (
	"io"

	"github.com/atseng3/w2d2/internal/render"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithGlyphs sets the glyph style.
func (b *ConfigBuilder) WithGlyphs(style render.GlyphStyle) *ConfigBuilder {
	b.cfg.Display.Glyphs = style
	return b
}

// WithColour enables ANSI colour.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Display.Colour = enabled
	return b
}

// WithBoard controls whether the board is drawn before each prompt.
func (b *ConfigBuilder) WithBoard(show bool) *ConfigBuilder {
	b.cfg.Display.ShowBoard = show
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithInput sets the input reader.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.InputFile = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
