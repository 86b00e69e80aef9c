package config

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	chesserrors "github.com/atseng3/w2d2/internal/errors"
	"github.com/atseng3/w2d2/internal/render"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != ResultOnly {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, ResultOnly)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if cfg.InputFile != os.Stdin {
		t.Error("InputFile should default to stdin")
	}
	if cfg.OutputFile != os.Stdout {
		t.Error("OutputFile should default to stdout")
	}
	if cfg.LogFile != os.Stderr {
		t.Error("LogFile should default to stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestDisplayConfig_Defaults verifies DisplayConfig has sensible defaults
func TestDisplayConfig_Defaults(t *testing.T) {
	cfg := NewDisplayConfig()

	if cfg.Glyphs != render.UnicodeGlyphs {
		t.Errorf("Glyphs = %v, want %v", cfg.Glyphs, render.UnicodeGlyphs)
	}
	if cfg.Colour {
		t.Error("Colour should be false by default")
	}
	if !cfg.ShowBoard {
		t.Error("ShowBoard should be true by default")
	}

	opts := cfg.Options()
	if opts.Glyphs != render.UnicodeGlyphs || opts.Colour {
		t.Errorf("Options() = %+v", opts)
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults",
			modify:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "silent",
			modify:  func(c *Config) { c.Verbosity = Silent },
			wantErr: false,
		},
		{
			name:    "negative verbosity",
			modify:  func(c *Config) { c.Verbosity = -1 },
			wantErr: true,
		},
		{
			name:    "verbosity too high",
			modify:  func(c *Config) { c.Verbosity = Commentary + 1 },
			wantErr: true,
		},
		{
			name:    "valid start position",
			modify:  func(c *Config) { c.StartFEN = "4k3/8/8/8/8/8/8/4K3 b - - 0 1" },
			wantErr: false,
		},
		{
			name:    "bad start position",
			modify:  func(c *Config) { c.StartFEN = "not a fen" },
			wantErr: true,
		},
		{
			name:    "unknown glyph style",
			modify:  func(c *Config) { c.Display.Glyphs = render.GlyphStyle(7) },
			wantErr: true,
		},
		{
			name:    "missing output",
			modify:  func(c *Config) { c.OutputFile = nil },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfig_Logf verifies log lines are gated by verbosity
func TestConfig_Logf(t *testing.T) {
	var log bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&log).WithVerbosity(ResultOnly).Build()

	cfg.Logf(ResultOnly, "result %s", "1-0")
	cfg.Logf(Commentary, "move %s", "e2-e4")

	got := log.String()
	if got != "result 1-0\n" {
		t.Errorf("log = %q, want %q", got, "result 1-0\n")
	}

	cfg.LogFile = nil
	cfg.Logf(Silent, "dropped")
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	in := strings.NewReader("e2 e4\n")
	var out, log bytes.Buffer

	cfg := NewConfigBuilder().
		WithGlyphs(render.ASCIIGlyphs).
		WithColour(true).
		WithBoard(false).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithInput(in).
		WithOutput(&out).
		WithLog(&log).
		WithVerbosity(Commentary).
		Build()

	if cfg.Display.Glyphs != render.ASCIIGlyphs {
		t.Errorf("Glyphs = %v, want ASCII", cfg.Display.Glyphs)
	}
	if !cfg.Display.Colour {
		t.Error("Colour should be true")
	}
	if cfg.Display.ShowBoard {
		t.Error("ShowBoard should be false")
	}
	if cfg.StartFEN == "" {
		t.Error("StartFEN not set")
	}
	if cfg.InputFile != in || cfg.OutputFile != &out || cfg.LogFile != &log {
		t.Error("streams not set")
	}
	if cfg.Verbosity != Commentary {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Commentary)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
