// Package config provides configuration for the chess program.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/atseng3/w2d2/internal/engine"
	"github.com/atseng3/w2d2/internal/errors"
)

// Verbosity levels for LogFile output.
const (
	Silent     = 0 // nothing
	ResultOnly = 1 // the game result
	Commentary = 2 // every accepted and rejected move
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// Board drawing
	Display DisplayConfig

	// StartFEN replaces the standard starting position when non-empty.
	// Only the placement and side-to-move fields are used.
	StartFEN string

	// Streams
	InputFile  io.Reader
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  ResultOnly,
		Display:    *NewDisplayConfig(),
		InputFile:  os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range %d..%d: %w", c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig)
	}
	if err := c.Display.Validate(); err != nil {
		return err
	}
	if c.StartFEN != "" {
		if _, _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	if c.InputFile == nil || c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("missing stream: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line to LogFile if Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
