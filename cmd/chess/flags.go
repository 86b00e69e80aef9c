// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/atseng3/w2d2/internal/config"
	"github.com/atseng3/w2d2/internal/render"
)

var (
	// Display options
	asciiGlyphs = flag.Bool("ascii", false, "Draw pieces as letters instead of chess symbols")
	useColour   = flag.Bool("colour", false, "Colour pieces with ANSI escapes")
	noBoard     = flag.Bool("noboard", false, "Don't redraw the board before each prompt")

	// Game options
	startFEN = flag.String("fen", "", "Start from this FEN position instead of the standard one")

	// Logging
	verbosity = flag.Int("v", config.ResultOnly, "Log verbosity: 0 silent, 1 result, 2 every move")
	quiet     = flag.Bool("q", false, "Quiet mode (same as -v 0)")
	logFile   = flag.String("l", "", "Write the log to this file")
	appendLog = flag.String("L", "", "Append the log to this file")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyDisplayFlags(cfg)

	cfg.StartFEN = *startFEN
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
}

// applyDisplayFlags configures board drawing.
func applyDisplayFlags(cfg *config.Config) {
	if *asciiGlyphs {
		cfg.Display.Glyphs = render.ASCIIGlyphs
	}
	cfg.Display.Colour = *useColour
	cfg.Display.ShowBoard = !*noBoard
}
