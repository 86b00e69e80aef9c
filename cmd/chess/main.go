// chess is a two-player chess game played by typing moves at a prompt.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/atseng3/w2d2/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if _, err := play(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Two players take turns typing moves such as \"e2 e4\".\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands at the prompt:\n")
	fmt.Fprint(os.Stderr, helpText)
}
