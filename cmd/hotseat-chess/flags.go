// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/hotseat-chess/internal/config"
	"github.com/lgbarn/hotseat-chess/internal/render"
)

// Colour modes for -colour.
const (
	colourAuto   = "auto"
	colourAlways = "always"
	colourNever  = "never"
)

var (
	// Configuration
	configPath = flag.String("config", "", "Config file (default: $XDG_CONFIG_HOME/hotseat-chess/config.toml)")
	initConfig = flag.Bool("init-config", false, "Write the default config file and exit")

	// Logging
	logFile = flag.String("log", "", "Write log lines to this file")
	verbose = flag.Bool("v", false, "Log every move (debug level)")

	// Display
	asciiPieces = flag.Bool("ascii", false, "Draw pieces as letters")
	colourMode  = flag.String("colour", colourAuto, "Shade squares: auto, always, never")
	flipBoard   = flag.Bool("flip", false, "Turn the board on Black's moves")

	// Game
	autoQueen = flag.Bool("autoqueen", false, "Always promote to a queen")
	opening   = flag.String("opening", "", "Moves to play before the first prompt, e.g. \"e2e4 e7e5\"")

	// Other
	version = flag.Bool("version", false, "Show version")
	help    = flag.Bool("h", false, "Show help")
)

// flagSet reports which flags were given on the command line, so that
// only those override the config file.
func flagSet() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags layers command-line flags over cfg.
func applyFlags(cfg *config.Config, set map[string]bool, terminal bool) error {
	b := config.From(cfg)

	if set["log"] {
		b.WithLogFile(*logFile)
	}
	if *verbose {
		b.WithLogLevel("debug")
	}
	if *asciiPieces {
		b.WithPieces(render.ASCIIPieces)
	}
	if set["flip"] {
		b.WithFlipForBlack(*flipBoard)
	}
	if set["autoqueen"] {
		b.WithAutoQueen(*autoQueen)
	}
	if set["opening"] {
		b.WithOpening(*opening)
	}

	switch *colourMode {
	case colourAlways:
		b.WithColour(true)
	case colourNever:
		b.WithColour(false)
	case colourAuto:
		if !terminal {
			b.WithColour(false)
		}
	default:
		return fmt.Errorf("-colour %q: must be auto, always or never", *colourMode)
	}

	return b.Build().Validate()
}
