// hotseat-chess is a two-player chess game for a shared terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/lgbarn/hotseat-chess/internal/config"
	"github.com/lgbarn/hotseat-chess/internal/game"
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
		fmt.Printf("hotseat-chess version %s\n", programVersion)
		os.Exit(0)
	}

	if *initConfig {
		path, err := config.NewConfig().Save()
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %s\n", path)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatal(err)
	}

	terminal := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if err := applyFlags(cfg, flagSet(), terminal); err != nil {
		fatal(err)
	}

	logger, closeLog, err := setupLogger(cfg.Log, os.Stderr)
	if err != nil {
		fatal(err)
	}
	defer closeLog()
	slog.SetDefault(logger)

	in := bufio.NewScanner(os.Stdin)
	out := colorable.NewColorableStdout()

	session, err := newSession(cfg, in, out)
	if err != nil {
		closeLog()
		fatal(err)
	}

	if err := NewLoop(session, in, out, cfg.Render).Run(); err != nil {
		closeLog()
		fatal(err)
	}
}

// loadConfig reads the given file, or searches the XDG config dirs when
// path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg, found, err := config.Find()
	if err != nil {
		return nil, err
	}
	if found != "" {
		slog.Debug("loaded config", "path", found)
	}
	return cfg, nil
}

// setupLogger builds the slog logger described by cfg. Lines go to stderr
// unless a log file is named. The returned func closes any file opened.
func setupLogger(cfg *config.LogConfig, stderr io.Writer) (*slog.Logger, func(), error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	w := stderr
	closeFn := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // G302: user log file
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", cfg.File, err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), closeFn, nil
}

// newSession creates the game with the configured promotion chooser and
// plays any opening moves.
func newSession(cfg *config.Config, in *bufio.Scanner, out io.Writer) (*game.Session, error) {
	var chooser game.PromotionChooser = &promptChooser{in: in, out: out}
	if cfg.Game.AutoQueen {
		chooser = game.AutoQueen{}
	}

	session := game.New(game.WithPromotionChooser(chooser))
	if err := session.PlayAll(cfg.Game.Opening); err != nil {
		return nil, fmt.Errorf("opening: %w", err)
	}
	return session, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "hotseat-chess: %v\n", err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, `hotseat-chess - two-player chess in the terminal

Usage: hotseat-chess [options]

Enter moves as two squares, e.g. e2e4. Castle by moving the king two
squares (e1g1). Type "help" during the game for commands.

Options:
`)
	flag.PrintDefaults()
}
