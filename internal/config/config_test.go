package config

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"

	"github.com/lgbarn/hotseat-chess/internal/errors"
	"github.com/lgbarn/hotseat-chess/internal/render"
)

// TestNewConfig_Defaults verifies every section has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Render.Pieces != render.UnicodePieces {
		t.Errorf("Render.Pieces = %q, want unicode set", cfg.Render.Pieces)
	}
	if cfg.Render.CellWidth != 2 {
		t.Errorf("Render.CellWidth = %d, want 2", cfg.Render.CellWidth)
	}
	if !cfg.Render.Coordinates {
		t.Error("Render.Coordinates should be true by default")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Game.AutoQueen {
		t.Error("Game.AutoQueen should be false by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
[render]
pieces = "KQRBNPkqrbnp"
colour = true
cell_width = 3

[log]
level = "debug"
format = "json"

[game]
auto_queen = true
opening = "e2e4 e7e5"
`)
	cfg, err := Parse(data, "test.toml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Render.Pieces != "KQRBNPkqrbnp" || !cfg.Render.Colour || cfg.Render.CellWidth != 3 {
		t.Errorf("Render = %+v", *cfg.Render)
	}
	// Keys not in the file keep their defaults
	if cfg.Render.EmptySquare != "." || !cfg.Render.Coordinates {
		t.Errorf("Render defaults lost: %+v", *cfg.Render)
	}
	if level, _ := cfg.Log.SlogLevel(); level != slog.LevelDebug {
		t.Errorf("Log level = %v, want debug", level)
	}
	if !cfg.Game.AutoQueen || cfg.Game.Opening != "e2e4 e7e5" {
		t.Errorf("Game = %+v", *cfg.Game)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{"syntax", "[render\npieces = 1", "test.toml"},
		{"unknown key", "[render]\nshade = true", "render.shade"},
		{"unknown section", "[network]\nport = 1", "network"},
		{"short pieces", "[render]\npieces = \"KQ\"", "render.pieces"},
		{"empty square", "[render]\nempty_square = \"\"", "render.empty_square"},
		{"cell width", "[render]\ncell_width = 9", "render.cell_width"},
		{"log level", "[log]\nlevel = \"loud\"", "log.level"},
		{"log format", "[log]\nformat = \"xml\"", "log.format"},
		{"opening", "[game]\nopening = \"e2e4 e7\"", "game.opening"},
		{"wrong type", "[game]\nauto_queen = \"yes\"", "test.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "test.toml")
			if !stderrors.Is(err, errors.ErrInvalidConfig) {
				t.Fatalf("Parse() error = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[game]\nauto_queen = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Game.AutoQueen {
		t.Error("auto_queen not loaded")
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := NewConfigBuilder().
		WithColour(true).
		WithOpening("d2d4").
		WithLogLevel("info").
		Build()

	var buf bytes.Buffer
	if err := cfg.Write(&buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	back, err := Parse(buf.Bytes(), "written")
	if err != nil {
		t.Fatalf("Parse(written) error = %v\n%s", err, buf.String())
	}
	if !back.Render.Colour || back.Game.Opening != "d2d4" || back.Log.Level != "info" {
		t.Errorf("round trip lost values:\n%s", buf.String())
	}
}

func setXDG(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return home
}

func TestFind(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		setXDG(t)
		cfg, path, err := Find()
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if path != "" {
			t.Errorf("path = %q, want empty", path)
		}
		if cfg.Render.Pieces != render.UnicodePieces {
			t.Error("Find() without a file did not return defaults")
		}
	})

	t.Run("saved file", func(t *testing.T) {
		home := setXDG(t)
		saved, err := NewConfigBuilder().WithAutoQueen(true).Build().Save()
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if want := filepath.Join(home, "hotseat-chess", "config.toml"); saved != want {
			t.Errorf("Save() path = %q, want %q", saved, want)
		}

		cfg, path, err := Find()
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if path != saved {
			t.Errorf("Find() path = %q, want %q", path, saved)
		}
		if !cfg.Game.AutoQueen {
			t.Error("Find() did not load the saved file")
		}
	})

	t.Run("bad file", func(t *testing.T) {
		home := setXDG(t)
		dir := filepath.Join(home, "hotseat-chess")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[log]\nlevel = 3"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, _, err := Find(); !stderrors.Is(err, errors.ErrInvalidConfig) {
			t.Errorf("Find() error = %v, want ErrInvalidConfig", err)
		}
	})
}

func TestRenderConfig_Options(t *testing.T) {
	cfg := NewConfigBuilder().WithFlipForBlack(true).WithPieces(render.ASCIIPieces).Build()

	white := cfg.Render.Options(false)
	black := cfg.Render.Options(true)
	if white.Flip || !black.Flip {
		t.Errorf("Flip = %v for White, %v for Black", white.Flip, black.Flip)
	}
	if white.Pieces != render.ASCIIPieces {
		t.Errorf("Pieces = %q", white.Pieces)
	}

	cfg.Render.FlipForBlack = false
	if cfg.Render.Options(true).Flip {
		t.Error("Flip set with FlipForBlack off")
	}
}

func TestConfigBuilder(t *testing.T) {
	base := NewConfig()
	cfg := From(base).
		WithAutoQueen(true).
		WithLogFile("/tmp/chess.log").
		Build()

	if cfg != base {
		t.Error("From() did not modify the given config")
	}
	if !cfg.Game.AutoQueen || cfg.Log.File != "/tmp/chess.log" {
		t.Errorf("builder values not applied: %+v %+v", *cfg.Game, *cfg.Log)
	}
}
