package config

import (
	"github.com/lgbarn/hotseat-chess/internal/errors"
	"github.com/lgbarn/hotseat-chess/internal/render"
)

// RenderConfig holds settings for drawing the board.
type RenderConfig struct {
	// Pieces is the glyph set: white K Q R B N P then black k q r b n p
	Pieces string `toml:"pieces"`

	// EmptySquare is drawn on vacant squares
	EmptySquare string `toml:"empty_square"`

	// CellWidth is the number of columns per square
	CellWidth int `toml:"cell_width"`

	// WideGlyphs counts ambiguous-width characters as two columns
	WideGlyphs bool `toml:"wide_glyphs"`

	// Colour shades squares with ANSI colours
	Colour bool `toml:"colour"`

	// Coordinates labels ranks and files
	Coordinates bool `toml:"coordinates"`

	// FlipForBlack draws the board from Black's side on Black's turn
	FlipForBlack bool `toml:"flip_for_black"`
}

// NewRenderConfig creates a RenderConfig with default values.
func NewRenderConfig() *RenderConfig {
	opts := render.DefaultOptions()
	return &RenderConfig{
		Pieces:      opts.Pieces,
		EmptySquare: opts.EmptySquare,
		CellWidth:   opts.CellWidth,
		Coordinates: opts.Coordinates,
	}
}

// Validate checks the glyphs and sizes.
func (c *RenderConfig) Validate() error {
	if !render.ValidPieces(c.Pieces) {
		return errors.Wrapf(errors.ErrInvalidConfig,
			"render.pieces %q: need 12 printable characters", c.Pieces)
	}
	if len([]rune(c.EmptySquare)) != 1 {
		return errors.Wrapf(errors.ErrInvalidConfig,
			"render.empty_square %q: need exactly one character", c.EmptySquare)
	}
	if c.CellWidth < 1 || c.CellWidth > 4 {
		return errors.Wrapf(errors.ErrInvalidConfig,
			"render.cell_width %d: must be 1 to 4", c.CellWidth)
	}
	return nil
}

// Options converts the settings to renderer options for the given turn.
func (c *RenderConfig) Options(blackToMove bool) render.Options {
	return render.Options{
		Pieces:      c.Pieces,
		EmptySquare: c.EmptySquare,
		CellWidth:   c.CellWidth,
		WideGlyphs:  c.WideGlyphs,
		Flip:        c.FlipForBlack && blackToMove,
		Colour:      c.Colour,
		Coordinates: c.Coordinates,
	}
}
