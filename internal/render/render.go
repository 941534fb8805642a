// Package render draws a board as text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lgbarn/hotseat-chess/internal/chess"
)

// Piece glyph sets, in the order white K Q R B N P, then black k q r b n p.
const (
	UnicodePieces = "♔♕♖♗♘♙♚♛♜♝♞♟"
	ASCIIPieces   = "KQRBNPkqrbnp"
)

// glyphOrder maps a kind to its offset within a colour's half of a glyph set.
var glyphOrder = [chess.NumKinds]int{
	chess.King:   0,
	chess.Queen:  1,
	chess.Rook:   2,
	chess.Bishop: 3,
	chess.Knight: 4,
	chess.Pawn:   5,
}

// ANSI background colours for the squares.
const (
	lightSquareColour = "\x1b[48;5;180m"
	darkSquareColour  = "\x1b[48;5;137m"
	resetColour       = "\x1b[0m"
)

// Options controls how a board is drawn.
type Options struct {
	// Pieces holds twelve glyphs, see UnicodePieces.
	Pieces string

	// EmptySquare is drawn on vacant squares.
	EmptySquare string

	// CellWidth is the number of terminal columns per square.
	CellWidth int

	// WideGlyphs treats ambiguous-width characters, including the
	// unicode chess symbols, as two columns wide.
	WideGlyphs bool

	// Flip draws the board from Black's side.
	Flip bool

	// Colour shades the squares with ANSI escapes.
	Colour bool

	// Coordinates labels ranks and files.
	Coordinates bool
}

// DefaultOptions draws unicode pieces with coordinates and no colour.
func DefaultOptions() Options {
	return Options{
		Pieces:      UnicodePieces,
		EmptySquare: ".",
		CellWidth:   2,
		Coordinates: true,
	}
}

// ASCIIOptions draws letters only, for terminals without the chess symbols.
func ASCIIOptions() Options {
	opts := DefaultOptions()
	opts.Pieces = ASCIIPieces
	return opts
}

// Glyph returns the text for one square's occupant. An empty square, or a
// glyph set that is too short, yields EmptySquare.
func (o Options) Glyph(p chess.Piece) string {
	if p.IsEmpty() {
		return o.EmptySquare
	}
	glyphs := []rune(o.Pieces)
	i := glyphOrder[p.Kind]
	if p.Colour == chess.Black {
		i += len(glyphOrder) - 1
	}
	if i >= len(glyphs) {
		return o.EmptySquare
	}
	return string(glyphs[i])
}

// Board writes the grid, rank 8 at the top unless opts.Flip is set.
func Board(w io.Writer, squares [chess.BoardSize][chess.BoardSize]chess.Piece, opts Options) error {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = opts.WideGlyphs

	width := opts.CellWidth
	if width < 1 {
		width = 1
	}

	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		rank := row
		if opts.Flip {
			rank = chess.BoardSize - 1 - row
		}

		var line strings.Builder
		if opts.Coordinates {
			fmt.Fprintf(&line, "%d ", chess.BoardSize-rank)
		}
		for col := 0; col < chess.BoardSize; col++ {
			file := col
			if opts.Flip {
				file = chess.BoardSize - 1 - col
			}
			cell := cond.FillRight(opts.Glyph(squares[rank][file]), width)
			if opts.Colour {
				shade := darkSquareColour
				if (rank+file)%2 == 0 {
					shade = lightSquareColour
				}
				cell = shade + cell + resetColour
			}
			line.WriteString(cell)
		}

		text := line.String()
		if !opts.Colour {
			text = strings.TrimRight(text, " ")
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}

	if opts.Coordinates {
		sb.WriteString(fileLabels(cond, width, opts.Flip))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// fileLabels returns the a..h footer aligned with the cells.
func fileLabels(cond *runewidth.Condition, width int, flip bool) string {
	var line strings.Builder
	line.WriteString("  ")
	for col := 0; col < chess.BoardSize; col++ {
		file := col
		if flip {
			file = chess.BoardSize - 1 - col
		}
		line.WriteString(cond.FillRight(string(rune('a'+file)), width))
	}
	return strings.TrimRight(line.String(), " ") + "\n"
}

// String is Board into a string.
func String(squares [chess.BoardSize][chess.BoardSize]chess.Piece, opts Options) string {
	var sb strings.Builder
	_ = Board(&sb, squares, opts)
	return sb.String()
}

// ValidPieces reports whether s is a usable glyph set: twelve printable
// characters, none of them a space.
func ValidPieces(s string) bool {
	glyphs := []rune(s)
	if len(glyphs) != 2*(len(glyphOrder)-1) {
		return false
	}
	for _, r := range glyphs {
		if r <= ' ' || (r >= 127 && r <= 159) {
			return false
		}
	}
	return true
}
