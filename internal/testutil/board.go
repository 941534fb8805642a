package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/hotseat-chess/internal/chess"
)

// pieceLetters maps diagram letters to kinds. Upper case is White.
var pieceLetters = map[byte]chess.Kind{
	'P': chess.Pawn,
	'N': chess.Knight,
	'B': chess.Bishop,
	'R': chess.Rook,
	'Q': chess.Queen,
	'K': chess.King,
}

// ParseDiagram builds a board from eight rows, rank 8 first. Each row holds
// eight cells; "PNBRQK" are White, lower case Black and '.' empty. Spaces
// are ignored.
//
// Pawns off their starting rank, and kings and rooks off their home
// squares, are marked as moved. A castling right is granted when the king
// and the matching rook both stand on their home squares.
func ParseDiagram(rows ...string) (*chess.Board, error) {
	if len(rows) != chess.BoardSize {
		return nil, fmt.Errorf("diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}
	board := chess.NewEmptyBoard()
	for rank, row := range rows {
		cells := strings.ReplaceAll(row, " ", "")
		if len(cells) != chess.BoardSize {
			return nil, fmt.Errorf("row %d %q has %d cells, want %d", rank+1, row, len(cells), chess.BoardSize)
		}
		for file := 0; file < chess.BoardSize; file++ {
			c := cells[file]
			if c == '.' {
				continue
			}
			colour := chess.White
			upper := c
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
				upper = c - 'a' + 'A'
			}
			kind, ok := pieceLetters[upper]
			if !ok {
				return nil, fmt.Errorf("row %d: unknown piece %q", rank+1, c)
			}
			loc := chess.Loc(rank, file)
			board.Set(loc, chess.Piece{Kind: kind, Colour: colour, Moved: !onHomeSquare(kind, colour, loc)})
		}
	}
	board.Castling = inferCastling(board)
	return board, nil
}

// MustBoard is ParseDiagram that fails the test on a malformed diagram.
func MustBoard(tb testing.TB, rows ...string) *chess.Board {
	tb.Helper()
	board, err := ParseDiagram(rows...)
	if err != nil {
		tb.Fatalf("bad diagram: %v", err)
	}
	return board
}

// onHomeSquare reports whether a piece of this kind and colour on loc
// could still be unmoved.
func onHomeSquare(kind chess.Kind, colour chess.Colour, loc chess.Location) bool {
	home := colour.HomeRank()
	switch kind {
	case chess.Pawn:
		return loc.Rank == home+colour.Forward()
	case chess.King:
		return loc == chess.Loc(home, chess.KingFile)
	case chess.Rook:
		return loc.Rank == home && (loc.File == chess.KingsideRookFile || loc.File == chess.QueensideRookFile)
	default:
		return true
	}
}

func inferCastling(board *chess.Board) chess.CastlingRights {
	rights := chess.NoCastling
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := colour.HomeRank()
		if !board.At(chess.Loc(home, chess.KingFile)).Is(colour, chess.King) {
			continue
		}
		if board.At(chess.Loc(home, chess.KingsideRookFile)).Is(colour, chess.Rook) {
			rights |= chess.CastleRight(colour, true)
		}
		if board.At(chess.Loc(home, chess.QueensideRookFile)).Is(colour, chess.Rook) {
			rights |= chess.CastleRight(colour, false)
		}
	}
	return rights
}
