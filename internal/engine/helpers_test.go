package engine

import (
	"testing"

	"github.com/lgbarn/hotseat-chess/internal/chess"
)

// play checks and applies moves alternately, starting with side.
// Promotions choose a queen.
func play(t *testing.T, board *chess.Board, side chess.Colour, moves ...string) chess.Colour {
	t.Helper()
	for _, text := range moves {
		m := chess.MustParseMove(text)
		if !IsLegal(board, m, side) {
			t.Fatalf("%s is illegal for %s\n%s", text, side, board)
		}
		if err := Apply(board, m, chess.Queen); err != nil {
			t.Fatalf("Apply(%s): %v", text, err)
		}
		side = side.Opposite()
	}
	return side
}

func sq(s string) chess.Location {
	return chess.MustParseLocation(s)
}

func mv(s string) chess.Move {
	return chess.MustParseMove(s)
}

func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
