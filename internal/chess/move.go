package chess

import (
	"strings"

	"github.com/lgbarn/hotseat-chess/internal/errors"
)

// Move is an ordered pair of squares. Castling is expressed as the king's
// two-file move; en passant as the capturing pawn's diagonal.
type Move struct {
	From Location
	To   Location
}

// NewMove creates a move between two squares.
func NewMove(from, to Location) Move {
	return Move{From: from, To: to}
}

// Delta returns the signed rank and file distance from From to To.
func (m Move) Delta() (dRank, dFile int) {
	return m.To.Rank - m.From.Rank, m.To.File - m.From.File
}

// Valid reports whether both squares are on the board.
func (m Move) Valid() bool {
	return m.From.Valid() && m.To.Valid()
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove converts text such as "e2e4" (or "e2-e4", "E2 E4") to a Move.
func ParseMove(s string) (Move, error) {
	text := strings.TrimSpace(s)
	text = strings.NewReplacer("-", "", " ", "").Replace(text)
	if len(text) != 4 {
		return Move{}, errors.Wrapf(errors.ErrInvalidMoveText, "%q", s)
	}
	from, err := ParseLocation(text[:2])
	if err != nil {
		return Move{}, errors.Wrapf(errors.ErrInvalidMoveText, "%q: %v", s, err)
	}
	to, err := ParseLocation(text[2:])
	if err != nil {
		return Move{}, errors.Wrapf(errors.ErrInvalidMoveText, "%q: %v", s, err)
	}
	return Move{From: from, To: to}, nil
}

// MustParseMove is ParseMove for literals known to be valid.
func MustParseMove(s string) Move {
	m, err := ParseMove(s)
	if err != nil {
		panic(err)
	}
	return m
}
