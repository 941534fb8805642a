package engine

import (
	"fmt"

	"github.com/lgbarn/hotseat-chess/internal/chess"
)

// attackers is the capture reach of each kind. Kings reach one square
// only; castling never attacks anything.
var attackers = [chess.NumKinds]geometryFunc{
	chess.Empty:  noGeometry,
	chess.Pawn:   pawnAttacks,
	chess.Knight: knightGeometry,
	chess.Bishop: bishopGeometry,
	chess.Rook:   rookGeometry,
	chess.Queen:  queenGeometry,
	chess.King:   func(_ *chess.Board, m chess.Move, _ chess.Piece) bool { return kingStep(m) },
}

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return IsSquareAttacked(board, KingLocation(board, colour), colour.Opposite())
}

// KingLocation returns the square of the given colour's king. A board
// without that king is a broken invariant and panics.
func KingLocation(board *chess.Board, colour chess.Colour) chess.Location {
	loc, ok := board.Find(colour, chess.King)
	if !ok {
		panic(fmt.Sprintf("engine: no %s king on board\n%s", colour, board))
	}
	return loc
}

// IsSquareAttacked returns true if any piece of byColour could capture on
// sq. The occupant of sq, if any, is not considered.
func IsSquareAttacked(board *chess.Board, sq chess.Location, byColour chess.Colour) bool {
	attacked := false
	eachAttacker(board, sq, byColour, func(chess.Location) bool {
		attacked = true
		return false
	})
	return attacked
}

// Attackers returns the squares of byColour's pieces that attack sq.
func Attackers(board *chess.Board, sq chess.Location, byColour chess.Colour) []chess.Location {
	var locs []chess.Location
	eachAttacker(board, sq, byColour, func(from chess.Location) bool {
		locs = append(locs, from)
		return true
	})
	return locs
}

// eachAttacker calls fn with the square of every byColour piece attacking
// sq, in board scan order, until fn returns false.
func eachAttacker(board *chess.Board, sq chess.Location, byColour chess.Colour, fn func(from chess.Location) bool) {
	for _, from := range board.Pieces(byColour) {
		if from == sq {
			continue
		}
		piece := board.At(from)
		if attackers[piece.Kind](board, chess.NewMove(from, sq), piece) && !fn(from) {
			return
		}
	}
}
