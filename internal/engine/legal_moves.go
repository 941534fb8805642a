package engine

import "github.com/lgbarn/hotseat-chess/internal/chess"

// IsLegal reports whether side may make move m: the move has a legal shape
// for the piece and does not leave side's king attacked.
func IsLegal(board *chess.Board, m chess.Move, side chess.Colour) bool {
	if !IsGeometricallyLegal(board, m, side) {
		return false
	}
	return leavesKingSafe(board, m, side)
}

// leavesKingSafe plays m on a copy of the board and checks side's king.
func leavesKingSafe(board *chess.Board, m chess.Move, side chess.Colour) bool {
	testBoard := TrialApply(board, m, chess.Queen)
	return !IsInCheck(testBoard, side)
}

// LegalMovesFrom returns every legal move of the piece on from, in board
// scan order of the destination.
func LegalMovesFrom(board *chess.Board, from chess.Location) []chess.Move {
	piece := board.At(from)
	if piece.IsEmpty() {
		return nil
	}
	var moves []chess.Move
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			m := chess.NewMove(from, chess.Loc(rank, file))
			if IsLegal(board, m, piece.Colour) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// LegalMoves returns every legal move for the given colour, covering every
// one of its pieces.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range board.Pieces(colour) {
		moves = append(moves, LegalMovesFrom(board, from)...)
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, from := range board.Pieces(colour) {
		for rank := 0; rank < chess.BoardSize; rank++ {
			for file := 0; file < chess.BoardSize; file++ {
				if IsLegal(board, chess.NewMove(from, chess.Loc(rank, file)), colour) {
					return true
				}
			}
		}
	}
	return false
}
