// Package engine provides chess move validation and board manipulation.
package engine

import "github.com/lgbarn/hotseat-chess/internal/chess"

// Classify returns the status of the position for the side to move.
func Classify(board *chess.Board, toMove chess.Colour) chess.Status {
	inCheck := IsInCheck(board, toMove)
	canMove := HasLegalMoves(board, toMove)
	switch {
	case inCheck && !canMove:
		return chess.Checkmate
	case !canMove:
		return chess.Stalemate
	case inCheck:
		return chess.Check
	default:
		return chess.Ongoing
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board, toMove chess.Colour) bool {
	return IsInCheck(board, toMove) && !HasLegalMoves(board, toMove)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board, toMove chess.Colour) bool {
	return !IsInCheck(board, toMove) && !HasLegalMoves(board, toMove)
}
