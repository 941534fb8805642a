package engine

import (
	"fmt"

	"github.com/lgbarn/hotseat-chess/internal/chess"
	"github.com/lgbarn/hotseat-chess/internal/errors"
)

// Apply plays move m on board, which the caller has already checked with
// IsLegal. promotion names the replacement kind when the move takes a pawn
// to its last rank and is ignored otherwise. Castling and en passant are
// recognised from the move and applied as single operations.
func Apply(board *chess.Board, m chess.Move, promotion chess.Kind) error {
	piece := board.At(m.From)
	if piece.IsEmpty() {
		panic(fmt.Sprintf("engine: apply %s from an empty square", m))
	}

	promote := NeedsPromotion(board, m)
	if promote && !promotion.IsPromotionChoice() {
		return errors.Wrapf(errors.ErrInvalidPromotion, "%s", promotion)
	}

	castle := piece.Kind == chess.King && isCastlingShape(m)
	enPassant := piece.Kind == chess.Pawn && IsEnPassantCapture(board, m)

	// Record before mutating so the entry holds the pre-move piece
	board.History.Append(piece.Colour, piece, m)
	board.ClearEnPassant()

	switch {
	case castle:
		applyCastle(board, m, piece)
	case enPassant:
		applyEnPassant(board, m, piece)
	default:
		applyPieceMove(board, m, piece, promote, promotion)
	}

	updateCastlingRights(board, m, piece)

	return nil
}

// applyPieceMove moves a single piece, capturing whatever is on m.To.
func applyPieceMove(board *chess.Board, m chess.Move, piece chess.Piece, promote bool, promotion chess.Kind) {
	moved := piece
	moved.Moved = true
	if promote {
		moved = chess.Piece{Kind: promotion, Colour: piece.Colour, Moved: true}
	}

	board.Clear(m.From)
	board.Set(m.To, moved)

	// Set en passant square if double pawn push
	if piece.Kind == chess.Pawn {
		dr, _ := m.Delta()
		if abs(dr) == 2 {
			skipped, _ := m.From.Step(piece.Colour.Forward(), 0)
			board.SetEnPassant(skipped)
		}
	}
}

// applyEnPassant moves the pawn diagonally and removes the pawn it passed.
func applyEnPassant(board *chess.Board, m chess.Move, pawn chess.Piece) {
	pawn.Moved = true
	board.Clear(capturedPawnSquare(m))
	board.Clear(m.From)
	board.Set(m.To, pawn)
}

// TrialApply returns a copy of board with m applied. board itself is never
// modified. A missing or invalid promotion choice is treated as a queen,
// since the choice cannot change the safety of the mover's king.
func TrialApply(board *chess.Board, m chess.Move, promotion chess.Kind) *chess.Board {
	trial := board.Clone()
	if !promotion.IsPromotionChoice() {
		promotion = chess.Queen
	}
	if err := Apply(trial, m, promotion); err != nil {
		panic(fmt.Sprintf("engine: trial apply %s: %v", m, err))
	}
	return trial
}
