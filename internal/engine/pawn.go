package engine

import "github.com/lgbarn/hotseat-chess/internal/chess"

func pawnGeometry(board *chess.Board, m chess.Move, p chess.Piece) bool {
	dr, df := m.Delta()
	forward := p.Colour.Forward()
	target := board.At(m.To)

	switch {
	case df == 0 && dr == forward:
		return target.IsEmpty()

	case df == 0 && dr == 2*forward:
		// Double push only on the pawn's first move, over an empty square
		skipped, _ := m.From.Step(forward, 0)
		return !p.Moved && target.IsEmpty() && board.IsEmpty(skipped)

	case abs(df) == 1 && dr == forward:
		if !target.IsEmpty() {
			return true // an opposing piece; own pieces are rejected earlier
		}
		return IsEnPassantCapture(board, m)
	}

	return false
}

// IsEnPassantCapture reports whether m is a pawn capturing en passant: a
// diagonal step onto the board's empty en passant target beside an opposing
// pawn that has just made its double push.
func IsEnPassantCapture(board *chess.Board, m chess.Move) bool {
	if !board.HasEnPassant || m.To != board.EnPassant {
		return false
	}
	pawn := board.At(m.From)
	if pawn.Kind != chess.Pawn {
		return false
	}
	dr, df := m.Delta()
	if dr != pawn.Colour.Forward() || abs(df) != 1 {
		return false
	}
	if !board.IsEmpty(m.To) {
		return false
	}
	return board.At(capturedPawnSquare(m)).Is(pawn.Colour.Opposite(), chess.Pawn)
}

// capturedPawnSquare is where an en passant victim stands: on the target's
// file and the capturing pawn's rank.
func capturedPawnSquare(m chess.Move) chess.Location {
	return chess.Loc(m.From.Rank, m.To.File)
}

// NeedsPromotion reports whether m moves a pawn onto its last rank.
func NeedsPromotion(board *chess.Board, m chess.Move) bool {
	pawn := board.At(m.From)
	return pawn.Kind == chess.Pawn && m.To.Rank == pawn.Colour.PromotionRank()
}

// pawnAttacks reports whether a pawn on m.From covers m.To.
func pawnAttacks(_ *chess.Board, m chess.Move, p chess.Piece) bool {
	dr, df := m.Delta()
	return dr == p.Colour.Forward() && abs(df) == 1
}
