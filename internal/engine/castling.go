package engine

import "github.com/lgbarn/hotseat-chess/internal/chess"

// isCastlingShape reports whether m moves two files along a rank, the
// shape of a king's castling move.
func isCastlingShape(m chess.Move) bool {
	dr, df := m.Delta()
	return dr == 0 && abs(df) == 2
}

// castleRookSquares returns where the rook starts and ends for a castle
// by colour on the given wing.
func castleRookSquares(colour chess.Colour, kingside bool) (from, to chess.Location) {
	rank := colour.HomeRank()
	if kingside {
		return chess.Loc(rank, chess.KingsideRookFile), chess.Loc(rank, chess.KingFile+1)
	}
	return chess.Loc(rank, chess.QueensideRookFile), chess.Loc(rank, chess.KingFile-1)
}

// CanCastle reports whether side may castle with king move m: king and
// rook unmoved with the matching right, every square between them empty,
// and none of the king's start, transit or destination squares attacked.
func CanCastle(board *chess.Board, m chess.Move, side chess.Colour) bool {
	if !isCastlingShape(m) {
		return false
	}
	home := chess.Loc(side.HomeRank(), chess.KingFile)
	if m.From != home {
		return false
	}
	king := board.At(m.From)
	if !king.Is(side, chess.King) || king.Moved {
		return false
	}

	_, df := m.Delta()
	kingside := df > 0
	if !board.Castling.Has(chess.CastleRight(side, kingside)) {
		return false
	}

	rookFrom, _ := castleRookSquares(side, kingside)
	rook := board.At(rookFrom)
	if !rook.Is(side, chess.Rook) || rook.Moved {
		return false
	}
	if !PathClear(board, chess.NewMove(m.From, rookFrom)) {
		return false
	}

	opponent := side.Opposite()
	for sq := m.From; ; sq = sq.Toward(m.To) {
		if IsSquareAttacked(board, sq, opponent) {
			return false
		}
		if sq == m.To {
			return true
		}
	}
}

// applyCastle relocates king and rook together.
func applyCastle(board *chess.Board, m chess.Move, king chess.Piece) {
	_, df := m.Delta()
	rookFrom, rookTo := castleRookSquares(king.Colour, df > 0)
	rook := board.At(rookFrom)

	king.Moved = true
	rook.Moved = true

	board.Clear(m.From)
	board.Clear(rookFrom)
	board.Set(m.To, king)
	board.Set(rookTo, rook)

	board.Castling = board.Castling.Without(
		chess.CastleRight(king.Colour, true) | chess.CastleRight(king.Colour, false))
}

// updateCastlingRights removes rights when a king moves, or when a rook
// moves from or is captured on its corner.
func updateCastlingRights(board *chess.Board, m chess.Move, mover chess.Piece) {
	if mover.Kind == chess.King {
		board.Castling = board.Castling.Without(
			chess.CastleRight(mover.Colour, true) | chess.CastleRight(mover.Colour, false))
	}
	revokeCorner(board, m.From)
	revokeCorner(board, m.To)
}

// revokeCorner drops the right tied to a rook's starting corner once
// anything leaves or lands on it.
func revokeCorner(board *chess.Board, sq chess.Location) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, kingside := range []bool{true, false} {
			if rookFrom, _ := castleRookSquares(colour, kingside); rookFrom == sq {
				board.Castling = board.Castling.Without(chess.CastleRight(colour, kingside))
			}
		}
	}
}
