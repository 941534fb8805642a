package engine

import "github.com/lgbarn/hotseat-chess/internal/chess"

// geometryFunc reports whether piece p may make move m on board, given that
// the shared source/destination checks have already passed.
type geometryFunc func(board *chess.Board, m chess.Move, p chess.Piece) bool

// geometry is the move-shape predicate for each kind.
var geometry = [chess.NumKinds]geometryFunc{
	chess.Empty:  noGeometry,
	chess.Pawn:   pawnGeometry,
	chess.Knight: knightGeometry,
	chess.Bishop: bishopGeometry,
	chess.Rook:   rookGeometry,
	chess.Queen:  queenGeometry,
	chess.King:   kingGeometry,
}

// IsGeometricallyLegal reports whether side may make move m on board,
// ignoring whether it leaves side's own king attacked.
func IsGeometricallyLegal(board *chess.Board, m chess.Move, side chess.Colour) bool {
	if !m.Valid() || m.From == m.To {
		return false
	}
	piece := board.At(m.From)
	if !piece.BelongsTo(side) {
		return false
	}
	if board.At(m.To).BelongsTo(side) {
		return false
	}
	return geometry[piece.Kind](board, m, piece)
}

func noGeometry(*chess.Board, chess.Move, chess.Piece) bool {
	return false
}

func knightGeometry(_ *chess.Board, m chess.Move, _ chess.Piece) bool {
	dr, df := m.Delta()
	rankDiff, fileDiff := abs(dr), abs(df)
	return (rankDiff == 1 && fileDiff == 2) || (rankDiff == 2 && fileDiff == 1)
}

func bishopGeometry(board *chess.Board, m chess.Move, _ chess.Piece) bool {
	dr, df := m.Delta()
	if abs(dr) != abs(df) {
		return false
	}
	return PathClear(board, m)
}

func rookGeometry(board *chess.Board, m chess.Move, _ chess.Piece) bool {
	dr, df := m.Delta()
	if dr != 0 && df != 0 {
		return false
	}
	return PathClear(board, m)
}

func queenGeometry(board *chess.Board, m chess.Move, p chess.Piece) bool {
	return rookGeometry(board, m, p) || bishopGeometry(board, m, p)
}

func kingStep(m chess.Move) bool {
	dr, df := m.Delta()
	return abs(dr) <= 1 && abs(df) <= 1
}

func kingGeometry(board *chess.Board, m chess.Move, p chess.Piece) bool {
	return kingStep(m) || CanCastle(board, m, p.Colour)
}
