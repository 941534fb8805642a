package engine

import "github.com/lgbarn/hotseat-chess/internal/chess"

// isLine reports whether the move runs along a rank, file or diagonal.
func isLine(m chess.Move) bool {
	dr, df := m.Delta()
	if dr == 0 && df == 0 {
		return false
	}
	return dr == 0 || df == 0 || abs(dr) == abs(df)
}

// PathClear reports whether every square strictly between From and To is
// empty. The walk starts on the square next to From and steps one square at
// a time toward To. Moves that are not along a line are never clear.
func PathClear(board *chess.Board, m chess.Move) bool {
	if !isLine(m) {
		return false
	}
	for sq := m.From.Toward(m.To); sq != m.To; sq = sq.Toward(m.To) {
		if !board.IsEmpty(sq) {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
