// Package hashing computes position keys and tracks how often positions recur.
package hashing

import (
	"github.com/lgbarn/hotseat-chess/internal/chess"
)

// zobristSeed fixes the key tables so keys are stable across runs.
const zobristSeed uint64 = 0x9E3779B97F4A7C15

type zobristTable struct {
	pieces      [2][chess.NumKinds][chess.BoardSize][chess.BoardSize]uint64
	castling    [chess.AllCastling + 1]uint64
	enPassant   [chess.BoardSize]uint64
	blackToMove uint64
}

var zobrist = newZobristTable(zobristSeed)

func newZobristTable(seed uint64) *zobristTable {
	t := &zobristTable{}
	state := seed
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for colour := range t.pieces {
		for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
			for rank := 0; rank < chess.BoardSize; rank++ {
				for file := 0; file < chess.BoardSize; file++ {
					t.pieces[colour][kind][rank][file] = next()
				}
			}
		}
	}
	// castling[0] stays zero so a board without rights adds nothing
	for i := 1; i < len(t.castling); i++ {
		t.castling[i] = next()
	}
	for file := range t.enPassant {
		t.enPassant[file] = next()
	}
	t.blackToMove = next()
	return t
}

// Key returns the Zobrist key of board with toMove to play. Two positions
// share a key when they have the same pieces on the same squares, the same
// castling rights, the same en passant file and the same side to move.
func Key(board *chess.Board, toMove chess.Colour) uint64 {
	var key uint64
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p := board.Squares[rank][file]
			if p.IsEmpty() {
				continue
			}
			key ^= zobrist.pieces[p.Colour][p.Kind][rank][file]
		}
	}
	key ^= zobrist.castling[board.Castling]
	if board.HasEnPassant {
		key ^= zobrist.enPassant[board.EnPassant.File]
	}
	if toMove == chess.Black {
		key ^= zobrist.blackToMove
	}
	return key
}

// Counter records how many times each position key has been seen.
type Counter struct {
	// seen maps a key to its number of occurrences
	seen map[uint64]int
	// total is the number of keys added
	total int
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{seen: make(map[uint64]int)}
}

// Add records one occurrence of key and returns how many times it has now
// been seen, counting this one.
func (c *Counter) Add(key uint64) int {
	c.seen[key]++
	c.total++
	return c.seen[key]
}

// Count returns the number of recorded occurrences of key.
func (c *Counter) Count(key uint64) int {
	return c.seen[key]
}

// UniqueCount returns the number of distinct keys seen.
func (c *Counter) UniqueCount() int {
	return len(c.seen)
}

// Total returns the number of keys added, repeats included.
func (c *Counter) Total() int {
	return c.total
}

// Reset forgets every key.
func (c *Counter) Reset() {
	c.seen = make(map[uint64]int)
	c.total = 0
}
