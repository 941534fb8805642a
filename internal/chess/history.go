package chess

// HistoryEntry records one applied move.
type HistoryEntry struct {
	// Who made the move.
	Mover Colour

	// The moving piece as it was before the move.
	Piece Piece

	// The move itself. For castling this is the king's move.
	Move Move

	// 1-based sequence number of the move.
	Seq int
}

// History is the append-only record of moves applied to a board.
type History struct {
	entries []HistoryEntry
}

// Append records a move and returns the stored entry.
func (h *History) Append(mover Colour, piece Piece, move Move) HistoryEntry {
	e := HistoryEntry{
		Mover: mover,
		Piece: piece,
		Move:  move,
		Seq:   len(h.entries) + 1,
	}
	h.entries = append(h.entries, e)
	return e
}

// Last returns the most recent entry, or false if no move has been made.
func (h *History) Last() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Len returns the number of recorded moves.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of every entry, oldest first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// clone returns a history whose later appends cannot write into h's
// backing array.
func (h History) clone() History {
	return History{entries: h.entries[:len(h.entries):len(h.entries)]}
}
