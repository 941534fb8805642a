package chess

// Board represents a chess board with all state needed for the rules.
// The side to move is not part of the board; the game session owns it.
type Board struct {
	// The board squares, indexed [rank][file]. Every square holds a
	// Piece; vacant squares hold NoPiece.
	Squares [BoardSize][BoardSize]Piece

	// Castles still available to each side.
	Castling CastlingRights

	// Is an en passant capture possible? If so then EnPassant is the
	// square a capturing pawn lands on.
	HasEnPassant bool
	EnPassant    Location

	// Moves applied to reach this position.
	History History
}

// NewEmptyBoard creates a board with every square empty and no castling rights.
func NewEmptyBoard() *Board {
	return &Board{}
}

// NewBoard creates a board set up in the standard chess starting position.
func NewBoard() *Board {
	b := NewEmptyBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[0][file] = B(backRank[file])
		b.Squares[1][file] = B(Pawn)
		b.Squares[6][file] = W(Pawn)
		b.Squares[7][file] = W(backRank[file])
	}

	b.Castling = AllCastling
	b.HasEnPassant = false
	b.EnPassant = Location{}
	b.History = History{}
}

// At returns the piece on the given square.
func (b *Board) At(l Location) Piece {
	return b.Squares[l.Rank][l.File]
}

// Set places a piece on the given square.
func (b *Board) Set(l Location, p Piece) {
	b.Squares[l.Rank][l.File] = p
}

// Clear empties the given square.
func (b *Board) Clear(l Location) {
	b.Squares[l.Rank][l.File] = NoPiece
}

// IsEmpty reports whether the given square is vacant.
func (b *Board) IsEmpty(l Location) bool {
	return b.Squares[l.Rank][l.File].IsEmpty()
}

// SetEnPassant records the square a pawn skipped over.
func (b *Board) SetEnPassant(l Location) {
	b.HasEnPassant = true
	b.EnPassant = l
}

// ClearEnPassant forgets any en passant target.
func (b *Board) ClearEnPassant() {
	b.HasEnPassant = false
	b.EnPassant = Location{}
}

// Clone creates a deep copy of the board. Mutating the copy, including
// appending to its history, never affects b.
func (b *Board) Clone() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.History = b.History.clone()
	return newBoard
}

// Find returns the first square holding the given piece kind and colour.
func (b *Board) Find(colour Colour, kind Kind) (Location, bool) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.Squares[rank][file].Is(colour, kind) {
				return Location{Rank: rank, File: file}, true
			}
		}
	}
	return Location{}, false
}

// Count returns how many pieces of the given kind and colour are on the board.
func (b *Board) Count(colour Colour, kind Kind) int {
	n := 0
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.Squares[rank][file].Is(colour, kind) {
				n++
			}
		}
	}
	return n
}

// Pieces returns the squares occupied by pieces of the given colour,
// scanning rank by rank from rank 0.
func (b *Board) Pieces(colour Colour) []Location {
	var locs []Location
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.Squares[rank][file].BelongsTo(colour) {
				locs = append(locs, Location{Rank: rank, File: file})
			}
		}
	}
	return locs
}

// String renders the grid as eight lines of two-letter piece codes,
// rank 8 first, with ".." for empty squares.
func (b *Board) String() string {
	out := make([]byte, 0, BoardSize*(BoardSize*3+1))
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if file > 0 {
				out = append(out, ' ')
			}
			p := b.Squares[rank][file]
			if p.IsEmpty() {
				out = append(out, '.', '.')
			} else {
				out = append(out, p.String()...)
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
