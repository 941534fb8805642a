// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank step a pawn of this colour advances by.
// White advances toward rank 0, Black toward rank 7.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRank returns the back rank of the colour in grid coordinates.
func (c Colour) HomeRank() int {
	if c == White {
		return 7
	}
	return 0
}

// PromotionRank returns the rank on which a pawn of this colour promotes.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// Kind is the closed set of things that can occupy a square.
type Kind int

const (
	Empty Kind = iota // Vacant square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPromotionChoice reports whether a pawn may be replaced by this kind.
func (k Kind) IsPromotionChoice() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// PromotionChoices lists the kinds a pawn may promote to, in menu order.
var PromotionChoices = []Kind{Queen, Bishop, Rook, Knight}

// Piece is the occupant of a square. The zero value is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour

	// Moved is set once the piece has made a move. Only pawns, rooks
	// and kings consult it.
	Moved bool
}

// NoPiece is the empty-square sentinel.
var NoPiece = Piece{}

// W creates an unmoved white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates an unmoved black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether the square holds nothing.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Kind != Empty && p.Colour == colour
}

// BelongsTo reports whether p is a non-empty piece of the given colour.
func (p Piece) BelongsTo(colour Colour) bool {
	return p.Kind != Empty && p.Colour == colour
}

// String returns a two-letter code such as "WP" or "BK", or "  " when empty.
func (p Piece) String() string {
	if p.Kind == Empty {
		return "  "
	}
	c := byte('W')
	if p.Colour == Black {
		c = 'B'
	}
	return string([]byte{c, p.Kind.Letter()})
}

// Status classifies a position for the side to move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}

// IsTerminal reports whether no further moves are accepted.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// CastlingRights records which castles remain available.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// CastleRight returns the right for the given colour and wing.
func CastleRight(colour Colour, kingside bool) CastlingRights {
	switch {
	case colour == White && kingside:
		return WhiteKingside
	case colour == White:
		return WhiteQueenside
	case kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// Has reports whether every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Without returns c with the rights in r removed.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// String returns the rights in KQkq form, or "-" when none remain.
func (c CastlingRights) String() string {
	s := ""
	if c.Has(WhiteKingside) {
		s += "K"
	}
	if c.Has(WhiteQueenside) {
		s += "Q"
	}
	if c.Has(BlackKingside) {
		s += "k"
	}
	if c.Has(BlackQueenside) {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	KingFile          = 4
	KingsideRookFile  = 7
	QueensideRookFile = 0
)
