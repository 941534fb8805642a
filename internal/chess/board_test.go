package chess

import (
	"strings"
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.Castling != AllCastling {
			t.Errorf("Castling = %v; want KQkq", b.Castling)
		}
		if b.HasEnPassant {
			t.Error("HasEnPassant = true; want false")
		}
		if b.History.Len() != 0 {
			t.Errorf("History.Len() = %d; want 0", b.History.Len())
		}
	})

	t.Run("back ranks", func(t *testing.T) {
		backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
		for file, kind := range backRank {
			if got := b.Squares[7][file]; got != W(kind) {
				t.Errorf("white file %d = %v; want %v", file, got, W(kind))
			}
			if got := b.Squares[0][file]; got != B(kind) {
				t.Errorf("black file %d = %v; want %v", file, got, B(kind))
			}
		}
	})

	t.Run("pawns and empty middle", func(t *testing.T) {
		for file := 0; file < BoardSize; file++ {
			if got := b.Squares[6][file]; got != W(Pawn) {
				t.Errorf("rank 2 file %d = %v; want WP", file, got)
			}
			if got := b.Squares[1][file]; got != B(Pawn) {
				t.Errorf("rank 7 file %d = %v; want BP", file, got)
			}
			for rank := 2; rank <= 5; rank++ {
				if !b.Squares[rank][file].IsEmpty() {
					t.Errorf("square (%d,%d) not empty", rank, file)
				}
			}
		}
	})

	t.Run("one king each", func(t *testing.T) {
		if n := b.Count(White, King); n != 1 {
			t.Errorf("white kings = %d", n)
		}
		if n := b.Count(Black, King); n != 1 {
			t.Errorf("black kings = %d", n)
		}
	})
}

func TestNewEmptyBoard(t *testing.T) {
	b := NewEmptyBoard()
	if b.Castling != NoCastling {
		t.Errorf("Castling = %v; want -", b.Castling)
	}
	if len(b.Pieces(White))+len(b.Pieces(Black)) != 0 {
		t.Error("empty board has pieces")
	}
}

func TestBoardAtSetClear(t *testing.T) {
	b := NewEmptyBoard()
	e4 := MustParseLocation("e4")

	b.Set(e4, W(Knight))
	if got := b.At(e4); got != W(Knight) {
		t.Errorf("At(e4) = %v; want WN", got)
	}
	if b.IsEmpty(e4) {
		t.Error("IsEmpty(e4) = true after Set")
	}

	b.Clear(e4)
	if !b.IsEmpty(e4) {
		t.Error("IsEmpty(e4) = false after Clear")
	}
}

func TestBoardFind(t *testing.T) {
	b := NewBoard()
	tests := []struct {
		colour Colour
		kind   Kind
		want   string
		found  bool
	}{
		{White, King, "e1", true},
		{Black, King, "e8", true},
		{White, Queen, "d1", true},
		{Black, Rook, "a8", true},
	}
	for _, tt := range tests {
		t.Run(tt.colour.String()+" "+tt.kind.String(), func(t *testing.T) {
			loc, ok := b.Find(tt.colour, tt.kind)
			if ok != tt.found || loc.String() != tt.want {
				t.Errorf("Find = %v, %v; want %s, %v", loc, ok, tt.want, tt.found)
			}
		})
	}

	if _, ok := NewEmptyBoard().Find(White, King); ok {
		t.Error("Find on empty board found a king")
	}
}

func TestBoardPieces(t *testing.T) {
	b := NewBoard()
	white := b.Pieces(White)
	if len(white) != 16 {
		t.Fatalf("len(Pieces(White)) = %d; want 16", len(white))
	}
	// Scan order is rank 0 first, so a2 comes before a1.
	if white[0].String() != "a2" || white[15].String() != "h1" {
		t.Errorf("Pieces(White) order = %v ... %v", white[0], white[15])
	}
}

func TestBoardClone(t *testing.T) {
	orig := NewBoard()
	orig.History.Append(White, W(Pawn), MustParseMove("e2e4"))

	clone := orig.Clone()
	clone.Clear(MustParseLocation("e1"))
	clone.Castling = NoCastling
	clone.SetEnPassant(MustParseLocation("e3"))
	clone.History.Append(Black, B(Pawn), MustParseMove("e7e5"))

	if orig.IsEmpty(MustParseLocation("e1")) {
		t.Error("clearing the clone changed the original grid")
	}
	if orig.Castling != AllCastling {
		t.Error("clone castling change leaked")
	}
	if orig.HasEnPassant {
		t.Error("clone en passant change leaked")
	}
	if orig.History.Len() != 1 {
		t.Errorf("original history len = %d; want 1", orig.History.Len())
	}
}

func TestBoardCloneHistoryDoesNotAlias(t *testing.T) {
	orig := NewBoard()
	// Leave spare capacity in the backing array.
	for i := 0; i < 3; i++ {
		orig.History.Append(White, W(Pawn), MustParseMove("a2a3"))
	}

	a := orig.Clone()
	b := orig.Clone()
	a.History.Append(White, W(Knight), MustParseMove("b1c3"))
	b.History.Append(Black, B(Knight), MustParseMove("g8f6"))

	lastA, _ := a.History.Last()
	lastB, _ := b.History.Last()
	if lastA.Piece != W(Knight) {
		t.Errorf("clone a last = %v; want WN", lastA.Piece)
	}
	if lastB.Piece != B(Knight) {
		t.Errorf("clone b last = %v; want BN", lastB.Piece)
	}
}

func TestBoardString(t *testing.T) {
	s := NewBoard().String()
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) != BoardSize {
		t.Fatalf("String() has %d lines; want 8", len(lines))
	}
	if lines[0] != "BR BN BB BQ BK BB BN BR" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[3] != ".. .. .. .. .. .. .. .." {
		t.Errorf("line 3 = %q", lines[3])
	}
}
