package chess

import (
	"fmt"

	"github.com/lgbarn/hotseat-chess/internal/errors"
)

// Location is a square on the board. Rank 0 is Black's back rank
// (algebraic rank 8) and file 0 is the a-file.
type Location struct {
	Rank int
	File int
}

// Loc is shorthand for Location{Rank: rank, File: file}.
func Loc(rank, file int) Location {
	return Location{Rank: rank, File: file}
}

// Valid reports whether the location is on the board.
func (l Location) Valid() bool {
	return l.Rank >= 0 && l.Rank < BoardSize && l.File >= 0 && l.File < BoardSize
}

// String returns the algebraic name of the square, e.g. "e2".
func (l Location) String() string {
	if !l.Valid() {
		return fmt.Sprintf("(%d,%d)", l.Rank, l.File)
	}
	return string([]byte{byte('a' + l.File), byte('8' - l.Rank)})
}

// ParseLocation converts algebraic text such as "e2" to a Location.
// Upper-case files are accepted.
func ParseLocation(s string) (Location, error) {
	if len(s) != 2 {
		return Location{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
	}
	file := s[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Location{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
	}
	return Location{Rank: int('8' - rank), File: int(file - 'a')}, nil
}

// MustParseLocation is ParseLocation for literals known to be valid.
func MustParseLocation(s string) Location {
	l, err := ParseLocation(s)
	if err != nil {
		panic(err)
	}
	return l
}

// Step returns the location offset by (dr, df) and whether it is on the board.
func (l Location) Step(dr, df int) (Location, bool) {
	n := Location{Rank: l.Rank + dr, File: l.File + df}
	return n, n.Valid()
}

// Up returns the square one rank toward rank 0, clamped at the edge.
func (l Location) Up() Location {
	if l.Rank > 0 {
		l.Rank--
	}
	return l
}

// Down returns the square one rank toward rank 7, clamped at the edge.
func (l Location) Down() Location {
	if l.Rank < BoardSize-1 {
		l.Rank++
	}
	return l
}

// Left returns the square one file toward the a-file, clamped at the edge.
func (l Location) Left() Location {
	if l.File > 0 {
		l.File--
	}
	return l
}

// Right returns the square one file toward the h-file, clamped at the edge.
func (l Location) Right() Location {
	if l.File < BoardSize-1 {
		l.File++
	}
	return l
}

// Toward returns the neighbouring square one step closer to to, moving
// diagonally when both rank and file differ. It returns l when l == to.
func (l Location) Toward(to Location) Location {
	switch {
	case to.Rank < l.Rank:
		l = l.Up()
	case to.Rank > l.Rank:
		l = l.Down()
	}
	switch {
	case to.File < l.File:
		l = l.Left()
	case to.File > l.File:
		l = l.Right()
	}
	return l
}
