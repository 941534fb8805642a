package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/hotseat-chess/internal/errors"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"e2e4", "e2e4", false},
		{"e2-e4", "e2e4", false},
		{"  g1 f3 ", "g1f3", false},
		{"E7E8", "e7e8", false},
		{"e2", "", true},
		{"e2e9", "", true},
		{"z2e4", "", true},
		{"hello", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMove(tt.in)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidMoveText) {
					t.Errorf("ParseMove(%q) error = %v; want ErrInvalidMoveText", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q) error = %v", tt.in, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseMove(%q) = %s; want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestMoveDelta(t *testing.T) {
	tests := []struct {
		move  string
		dRank int
		dFile int
	}{
		{"e2e4", -2, 0},
		{"e7e5", 2, 0},
		{"g1f3", -2, -1},
		{"a1h8", -7, 7},
		{"e1c1", 0, -2},
	}
	for _, tt := range tests {
		t.Run(tt.move, func(t *testing.T) {
			dr, df := MustParseMove(tt.move).Delta()
			if dr != tt.dRank || df != tt.dFile {
				t.Errorf("Delta() = (%d,%d); want (%d,%d)", dr, df, tt.dRank, tt.dFile)
			}
		})
	}
}

func TestMoveValid(t *testing.T) {
	if !MustParseMove("a1h8").Valid() {
		t.Error("a1h8 invalid")
	}
	if NewMove(Loc(0, 0), Loc(0, 8)).Valid() {
		t.Error("off-board move valid")
	}
}
