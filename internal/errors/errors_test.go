package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidMoveText", ErrInvalidMoveText, ErrInvalidMoveText},
		{"ErrInvalidPromotion", ErrInvalidPromotion, ErrInvalidPromotion},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrGameOver) {
		t.Error("errors.Is(ErrIllegalMove, ErrGameOver) = true, want false")
	}
	if errors.Is(ErrInvalidSquare, ErrInvalidMoveText) {
		t.Error("errors.Is(ErrInvalidSquare, ErrInvalidMoveText) = true, want false")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
		want     string
	}{
		{
			name:     "full context",
			err:      &MoveError{Err: ErrGameOver, Ply: 12, Move: "e2e4"},
			contains: []string{"ply 12", "e2e4", "game is over"},
		},
		{
			name: "no context",
			err:  &MoveError{Err: ErrInvalidPromotion},
			want: "invalid promotion choice",
		},
		{
			name: "no underlying error",
			err:  &MoveError{Ply: 3},
			want: "ply 3",
		},
		{
			name: "empty",
			err:  &MoveError{},
			want: "move error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if tt.want != "" && msg != tt.want {
				t.Errorf("MoveError.Error() = %q, want %q", msg, tt.want)
			}
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrInvalidPromotion, Ply: 24, Move: "e7e8"}
	wrapped := fmt.Errorf("turn failed: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Ply != 24 {
		t.Errorf("extracted.Ply = %d, want 24", extracted.Ply)
	}
	if !errors.Is(wrapped, ErrInvalidPromotion) {
		t.Error("errors.Is(wrapped, ErrInvalidPromotion) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) != nil")
	}
	err := Wrap(ErrInvalidSquare, "parse from")
	if !errors.Is(err, ErrInvalidSquare) {
		t.Errorf("errors.Is(%v, ErrInvalidSquare) = false, want true", err)
	}
	if got, want := err.Error(), "parse from: invalid square"; got != want {
		t.Errorf("Wrap().Error() = %q, want %q", got, want)
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) != nil")
	}
	err := Wrapf(ErrInvalidConfig, "load %s", "config.toml")
	if got, want := err.Error(), "load config.toml: invalid configuration"; got != want {
		t.Errorf("Wrapf().Error() = %q, want %q", got, want)
	}
}
