package config

import (
	"strings"

	"github.com/lgbarn/hotseat-chess/internal/chess"
	"github.com/lgbarn/hotseat-chess/internal/errors"
)

// GameConfig holds settings for the session.
type GameConfig struct {
	// AutoQueen promotes to a queen without asking
	AutoQueen bool `toml:"auto_queen"`

	// Opening is a list of moves such as "e2e4 e7e5" played before the
	// first prompt
	Opening string `toml:"opening"`
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{}
}

// Validate checks that every opening move is well formed. Legality is
// checked when the moves are played.
func (c *GameConfig) Validate() error {
	for _, text := range splitMoves(c.Opening) {
		if _, err := chess.ParseMove(text); err != nil {
			return errors.Wrapf(errors.ErrInvalidConfig, "game.opening: %v", err)
		}
	}
	return nil
}

func splitMoves(s string) []string {
	return strings.Fields(s)
}
