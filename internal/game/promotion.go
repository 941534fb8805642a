package game

import (
	"strings"

	"github.com/lgbarn/hotseat-chess/internal/chess"
	"github.com/lgbarn/hotseat-chess/internal/errors"
)

// PromotionChooser supplies the replacement kind when a pawn reaches its
// last rank. It may block, e.g. on user input. A returned error abandons
// the move; any other answer that is not a queen, rook, bishop or knight
// is asked again.
type PromotionChooser interface {
	ChoosePromotion(side chess.Colour, at chess.Location) (chess.Kind, error)
}

// PromotionFunc adapts a plain function to PromotionChooser.
type PromotionFunc func(side chess.Colour, at chess.Location) (chess.Kind, error)

// ChoosePromotion calls f.
func (f PromotionFunc) ChoosePromotion(side chess.Colour, at chess.Location) (chess.Kind, error) {
	return f(side, at)
}

// AutoQueen always promotes to a queen.
type AutoQueen struct{}

// ChoosePromotion returns chess.Queen.
func (AutoQueen) ChoosePromotion(chess.Colour, chess.Location) (chess.Kind, error) {
	return chess.Queen, nil
}

// ParsePromotionChoice converts text such as "q", "N" or "rook" to a kind.
func ParsePromotionChoice(s string) (chess.Kind, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	switch text {
	case "q", "queen":
		return chess.Queen, nil
	case "r", "rook":
		return chess.Rook, nil
	case "b", "bishop":
		return chess.Bishop, nil
	case "n", "knight":
		return chess.Knight, nil
	}
	return chess.Empty, errors.Wrapf(errors.ErrInvalidPromotion, "%q", s)
}

// choosePromotion asks the chooser until it names a valid kind or fails.
func (s *Session) choosePromotion(at chess.Location) (chess.Kind, error) {
	for attempt := 1; ; attempt++ {
		kind, err := s.chooser.ChoosePromotion(s.toMove, at)
		if err != nil {
			return chess.Empty, err
		}
		if kind.IsPromotionChoice() {
			return kind, nil
		}
		s.logger.Debug("invalid promotion choice", "kind", kind, "square", at, "attempt", attempt)
	}
}
