// Package game runs a hot-seat session: it owns the live board, whose turn
// it is and the position classification, and drives the rules engine one
// move at a time.
package game

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/hotseat-chess/internal/chess"
	"github.com/lgbarn/hotseat-chess/internal/engine"
	"github.com/lgbarn/hotseat-chess/internal/errors"
	"github.com/lgbarn/hotseat-chess/internal/hashing"
)

// Snapshot is the position after a ply.
type Snapshot struct {
	// Ply is 0 for the starting position, then 1, 2, ...
	Ply int

	// Move led to this position; zero for the starting position.
	Move chess.Move

	// Key is the Zobrist key of the position with the side to move.
	Key uint64

	// Occurrence counts how many times this position has now been
	// reached in the session, this one included.
	Occurrence int

	Board *chess.Board
}

// Session is one game between two players sharing a terminal. It is not
// safe for concurrent use.
type Session struct {
	id     string
	board  *chess.Board
	toMove chess.Colour
	status chess.Status

	snapshots []Snapshot
	positions *hashing.Counter

	chooser PromotionChooser
	logger  *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithPromotionChooser sets who picks promotion pieces. The default is AutoQueen.
func WithPromotionChooser(c PromotionChooser) Option {
	return func(s *Session) {
		s.chooser = c
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithBoard starts the session from a copy of board instead of the
// standard starting position.
func WithBoard(board *chess.Board) Option {
	return func(s *Session) {
		s.board = board.Clone()
	}
}

// WithSideToMove sets who moves first.
func WithSideToMove(c chess.Colour) Option {
	return func(s *Session) {
		s.toMove = c
	}
}

// WithID sets the session ID instead of generating one.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// New creates a session. Without options it starts from the standard
// position with White to move.
func New(opts ...Option) *Session {
	s := &Session{
		board:     chess.NewBoard(),
		toMove:    chess.White,
		chooser:   AutoQueen{},
		positions: hashing.NewCounter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = uuid.New().String()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("session", s.id)

	s.status = engine.Classify(s.board, s.toMove)
	s.record(chess.Move{})
	s.logger.Debug("session started", "to_move", s.toMove, "status", s.status)
	return s
}

// Play offers a move for the side to move. It returns true once the move
// has been applied. An illegal move returns false with a nil error and
// leaves the session unchanged. Errors come from a finished game or from
// the promotion chooser; the session is unchanged in both cases.
func (s *Session) Play(m chess.Move) (bool, error) {
	ply := s.Ply() + 1
	if s.status.IsTerminal() {
		return false, &errors.MoveError{Err: errors.ErrGameOver, Ply: ply, Move: m.String()}
	}
	if !engine.IsLegal(s.board, m, s.toMove) {
		s.logger.Debug("illegal move", "ply", ply, "side", s.toMove, "move", m)
		return false, nil
	}

	promotion := chess.Empty
	if engine.NeedsPromotion(s.board, m) {
		kind, err := s.choosePromotion(m.To)
		if err != nil {
			return false, &errors.MoveError{Err: err, Ply: ply, Move: m.String()}
		}
		promotion = kind
	}

	if err := engine.Apply(s.board, m, promotion); err != nil {
		return false, &errors.MoveError{Err: err, Ply: ply, Move: m.String()}
	}

	mover := s.toMove
	s.toMove = mover.Opposite()
	s.status = engine.Classify(s.board, s.toMove)
	snap := s.record(m)

	s.logger.Debug("move applied",
		"ply", snap.Ply,
		"mover", mover,
		"move", m,
		"status", s.status,
		"key", fmt.Sprintf("%016x", snap.Key),
		"occurrence", snap.Occurrence)

	if s.status.IsTerminal() {
		if winner, ok := s.Winner(); ok {
			s.logger.Info("game over", "status", s.status, "winner", winner, "plies", snap.Ply)
		} else {
			s.logger.Info("game over", "status", s.status, "plies", snap.Ply)
		}
	}
	return true, nil
}

// PlayAll plays a whitespace-separated list of moves such as "e2e4 e7e5".
// It stops at the first move that cannot be parsed or played; an illegal
// move is reported as errors.ErrIllegalMove.
func (s *Session) PlayAll(moves string) error {
	for _, text := range strings.Fields(moves) {
		ply := s.Ply() + 1
		m, err := chess.ParseMove(text)
		if err != nil {
			return &errors.MoveError{Err: err, Ply: ply, Move: text}
		}
		ok, err := s.Play(m)
		if err != nil {
			return err
		}
		if !ok {
			return &errors.MoveError{Err: errors.ErrIllegalMove, Ply: ply, Move: text}
		}
	}
	return nil
}

func (s *Session) record(m chess.Move) Snapshot {
	key := hashing.Key(s.board, s.toMove)
	snap := Snapshot{
		Ply:        s.board.History.Len(),
		Move:       m,
		Key:        key,
		Occurrence: s.positions.Add(key),
		Board:      s.board.Clone(),
	}
	s.snapshots = append(s.snapshots, snap)
	return snap
}

// ID returns the session identifier used in log lines.
func (s *Session) ID() string {
	return s.id
}

// SideToMove returns whose turn it is. After checkmate this is the side
// that was mated.
func (s *Session) SideToMove() chess.Colour {
	return s.toMove
}

// Status returns the classification of the current position.
func (s *Session) Status() chess.Status {
	return s.status
}

// Winner returns the winning side after checkmate.
func (s *Session) Winner() (chess.Colour, bool) {
	if s.status != chess.Checkmate {
		return chess.White, false
	}
	return s.toMove.Opposite(), true
}

// Ply returns the number of moves applied so far.
func (s *Session) Ply() int {
	return s.board.History.Len()
}

// Board returns a copy of the live board.
func (s *Session) Board() *chess.Board {
	return s.board.Clone()
}

// Squares returns the grid for rendering.
func (s *Session) Squares() [chess.BoardSize][chess.BoardSize]chess.Piece {
	return s.board.Squares
}

// LegalMoves returns every legal move for the side to move.
func (s *Session) LegalMoves() []chess.Move {
	if s.status.IsTerminal() {
		return nil
	}
	return engine.LegalMoves(s.board, s.toMove)
}

// History returns the moves applied so far, oldest first.
func (s *Session) History() []chess.HistoryEntry {
	return s.board.History.Entries()
}

// Snapshots returns the position log, starting with the initial position.
func (s *Session) Snapshots() []Snapshot {
	out := make([]Snapshot, len(s.snapshots))
	for i, snap := range s.snapshots {
		snap.Board = snap.Board.Clone()
		out[i] = snap
	}
	return out
}
