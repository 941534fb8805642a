package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/hotseat-chess/internal/chess"
	"github.com/lgbarn/hotseat-chess/internal/config"
	"github.com/lgbarn/hotseat-chess/internal/game"
	"github.com/lgbarn/hotseat-chess/internal/render"
)

// Loop alternates turns between the two players at one terminal.
type Loop struct {
	session *game.Session
	in      *bufio.Scanner
	out     io.Writer
	render  *config.RenderConfig
}

// NewLoop creates a turn loop reading commands from in.
func NewLoop(session *game.Session, in *bufio.Scanner, out io.Writer, rc *config.RenderConfig) *Loop {
	return &Loop{session: session, in: in, out: out, render: rc}
}

// Run prompts for moves until the game ends, the player quits or input
// runs out.
func (l *Loop) Run() error {
	if err := l.drawBoard(); err != nil {
		return err
	}
	if l.announce() {
		return nil
	}

	for {
		fmt.Fprintf(l.out, "%s to move: ", l.session.SideToMove())
		if !l.in.Scan() {
			fmt.Fprintln(l.out)
			return l.in.Err()
		}
		line := strings.TrimSpace(l.in.Text())

		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			fmt.Fprintln(l.out, "Game abandoned.")
			return nil
		case "help", "?":
			l.printHelp()
			continue
		case "board":
			if err := l.drawBoard(); err != nil {
				return err
			}
			continue
		case "moves":
			l.printMoves()
			continue
		case "history":
			l.printHistory()
			continue
		case "resign":
			fmt.Fprintf(l.out, "%s resigns. %s wins.\n",
				l.session.SideToMove(), l.session.SideToMove().Opposite())
			return nil
		}

		m, err := chess.ParseMove(line)
		if err != nil {
			fmt.Fprintf(l.out, "Cannot read %q. Enter a move like e2e4, or \"help\".\n", line)
			continue
		}

		ok, err := l.session.Play(m)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(l.out)
			return nil
		case err != nil:
			return err
		case !ok:
			fmt.Fprintf(l.out, "Illegal move %s.\n", m)
			continue
		}

		if err := l.drawBoard(); err != nil {
			return err
		}
		if l.announce() {
			return nil
		}
	}
}

// announce reports check and the end of the game. It returns true when
// the game is over.
func (l *Loop) announce() bool {
	switch l.session.Status() {
	case chess.Check:
		fmt.Fprintf(l.out, "%s is in check.\n", l.session.SideToMove())
	case chess.Checkmate:
		winner, _ := l.session.Winner()
		fmt.Fprintf(l.out, "Checkmate. %s wins.\n", winner)
		return true
	case chess.Stalemate:
		fmt.Fprintln(l.out, "Stalemate. The game is drawn.")
		return true
	}
	return false
}

func (l *Loop) drawBoard() error {
	opts := l.render.Options(l.session.SideToMove() == chess.Black)
	fmt.Fprintln(l.out)
	if err := render.Board(l.out, l.session.Squares(), opts); err != nil {
		return fmt.Errorf("draw board: %w", err)
	}
	_, err := fmt.Fprintln(l.out)
	return err
}

func (l *Loop) printMoves() {
	moves := l.session.LegalMoves()
	text := make([]string, len(moves))
	for i, m := range moves {
		text[i] = m.String()
	}
	fmt.Fprintf(l.out, "%d legal moves: %s\n", len(moves), strings.Join(text, " "))
}

func (l *Loop) printHistory() {
	history := l.session.History()
	if len(history) == 0 {
		fmt.Fprintln(l.out, "No moves yet.")
		return
	}
	for _, e := range history {
		if e.Mover == chess.White {
			fmt.Fprintf(l.out, "%d. %s", (e.Seq+1)/2, e.Move)
		} else {
			fmt.Fprintf(l.out, " %s\n", e.Move)
		}
	}
	if history[len(history)-1].Mover == chess.White {
		fmt.Fprintln(l.out)
	}
}

func (l *Loop) printHelp() {
	fmt.Fprint(l.out, `Enter a move as two squares, e.g. e2e4 or g1-f3.
Castle by moving the king two squares: e1g1, e1c1, e8g8, e8c8.
Commands:
  board    draw the board again
  moves    list the legal moves
  history  list the moves played
  resign   give up the game
  quit     leave without a result
`)
}

// promptChooser asks the player at the terminal for a promotion piece.
type promptChooser struct {
	in  *bufio.Scanner
	out io.Writer
}

// ChoosePromotion reads lines until one names a queen, rook, bishop or
// knight. It fails only when input runs out.
func (p *promptChooser) ChoosePromotion(side chess.Colour, at chess.Location) (chess.Kind, error) {
	for {
		fmt.Fprintf(p.out, "%s pawn promotes on %s. Choose q, r, b or n: ", side, at)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return chess.Empty, err
			}
			return chess.Empty, io.EOF
		}
		kind, err := game.ParsePromotionChoice(p.in.Text())
		if err == nil {
			return kind, nil
		}
		fmt.Fprintf(p.out, "Cannot read %q.\n", strings.TrimSpace(p.in.Text()))
	}
}
