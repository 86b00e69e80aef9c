package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/atseng3/w2d2/internal/chess"
	"github.com/atseng3/w2d2/internal/config"
	"github.com/atseng3/w2d2/internal/engine"
	"github.com/atseng3/w2d2/internal/game"
	"github.com/atseng3/w2d2/internal/notation"
	"github.com/atseng3/w2d2/internal/render"
)

const helpText = `  e2 e4       move the piece on e2 to e4 (also e2e4 or e2-e4)
  moves e2    list the squares the piece on e2 can move to
  board       draw the board
  fen         print the position as FEN
  help        show this text
  quit        leave the game
`

// outcome summarises a finished or abandoned session.
type outcome struct {
	Over   bool
	Winner chess.Colour
	Plies  int
}

// session is one run of the input loop.
type session struct {
	cfg   *config.Config
	game  *game.Game
	out   io.Writer
	plies int
}

// newGame creates the game from the configured start position.
func newGame(cfg *config.Config) (*game.Game, error) {
	if cfg.StartFEN == "" {
		return game.New(), nil
	}
	board, toMove, err := engine.NewBoardFromFEN(cfg.StartFEN)
	if err != nil {
		return nil, err
	}
	return game.NewFromBoard(board, toMove), nil
}

// play reads moves from cfg.InputFile until the game ends, the player
// quits or input runs out.
func play(cfg *config.Config) (outcome, error) {
	g, err := newGame(cfg)
	if err != nil {
		return outcome{}, err
	}
	s := &session{cfg: cfg, game: g, out: cfg.OutputFile}

	scanner := bufio.NewScanner(cfg.InputFile)
	for !g.Over() {
		s.prompt()
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return s.outcome(), err
			}
			cfg.Logf(config.ResultOnly, "Game abandoned after %d plies", s.plies)
			return s.outcome(), nil
		}
		if !s.handle(scanner.Text()) {
			cfg.Logf(config.ResultOnly, "Game abandoned after %d plies", s.plies)
			return s.outcome(), nil
		}
	}

	s.finish()
	return s.outcome(), nil
}

func (s *session) outcome() outcome {
	winner, over := s.game.Winner()
	return outcome{Over: over, Winner: winner, Plies: s.plies}
}

func (s *session) prompt() {
	if s.cfg.Display.ShowBoard {
		fmt.Fprintln(s.out)
		s.drawBoard()
	}
	if s.game.InCheck() {
		fmt.Fprintln(s.out, "Check!")
	}
	fmt.Fprintf(s.out, "\nPlease enter your move. It is %s's turn.\n", strings.ToLower(s.game.Turn().String()))
}

func (s *session) drawBoard() {
	render.Render(s.out, s.game.Board(), s.cfg.Display.Options()) //nolint:errcheck // write errors surface on the next prompt
}

// handle processes one input line. It returns false when the player quits.
func (s *session) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return false
	case "help", "?":
		fmt.Fprint(s.out, helpText)
	case "board":
		s.drawBoard()
	case "fen":
		fmt.Fprintln(s.out, engine.BoardToFEN(s.game.Board(), s.game.Turn()))
	case "moves":
		s.listMoves(fields[1:])
	default:
		s.move(line)
	}
	return true
}

func (s *session) listMoves(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: moves <square>")
		return
	}
	from, err := notation.ParsePosition(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Unknown square %q.\n", args[0])
		return
	}

	dests := s.game.LegalDestinations(from)
	if len(dests) == 0 {
		fmt.Fprintf(s.out, "%s: no legal moves\n", from)
		return
	}
	names := make([]string, len(dests))
	for i, d := range dests {
		names[i] = notation.FormatPosition(d)
	}
	fmt.Fprintf(s.out, "%s: %s\n", from, strings.Join(names, " "))
}

func (s *session) move(line string) {
	from, to, err := notation.ParseMove(line)
	if err != nil {
		s.cfg.Logf(config.Commentary, "rejected %q: %v", line, err)
		fmt.Fprintln(s.out, "\nIllegal move.")
		return
	}

	res, err := s.game.Move(from, to)
	if err != nil {
		s.cfg.Logf(config.Commentary, "rejected: %v", err)
		fmt.Fprintln(s.out, "\nIllegal move.")
		return
	}

	s.plies++
	if res.DidCapture {
		s.cfg.Logf(config.Commentary, "%s %s takes %s", res.Mover, res.Move, res.Captured.Kind)
	} else {
		s.cfg.Logf(config.Commentary, "%s %s", res.Mover, res.Move)
	}
}

func (s *session) finish() {
	if s.cfg.Display.ShowBoard {
		fmt.Fprintln(s.out)
		s.drawBoard()
	}
	winner, _ := s.game.Winner()
	fmt.Fprintf(s.out, "\nCheckmate! %s wins!\n", winner)
	s.cfg.Logf(config.ResultOnly, "Checkmate: %s wins after %d plies", winner, s.plies)
}
