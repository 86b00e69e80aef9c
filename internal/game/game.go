// Package game implements the turn controller: it tracks whose move it is,
// rejects illegal moves, applies legal ones and decides when the game ends.
package game

import (
	"github.com/atseng3/w2d2/internal/chess"
	"github.com/atseng3/w2d2/internal/engine"
	"github.com/atseng3/w2d2/internal/errors"
)

// State is the phase of the game.
type State int

const (
	AwaitingMove State = iota
	GameOver
)

// String returns the string representation of a state.
func (s State) String() string {
	if s == GameOver {
		return "GameOver"
	}
	return "AwaitingMove"
}

// FirstMover is the colour that opens a standard game.
const FirstMover = chess.White

// Result describes an accepted move.
type Result struct {
	Mover      chess.Colour
	Piece      chess.Piece
	Move       engine.Move
	Captured   chess.Piece
	DidCapture bool
	// Check is true if the side now to move is in check.
	Check bool
	// GameOver is true if the side now to move has no legal move; Mover
	// has won.
	GameOver bool
}

// Game holds the live board and the turn state. The board is owned by the
// Game; callers only ever see copies.
type Game struct {
	board  *chess.Board
	turn   chess.Colour
	state  State
	winner chess.Colour
}

// New creates a game in the standard starting position with White to move.
func New() *Game {
	return &Game{
		board: chess.NewInitialBoard(),
		turn:  FirstMover,
		state: AwaitingMove,
	}
}

// NewFromBoard starts a game from a copy of board with toMove to play. If
// toMove already has no legal move the game starts over, won by the other
// side.
func NewFromBoard(board *chess.Board, toMove chess.Colour) *Game {
	g := &Game{
		board: board.Copy(),
		turn:  toMove,
		state: AwaitingMove,
	}
	if engine.IsCheckmate(g.board, toMove) {
		g.state = GameOver
		g.winner = toMove.Opposite()
	}
	return g
}

// Move submits a move for the side to play. An illegal move returns an
// error wrapping errors.ErrIllegalMove and leaves the game unchanged. Once
// the game is over every move returns errors.ErrGameOver.
func (g *Game) Move(from, to chess.Position) (Result, error) {
	if g.state == GameOver {
		return Result{}, &errors.MoveError{Err: errors.ErrGameOver, From: from.String(), To: to.String()}
	}

	mover := g.turn
	if !engine.IsLegal(g.board, mover, from, to) {
		return Result{}, &errors.MoveError{
			Err:    errors.ErrIllegalMove,
			Colour: mover.String(),
			From:   from.String(),
			To:     to.String(),
		}
	}

	piece, _ := g.board.At(from)
	captured, didCapture, _ := engine.ApplyMove(g.board, from, to)

	res := Result{
		Mover:      mover,
		Piece:      piece,
		Move:       engine.Move{From: from, To: to},
		Captured:   captured,
		DidCapture: didCapture,
	}

	opponent := mover.Opposite()
	res.Check = engine.IsInCheck(g.board, opponent)
	if engine.IsCheckmate(g.board, opponent) {
		g.state = GameOver
		g.winner = mover
		res.GameOver = true
		return res, nil
	}

	g.turn = opponent
	return res, nil
}

// Turn returns the colour to move. After the game ends it is the colour
// that was to move when it ended, i.e. the loser.
func (g *Game) Turn() chess.Colour {
	if g.state == GameOver {
		return g.winner.Opposite()
	}
	return g.turn
}

// State returns the current phase.
func (g *Game) State() State {
	return g.state
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.state == GameOver
}

// Winner returns the winning colour once the game is over.
func (g *Game) Winner() (chess.Colour, bool) {
	if g.state != GameOver {
		return chess.White, false
	}
	return g.winner, true
}

// Board returns a copy of the live board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return engine.IsInCheck(g.board, g.Turn())
}

// LegalDestinations lists where the piece on from may move. It is empty
// when the square does not hold a piece of the side to move or the game is
// over.
func (g *Game) LegalDestinations(from chess.Position) []chess.Position {
	if g.state == GameOver || !g.board.Occupancy(from).Holds(g.turn) {
		return nil
	}
	return engine.LegalDestinations(g.board, from)
}
