// Package engine provides chess move validation and board manipulation.
package engine

import (
	"github.com/atseng3/w2d2/internal/chess"
)

// Move is a proposed relocation from one square to another.
type Move struct {
	From chess.Position
	To   chess.Position
}

// String returns the move in coordinate form, e.g. "e2-e4".
func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// BlatantlyIllegal is the coarse screen applied before geometry and check
// evaluation. A move is blatantly illegal for colour if either endpoint is
// off the board, if from does not hold a piece of colour, or if to already
// holds a piece of colour.
func BlatantlyIllegal(board *chess.Board, from, to chess.Position, colour chess.Colour) bool {
	if !from.InBounds() || !to.InBounds() {
		return true
	}
	if !board.Occupancy(from).Holds(colour) {
		return true
	}
	return board.Occupancy(to).Holds(colour)
}

// ValidMove reports whether the piece on from may move to to: its
// movement rule must allow the geometry and the move must not leave its own
// king in check. Turn ownership and friendly destinations are screened by
// BlatantlyIllegal, which callers apply first.
func ValidMove(board *chess.Board, from, to chess.Position) bool {
	piece, ok := board.At(from)
	if !ok {
		return false
	}
	return CanReach(board, from, to) && !InCheckAfter(board, piece.Colour, from, to)
}

// IsLegal combines BlatantlyIllegal and ValidMove: the full test the turn
// controller applies to a move submitted by colour.
func IsLegal(board *chess.Board, colour chess.Colour, from, to chess.Position) bool {
	return !BlatantlyIllegal(board, from, to, colour) && ValidMove(board, from, to)
}
