package engine

import "github.com/atseng3/w2d2/internal/chess"

// InCheckAfter returns true if colour's king would be attacked once the
// piece on from has moved to to. The move is played on an independent copy;
// board itself is never modified. A board without a king of colour is
// never in check.
func InCheckAfter(board *chess.Board, colour chess.Colour, from, to chess.Position) bool {
	snapshot := board.Copy()
	ApplyMove(snapshot, from, to)
	return IsInCheck(snapshot, colour)
}

// IsInCheck returns true if the given colour's king is in check on the
// board as it stands.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingPos, ok := board.Find(chess.Piece{Kind: chess.King, Colour: colour})
	if !ok {
		return false
	}
	return isSquareAttacked(board, kingPos, colour.Opposite())
}

// isSquareAttacked returns true if any piece of byColour can reach target.
// A reach that is blatantly illegal for byColour does not count.
func isSquareAttacked(board *chess.Board, target chess.Position, byColour chess.Colour) bool {
	for _, from := range board.Pieces(byColour) {
		if CanReach(board, from, target) && !BlatantlyIllegal(board, from, target, byColour) {
			return true
		}
	}
	return false
}
