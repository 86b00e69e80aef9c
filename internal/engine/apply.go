package engine

import "github.com/atseng3/w2d2/internal/chess"

// ApplyMove relocates the piece on from to to, removing whatever stood on
// to. It performs no legality checks; callers validate first. It returns
// the captured piece, if any, and false when from is empty or either square
// is off the board, in which case the board is left untouched.
func ApplyMove(board *chess.Board, from, to chess.Position) (captured chess.Piece, didCapture bool, ok bool) {
	if !from.InBounds() || !to.InBounds() {
		return chess.Piece{}, false, false
	}
	piece, occupied := board.At(from)
	if !occupied {
		return chess.Piece{}, false, false
	}

	captured, didCapture = board.At(to)

	board.Clear(from)
	board.Place(to, piece)

	return captured, didCapture, true
}
