package engine

import "github.com/atseng3/w2d2/internal/chess"

// IsCheckmate returns true if colour has no move that passes geometry,
// ownership and self-check screening. A side with no legal move while not
// in check is reported the same way; stalemate is not distinguished.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return !HasLegalMoves(board, colour)
}
