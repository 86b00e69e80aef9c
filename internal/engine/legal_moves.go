package engine

import "github.com/atseng3/w2d2/internal/chess"

// HasLegalMoves returns true if the given colour has at least one legal move.
// It stops at the first one found.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, from := range board.Pieces(colour) {
		for _, to := range chess.Squares() {
			if tryMove(board, from, to, colour) {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns every legal move for colour, ordered by origin and then
// destination in row-major order.
func LegalMoves(board *chess.Board, colour chess.Colour) []Move {
	var moves []Move
	for _, from := range board.Pieces(colour) {
		for _, to := range legalDestinations(board, from, colour) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// LegalDestinations returns the squares the piece on from may legally move
// to. It is empty for a vacant square.
func LegalDestinations(board *chess.Board, from chess.Position) []chess.Position {
	piece, ok := board.At(from)
	if !ok {
		return nil
	}
	return legalDestinations(board, from, piece.Colour)
}

func legalDestinations(board *chess.Board, from chess.Position, colour chess.Colour) []chess.Position {
	var out []chess.Position
	for _, to := range chess.Squares() {
		if tryMove(board, from, to, colour) {
			out = append(out, to)
		}
	}
	return out
}

// tryMove applies every screen to a single candidate: geometry, ownership,
// and self-check on a copied board.
func tryMove(board *chess.Board, from, to chess.Position, colour chess.Colour) bool {
	return CanReach(board, from, to) &&
		!BlatantlyIllegal(board, from, to, colour) &&
		!InCheckAfter(board, colour, from, to)
}
