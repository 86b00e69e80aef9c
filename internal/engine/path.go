package engine

import "github.com/atseng3/w2d2/internal/chess"

// isPathClear checks that every square strictly between from and to,
// stepping by dir, is empty. The destination itself is not examined.
func isPathClear(board *chess.Board, from, to chess.Position, dir chess.Vector) bool {
	for pos := from.Add(dir); pos != to; pos = pos.Add(dir) {
		if !pos.InBounds() {
			return false
		}
		if !board.IsEmpty(pos) {
			return false
		}
	}
	return true
}
