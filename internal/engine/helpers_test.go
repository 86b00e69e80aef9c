package engine

import (
	"testing"

	"github.com/atseng3/w2d2/internal/chess"
	"github.com/atseng3/w2d2/internal/testutil"
)

// mustFEN builds a board from a FEN placement, failing the test on error.
func mustFEN(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, _, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// play applies coordinate moves such as "e2e4" without validation.
func play(t *testing.T, board *chess.Board, moves ...string) {
	t.Helper()
	for _, m := range moves {
		from, to := testutil.Sq(t, m[:2]), testutil.Sq(t, m[2:])
		if _, _, ok := ApplyMove(board, from, to); !ok {
			t.Fatalf("ApplyMove(%s) failed", m)
		}
	}
}
