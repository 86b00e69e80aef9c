package testutil

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atseng3/w2d2/internal/chess"
	"github.com/atseng3/w2d2/internal/notation"
)

// Sq parses an algebraic square such as "e2", failing the test on error.
func Sq(t *testing.T, square string) chess.Position {
	t.Helper()
	p, err := notation.ParsePosition(square)
	if err != nil {
		t.Fatalf("bad square %q: %v", square, err)
	}
	return p
}

// BoardWith builds a board holding exactly the given pieces, keyed by
// algebraic square.
func BoardWith(t *testing.T, pieces map[string]chess.Piece) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for square, piece := range pieces {
		b.Place(Sq(t, square), piece)
	}
	return b
}

// Layout renders the board as eight strings, rank 8 first, using FEN
// letters for pieces and '.' for empty squares.
func Layout(b *chess.Board) []string {
	rows := make([]string, 0, chess.BoardSize)
	for row := 0; row < chess.BoardSize; row++ {
		var sb strings.Builder
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := b.At(chess.Pos(row, col))
			if !ok {
				sb.WriteByte('.')
				continue
			}
			letter := piece.Kind.Letter()
			if piece.Colour == chess.Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// AssertLayout compares a board against an expected Layout and reports a
// row-by-row diff.
func AssertLayout(t *testing.T, got *chess.Board, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, Layout(got)); diff != "" {
		report(t, "board mismatch (-want +got):\n"+diff, msgAndArgs...)
	}
}
