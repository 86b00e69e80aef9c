package engine

import (
	"testing"

	"github.com/atseng3/w2d2/internal/chess"
	"github.com/atseng3/w2d2/internal/testutil"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial white", InitialFEN, chess.White, false},
		{"initial black", InitialFEN, chess.Black, false},
		{"rook on open file", "4r2k/8/8/8/8/8/8/4K3 w - - 0 1", chess.White, true},
		{"rook blocked by pawn", "4r2k/8/8/8/8/8/4P3/4K3 w - - 0 1", chess.White, false},
		{"bishop on diagonal", "7k/8/8/b7/8/8/8/4K3 w - - 0 1", chess.White, true},
		{"knight check", "7k/8/8/8/8/3n4/8/4K3 w - - 0 1", chess.White, true},
		{"pawn check", "7k/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.White, true},
		{"pawn straight ahead does not check", "7k/8/8/8/8/8/4p3/4K3 w - - 0 1", chess.White, false},
		{"king adjacent", "8/8/8/8/8/8/3k4/4K3 w - - 0 1", chess.White, true},
		{"black in check from queen", "4k3/8/8/8/8/8/8/4QK2 b - - 0 1", chess.Black, true},
		{"own pieces do not check", "7k/8/8/8/8/8/3R4/4K3 w - - 0 1", chess.White, false},
		{"no king", "7k/8/8/8/8/8/8/r7 w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			if got := IsInCheck(b, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestInCheckAfter(t *testing.T) {
	t.Run("moving a blocker exposes the king", func(t *testing.T) {
		b := mustFEN(t, "4r2k/8/8/8/8/8/4B3/4K3 w - - 0 1")
		if IsInCheck(b, chess.White) {
			t.Fatal("white in check before the move")
		}
		if !InCheckAfter(b, chess.White, testutil.Sq(t, "e2"), testutil.Sq(t, "d3")) {
			t.Error("InCheckAfter(e2-d3) = false, want true")
		}
	})

	t.Run("interposing resolves an existing check", func(t *testing.T) {
		b := mustFEN(t, "4r2k/8/8/8/R7/8/8/4K3 w - - 0 1")
		if !IsInCheck(b, chess.White) {
			t.Fatal("white not in check before the move")
		}
		if InCheckAfter(b, chess.White, testutil.Sq(t, "a4"), testutil.Sq(t, "e4")) {
			t.Error("InCheckAfter(a4-e4) = true, want false")
		}
		if !InCheckAfter(b, chess.White, testutil.Sq(t, "a4"), testutil.Sq(t, "a5")) {
			t.Error("InCheckAfter(a4-a5) = false, want true")
		}
	})

	t.Run("capturing the attacker resolves check", func(t *testing.T) {
		b := mustFEN(t, "R3r2k/8/8/8/8/8/8/4K3 w - - 0 1")
		if InCheckAfter(b, chess.White, testutil.Sq(t, "a8"), testutil.Sq(t, "e8")) {
			t.Error("InCheckAfter(a8xe8) = true, want false")
		}
	})

	t.Run("king move evaluated at its destination", func(t *testing.T) {
		b := mustFEN(t, "7k/8/8/8/8/8/3r4/4K3 w - - 0 1")
		if !InCheckAfter(b, chess.White, testutil.Sq(t, "e1"), testutil.Sq(t, "f2")) {
			t.Error("InCheckAfter(e1-f2) = false, want true")
		}
		if InCheckAfter(b, chess.White, testutil.Sq(t, "e1"), testutil.Sq(t, "f1")) {
			t.Error("InCheckAfter(e1-f1) = true, want false")
		}
	})

	t.Run("live board untouched", func(t *testing.T) {
		b := mustFEN(t, "4r2k/8/8/8/8/8/4B3/4K3 w - - 0 1")
		before := testutil.Layout(b)
		InCheckAfter(b, chess.White, testutil.Sq(t, "e2"), testutil.Sq(t, "d3"))
		testutil.AssertLayout(t, b, before, "InCheckAfter mutated the board")
	})
}

func TestIsCheckmate(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial white", InitialFEN, chess.White, false},
		{"initial black", InitialFEN, chess.Black, false},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", chess.Black, true},
		{"back rank escape by capture", "R5k1/5ppp/8/8/8/8/8/r5K1 b - - 0 1", chess.Black, false},
		{"smothered mate", "6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1", chess.Black, true},
		{"check with escape square", "4r2k/8/8/8/8/8/8/4K3 w - - 0 1", chess.White, false},
		{"queen and king mate", "k7/1Q6/2K5/8/8/8/8/8 b - - 0 1", chess.Black, true},
		{"stalemate counts as mate", "7k/8/6Q1/8/8/8/8/K7 b - - 0 1", chess.Black, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			if got := IsCheckmate(b, tt.colour); got != tt.want {
				t.Errorf("IsCheckmate(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestIsCheckmate_FoolsMate(t *testing.T) {
	b := chess.NewInitialBoard()
	moves := []string{"f2f3", "e7e5", "g2g4", "d8h4"}

	for i, m := range moves {
		from, to := testutil.Sq(t, m[:2]), testutil.Sq(t, m[2:])
		colour := chess.White
		if i%2 == 1 {
			colour = chess.Black
		}
		if !IsLegal(b, colour, from, to) {
			t.Fatalf("move %d (%s) rejected", i+1, m)
		}
		if IsCheckmate(b, colour) {
			t.Fatalf("%v reported mated before move %d", colour, i+1)
		}
		ApplyMove(b, from, to)
	}

	testutil.AssertTrue(t, IsInCheck(b, chess.White), "white in check after Qh4")
	testutil.AssertTrue(t, IsCheckmate(b, chess.White), "white mated after Qh4")
	testutil.AssertFalse(t, IsCheckmate(b, chess.Black), "black not mated after Qh4")
}

func TestIsCheckmate_StalemateNotCheck(t *testing.T) {
	b := mustFEN(t, "7k/8/6Q1/8/8/8/8/K7 b - - 0 1")
	testutil.AssertFalse(t, IsInCheck(b, chess.Black))
	testutil.AssertFalse(t, HasLegalMoves(b, chess.Black))
	testutil.AssertTrue(t, IsCheckmate(b, chess.Black))
}
