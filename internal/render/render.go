// Package render draws a board as text.
package render

import (
	"bufio"
	"io"
	"unicode"

	"github.com/atseng3/w2d2/internal/chess"
)

// GlyphStyle selects how pieces are drawn.
type GlyphStyle int

const (
	// UnicodeGlyphs draws the chess symbols U+2654..U+265F.
	UnicodeGlyphs GlyphStyle = iota
	// ASCIIGlyphs draws FEN letters: upper case White, lower case Black.
	ASCIIGlyphs
)

// String returns the string representation of a glyph style.
func (g GlyphStyle) String() string {
	if g == ASCIIGlyphs {
		return "ascii"
	}
	return "unicode"
}

// EmptySquare is drawn for a square with no piece.
const EmptySquare = '.'

// Footer is the file label line printed under the board.
const Footer = "  a b c d e f g h"

// ANSI escape sequences used when colour is enabled.
const (
	ansiWhite = "\x1b[97m"
	ansiBlack = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

// Options controls rendering.
type Options struct {
	Glyphs GlyphStyle
	Colour bool
}

var unicodeGlyphs = [chess.NumKinds][2]rune{
	chess.Pawn:   {'♙', '♟'},
	chess.Knight: {'♘', '♞'},
	chess.Bishop: {'♗', '♝'},
	chess.Rook:   {'♖', '♜'},
	chess.Queen:  {'♕', '♛'},
	chess.King:   {'♔', '♚'},
}

// Glyph returns the character for a piece in the given style.
func Glyph(piece chess.Piece, style GlyphStyle) rune {
	if piece.Kind < 0 || piece.Kind >= chess.NumKinds {
		return '?'
	}
	if style == ASCIIGlyphs {
		letter := rune(piece.Kind.Letter())
		if piece.Colour == chess.Black {
			return unicode.ToLower(letter)
		}
		return letter
	}
	return unicodeGlyphs[piece.Kind][piece.Colour]
}

// Render writes the board with rank labels 8 down to 1 and the file footer.
// Each row reads "8 r n b q k b n r ", matching the footer's spacing.
func Render(w io.Writer, board *chess.Board, opts Options) error {
	bw := bufio.NewWriter(w)
	for row := 0; row < chess.BoardSize; row++ {
		bw.WriteByte(byte(chess.LastRank) - byte(row))
		bw.WriteByte(' ')
		for col := 0; col < chess.BoardSize; col++ {
			writeSquare(bw, board, chess.Pos(row, col), opts)
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	bw.WriteString(Footer)
	bw.WriteByte('\n')
	return bw.Flush()
}

func writeSquare(bw *bufio.Writer, board *chess.Board, p chess.Position, opts Options) {
	piece, ok := board.At(p)
	if !ok {
		bw.WriteRune(EmptySquare)
		return
	}
	if !opts.Colour {
		bw.WriteRune(Glyph(piece, opts.Glyphs))
		return
	}
	if piece.Colour == chess.White {
		bw.WriteString(ansiWhite)
	} else {
		bw.WriteString(ansiBlack)
	}
	bw.WriteRune(Glyph(piece, opts.Glyphs))
	bw.WriteString(ansiReset)
}
