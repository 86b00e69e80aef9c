package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/atseng3/w2d2/internal/chess"
	"github.com/atseng3/w2d2/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
// Only the placement and side-to-move fields are interpreted; castling,
// en passant and the clocks are accepted and ignored.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// SAN piece characters for FEN strings (always English).
var sanPieceChars = map[rune]chess.Kind{
	'P': chess.Pawn,
	'N': chess.Knight,
	'B': chess.Bishop,
	'R': chess.Rook,
	'Q': chess.Queen,
	'K': chess.King,
}

// ConvertFENCharToPiece converts a FEN character to a coloured piece.
// Upper case is White, lower case Black.
func ConvertFENCharToPiece(c rune) (chess.Piece, bool) {
	kind, ok := sanPieceChars[unicode.ToUpper(c)]
	if !ok {
		return chess.Piece{}, false
	}
	colour := chess.White
	if unicode.IsLower(c) {
		colour = chess.Black
	}
	return chess.Piece{Kind: kind, Colour: colour}, true
}

// PieceToFENChar returns the FEN letter for a coloured piece.
func PieceToFENChar(piece chess.Piece) byte {
	letter := piece.Kind.Letter()
	if piece.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string and returns it with the
// side to move. A missing side-to-move field means White.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// The first rank listed is row 0.
func parsePiecePositions(board *chess.Board, positions string) error {
	row, col := 0, 0

	for _, c := range positions {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > chess.BoardSize {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
		default:
			piece, ok := ConvertFENCharToPiece(c)
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			pos := chess.Pos(row, col)
			if !pos.InBounds() {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
			board.Place(pos, piece)
			col++
		}
	}

	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return fmt.Errorf("placement does not cover the board: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// BoardToFEN converts a board and side to move to a FEN string. Castling
// and en passant are always "-"; the clocks are written as "0 1".
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := board.At(chess.Pos(row, col))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceToFENChar(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
