// Package notation converts between algebraic square names and board
// positions. Files a-h map to columns 0-7; ranks 8 down to 1 map to rows
// 0 to 7.
package notation

import (
	"strings"

	"github.com/atseng3/w2d2/internal/chess"
	"github.com/atseng3/w2d2/internal/errors"
)

// ParsePosition parses a square such as "e2". Upper-case files are
// accepted.
func ParsePosition(s string) (chess.Position, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return chess.Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Expected: "file a-h followed by rank 1-8",
		}
	}

	file := s[0] | 0x20 // fold to lower case
	rank := s[1]
	if file < chess.FirstCol || file > chess.LastCol || rank < chess.FirstRank || rank > chess.LastRank {
		return chess.Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Expected: "file a-h followed by rank 1-8",
		}
	}

	return chess.Pos(int(chess.LastRank-rank), int(file-chess.FirstCol)), nil
}

// FormatPosition returns the algebraic name of p.
func FormatPosition(p chess.Position) string {
	return p.String()
}

// ParseMove parses a move written as two squares, either separated by
// whitespace or a hyphen ("e2 e4", "e2-e4") or run together ("e2e4").
func ParseMove(s string) (from, to chess.Position, err error) {
	fields := splitMove(s)
	if len(fields) != 2 {
		return from, to, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    strings.TrimSpace(s),
			Expected: "two squares, e.g. \"e2 e4\"",
		}
	}

	if from, err = ParsePosition(fields[0]); err != nil {
		return from, to, err
	}
	if to, err = ParsePosition(fields[1]); err != nil {
		return from, to, err
	}
	return from, to, nil
}

func splitMove(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '-'
	})
	if len(fields) == 1 && len(fields[0]) == 4 {
		return []string{fields[0][:2], fields[0][2:]}
	}
	return fields
}
