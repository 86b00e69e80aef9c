// Package chess provides core chess types and operations.
package chess

import "strconv"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row step a pawn of this colour advances by.
// White starts on rows 6-7 and moves towards row 0.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a coloured piece. Pieces never change kind or colour and do not
// know where they stand; the board grid is the only record of location.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// Occupancy is the three-way answer to "what is on this square".
type Occupancy int

const (
	Vacant Occupancy = iota
	HeldByWhite
	HeldByBlack
)

// OccupancyOf returns the occupancy a piece of the given colour produces.
func OccupancyOf(c Colour) Occupancy {
	if c == White {
		return HeldByWhite
	}
	return HeldByBlack
}

// Holds reports whether the square holds a piece of colour c.
func (o Occupancy) Holds(c Colour) bool {
	return o != Vacant && o == OccupancyOf(c)
}

// String returns the string representation of an occupancy.
func (o Occupancy) String() string {
	switch o {
	case HeldByWhite:
		return "White"
	case HeldByBlack:
		return "Black"
	default:
		return "Vacant"
	}
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FirstRank = '1'
	LastRank  = FirstRank + BoardSize - 1
	FirstCol  = 'a'
	LastCol   = FirstCol + BoardSize - 1
)

// Vector is a displacement between two positions.
type Vector struct {
	DRow int
	DCol int
}

// Position is a board square. Row 0 is Black's back rank (rank 8) and
// row 7 is White's back rank (rank 1); column 0 is the a-file.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// InBounds reports whether the position lies on the 8x8 board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Add returns the position offset by v.
func (p Position) Add(v Vector) Position {
	return Position{Row: p.Row + v.DRow, Col: p.Col + v.DCol}
}

// Sub returns the displacement from q to p.
func (p Position) Sub(q Position) Vector {
	return Vector{DRow: p.Row - q.Row, DCol: p.Col - q.Col}
}

// String returns the algebraic name of the square, e.g. "e4", or
// "(row,col)" for positions off the board.
func (p Position) String() string {
	if !p.InBounds() {
		return "(" + strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col) + ")"
	}
	return string([]byte{byte(FirstCol + p.Col), byte(LastRank - p.Row)})
}
