package chess

// cell is one square of the grid: a piece, or nothing.
type cell struct {
	piece    Piece
	occupied bool
}

// Board represents the 8x8 grid. It is a plain value: assigning or copying
// a Board copies every square, so snapshots never alias the original.
type Board struct {
	// squares[row][col]; see Position for orientation.
	squares [BoardSize][BoardSize]cell
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// backRank is the piece order on both back ranks, from the a-file.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition sets up the standard chess starting position.
// Black occupies rows 0-1 and White rows 6-7.
func (b *Board) SetupInitialPosition() {
	b.squares = [BoardSize][BoardSize]cell{}

	for col := 0; col < BoardSize; col++ {
		b.Place(Pos(0, col), B(backRank[col]))
		b.Place(Pos(1, col), B(Pawn))
		b.Place(Pos(6, col), W(Pawn))
		b.Place(Pos(7, col), W(backRank[col]))
	}
}

// At returns the piece at p and whether the square is occupied.
// Positions off the board are reported as empty.
func (b *Board) At(p Position) (Piece, bool) {
	if !p.InBounds() {
		return Piece{}, false
	}
	c := b.squares[p.Row][p.Col]
	return c.piece, c.occupied
}

// IsEmpty reports whether p is on the board and holds no piece.
func (b *Board) IsEmpty(p Position) bool {
	return p.InBounds() && !b.squares[p.Row][p.Col].occupied
}

// Occupancy returns which colour, if any, holds p.
func (b *Board) Occupancy(p Position) Occupancy {
	piece, ok := b.At(p)
	if !ok {
		return Vacant
	}
	return OccupancyOf(piece.Colour)
}

// Place puts a piece on p, replacing any occupant.
// Placing off the board is a no-op.
func (b *Board) Place(p Position, piece Piece) {
	if !p.InBounds() {
		return
	}
	b.squares[p.Row][p.Col] = cell{piece: piece, occupied: true}
}

// Clear empties p. Clearing off the board is a no-op.
func (b *Board) Clear(p Position) {
	if !p.InBounds() {
		return
	}
	b.squares[p.Row][p.Col] = cell{}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Find returns the first square, in row-major order, holding piece.
func (b *Board) Find(piece Piece) (Position, bool) {
	for _, p := range Squares() {
		if got, ok := b.At(p); ok && got == piece {
			return p, true
		}
	}
	return Position{}, false
}

// Pieces returns the squares holding pieces of colour c, in row-major order.
func (b *Board) Pieces(c Colour) []Position {
	var out []Position
	for _, p := range Squares() {
		if b.Occupancy(p).Holds(c) {
			out = append(out, p)
		}
	}
	return out
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for _, p := range Squares() {
		if _, ok := b.At(p); ok {
			n++
		}
	}
	return n
}

var allSquares = func() []Position {
	squares := make([]Position, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			squares = append(squares, Pos(row, col))
		}
	}
	return squares
}()

// Squares returns all 64 positions in row-major order.
// The returned slice is shared and must not be modified.
func Squares() []Position {
	return allSquares
}
