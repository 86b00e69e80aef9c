package engine

import "github.com/atseng3/w2d2/internal/chess"

// Family groups piece kinds by how their movement is evaluated.
type Family int

const (
	Sliding  Family = iota // any distance along a direction, blocked by occupants
	Stepping               // one hop to a fixed offset
	PawnMove               // colour-dependent forward moves and diagonal captures
)

// Movement is the movement rule of a piece kind: a family plus the
// direction or offset vectors it uses. Pawns carry no vectors; their
// patterns depend on colour.
type Movement struct {
	Family  Family
	Vectors []chess.Vector
}

var (
	diagonals = []chess.Vector{{DRow: 1, DCol: 1}, {DRow: 1, DCol: -1}, {DRow: -1, DCol: 1}, {DRow: -1, DCol: -1}}

	orthogonals = []chess.Vector{{DRow: 0, DCol: -1}, {DRow: 1, DCol: 0}, {DRow: 0, DCol: 1}, {DRow: -1, DCol: 0}}

	allDirections = append(append([]chess.Vector{}, diagonals...), orthogonals...)

	knightOffsets = []chess.Vector{
		{DRow: 2, DCol: 1}, {DRow: 1, DCol: 2}, {DRow: 2, DCol: -1}, {DRow: -1, DCol: 2},
		{DRow: 1, DCol: -2}, {DRow: -2, DCol: 1}, {DRow: -2, DCol: -1}, {DRow: -1, DCol: -2},
	}
)

// movements is indexed by chess.Kind.
var movements = [chess.NumKinds]Movement{
	chess.Pawn:   {Family: PawnMove},
	chess.Knight: {Family: Stepping, Vectors: knightOffsets},
	chess.Bishop: {Family: Sliding, Vectors: diagonals},
	chess.Rook:   {Family: Sliding, Vectors: orthogonals},
	chess.Queen:  {Family: Sliding, Vectors: allDirections},
	chess.King:   {Family: Stepping, Vectors: allDirections},
}

// MovementOf returns the movement rule for a piece kind.
func MovementOf(kind chess.Kind) Movement {
	if kind < 0 || kind >= chess.NumKinds {
		return Movement{Family: Stepping}
	}
	return movements[kind]
}

// CanReach reports whether the piece standing on from could move to to,
// ignoring check. It does not look at whose turn it is or whether to holds
// a friendly piece; callers screen those with BlatantlyIllegal. An empty
// origin or a square off the board is never reachable.
func CanReach(board *chess.Board, from, to chess.Position) bool {
	piece, ok := board.At(from)
	if !ok || !to.InBounds() || from == to {
		return false
	}

	m := MovementOf(piece.Kind)
	delta := to.Sub(from)

	switch m.Family {
	case Sliding:
		dir, ok := unitDirection(delta)
		if !ok || !containsVector(m.Vectors, dir) {
			return false
		}
		return isPathClear(board, from, to, dir)

	case Stepping:
		return containsVector(m.Vectors, delta)

	case PawnMove:
		return canPawnMove(board, piece.Colour, from, to, delta)
	}

	return false
}

// canPawnMove checks the four pawn patterns for colour. The double step is
// allowed from any rank.
func canPawnMove(board *chess.Board, colour chess.Colour, from, to chess.Position, delta chess.Vector) bool {
	fwd := colour.Forward()

	switch delta {
	case chess.Vector{DRow: 2 * fwd, DCol: 0}:
		oneAhead := from.Add(chess.Vector{DRow: fwd})
		return board.IsEmpty(oneAhead) && board.IsEmpty(to)

	case chess.Vector{DRow: fwd, DCol: 0}:
		return board.IsEmpty(to)

	case chess.Vector{DRow: fwd, DCol: -1}, chess.Vector{DRow: fwd, DCol: 1}:
		return board.Occupancy(to).Holds(colour.Opposite())
	}

	return false
}

// unitDirection reduces delta to a unit step when it is an exact multiple
// of one. Knight-like displacements have no unit direction.
func unitDirection(delta chess.Vector) (chess.Vector, bool) {
	k := max(abs(delta.DRow), abs(delta.DCol))
	if k == 0 || delta.DRow%k != 0 || delta.DCol%k != 0 {
		return chess.Vector{}, false
	}
	return chess.Vector{DRow: delta.DRow / k, DCol: delta.DCol / k}, true
}

func containsVector(vectors []chess.Vector, v chess.Vector) bool {
	for _, candidate := range vectors {
		if candidate == v {
			return true
		}
	}
	return false
}
