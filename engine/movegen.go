package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"termchess/types"
)

type direction struct {
	dx, dy int
}

var (
	orthogonal = []direction{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	diagonal   = []direction{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
	royal      = append(append([]direction{}, orthogonal...), diagonal...)

	knightJumps = []direction{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
)

// MoveSet is the set of destinations a piece can reach.
type MoveSet map[types.Position]struct{}

// Contains returns true if p is in the set.
func (m MoveSet) Contains(p types.Position) bool {
	_, ok := m[p]
	return ok
}

// Len returns the number of destinations.
func (m MoveSet) Len() int {
	return len(m)
}

// Sorted returns the destinations ordered top to bottom, left to right.
func (m MoveSet) Sorted() []types.Position {
	out := make([]types.Position, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b types.Position) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

func (m MoveSet) add(p types.Position) {
	m[p] = struct{}{}
}

// Moves returns the pseudo-legal destinations of piece standing on from.
// Moves that leave the owner's king attacked are included; check is not a rule here.
func Moves(piece types.Piece, from types.Position, b *types.Board) MoveSet {
	moves := MoveSet{}
	if !from.Valid() {
		return moves
	}

	switch piece.Kind {
	case types.Pawn:
		pawnMoves(b, from, piece.Owner, moves)
	case types.Rook:
		castRays(b, from, piece.Owner, orthogonal, moves)
	case types.Bishop:
		castRays(b, from, piece.Owner, diagonal, moves)
	case types.Queen:
		castRays(b, from, piece.Owner, orthogonal, moves)
		castRays(b, from, piece.Owner, diagonal, moves)
	case types.Knight:
		offsets(b, from, piece.Owner, knightJumps, moves)
	case types.King:
		offsets(b, from, piece.Owner, royal, moves)
	default:
		panic(fmt.Sprintf("engine: unknown piece kind %d", int(piece.Kind)))
	}
	return moves
}

// admissible reports whether owner may land on p: on the board and not holding an own piece.
func admissible(b *types.Board, p types.Position, owner types.Player) bool {
	o, err := b.At(p)
	if err != nil {
		return false
	}
	return !o.OwnedBy(owner)
}

// castRays steps outward along each direction until leaving the board,
// hitting an own piece (excluded) or capturing an opponent (included, then stop).
func castRays(b *types.Board, from types.Position, owner types.Player, dirs []direction, moves MoveSet) {
	for _, d := range dirs {
		for p := from.Add(d.dx, d.dy); admissible(b, p, owner); p = p.Add(d.dx, d.dy) {
			moves.add(p)
			if b.IsOpponent(p, owner) {
				break
			}
		}
	}
}

func offsets(b *types.Board, from types.Position, owner types.Player, dirs []direction, moves MoveSet) {
	for _, d := range dirs {
		if p := from.Add(d.dx, d.dy); admissible(b, p, owner) {
			moves.add(p)
		}
	}
}

func isEmpty(b *types.Board, p types.Position) bool {
	o, err := b.At(p)
	return err == nil && o.IsEmpty()
}

// pawnStartRank is the rank index a pawn of the given side starts on.
func pawnStartRank(owner types.Player) int {
	if owner == types.White {
		return types.Size - 2
	}
	return 1
}

// pawnForward is the rank step a pawn of the given side advances by.
func pawnForward(owner types.Player) int {
	if owner == types.White {
		return -1
	}
	return 1
}

func pawnMoves(b *types.Board, from types.Position, owner types.Player, moves MoveSet) {
	fwd := pawnForward(owner)

	one := from.Add(0, fwd)
	if isEmpty(b, one) {
		moves.add(one)
		two := from.Add(0, 2*fwd)
		if from.Y == pawnStartRank(owner) && isEmpty(b, two) {
			moves.add(two)
		}
	}

	for _, dx := range []int{-1, 1} {
		if p := from.Add(dx, fwd); b.IsOpponent(p, owner) {
			moves.add(p)
		}
	}
}
