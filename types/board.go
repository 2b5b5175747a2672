package types

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of files and ranks on the board.
const Size = 8

// ErrOutOfRange is returned when a position lies outside the board.
var ErrOutOfRange = errors.New("position out of range")

// Board is the 8x8 grid of tiles, indexed as Board[y][x].
// It is a value type: assigning a Board copies every tile.
type Board [Size][Size]Occupant

var backRow = [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the canonical opening position.
// Black occupies ranks 0 and 1, White ranks 6 and 7.
func NewBoard() Board {
	var b Board
	for x := 0; x < Size; x++ {
		b[0][x] = Occupied(Piece{Kind: backRow[x], Owner: Black})
		b[1][x] = Occupied(Piece{Kind: Pawn, Owner: Black})
		b[6][x] = Occupied(Piece{Kind: Pawn, Owner: White})
		b[7][x] = Occupied(Piece{Kind: backRow[x], Owner: White})
	}
	return b
}

// At returns the occupant of the tile at p.
func (b *Board) At(p Position) (Occupant, error) {
	if !p.Valid() {
		return Occupant{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, p.X, p.Y)
	}
	return b[p.Y][p.X], nil
}

// IsOpponent returns true if p holds a piece not owned by player.
// Empty and out-of-range tiles are never opponents.
func (b *Board) IsOpponent(p Position, player Player) bool {
	o, err := b.At(p)
	if err != nil || o.IsEmpty() {
		return false
	}
	return !o.OwnedBy(player)
}

// Set places an occupant on the tile at p.
func (b *Board) Set(p Position, o Occupant) error {
	if !p.Valid() {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, p.X, p.Y)
	}
	b[p.Y][p.X] = o
	return nil
}

// Count returns the number of pieces owned by player.
func (b *Board) Count(player Player) int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b[y][x].OwnedBy(player) {
				n++
			}
		}
	}
	return n
}

// ToASCII creates an ASCII representation of the board with rank 8 at the top.
func (b *Board) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")

	for y := 0; y < Size; y++ {
		rank := Size - y
		sb.WriteString(fmt.Sprintf("%d ", rank))
		for x := 0; x < Size; x++ {
			piece, ok := b[y][x].Piece()
			if !ok {
				sb.WriteString(". ")
			} else {
				sb.WriteString(fmt.Sprintf("%c ", piece.Letter()))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", rank))
	}
	sb.WriteString("  a b c d e f g h")

	return sb.String()
}
