package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardLayout(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, 16, b.Count(White))
	assert.Equal(t, 16, b.Count(Black))

	for y := 2; y <= 5; y++ {
		for x := 0; x < Size; x++ {
			assert.True(t, b[y][x].IsEmpty(), "(%d,%d) should be empty", x, y)
		}
	}

	pawns := map[Player]int{}
	for _, y := range []int{1, 6} {
		for x := 0; x < Size; x++ {
			p, ok := b[y][x].Piece()
			require.True(t, ok)
			assert.Equal(t, Pawn, p.Kind)
			pawns[p.Owner]++
		}
	}
	assert.Equal(t, map[Player]int{White: 8, Black: 8}, pawns)

	want := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x, kind := range want {
		assert.Equal(t, Occupied(Piece{Kind: kind, Owner: Black}), b[0][x])
		assert.Equal(t, Occupied(Piece{Kind: kind, Owner: White}), b[7][x])
	}
}

func TestBoardAt(t *testing.T) {
	b := NewBoard()

	o, err := b.At(Position{X: 4, Y: 7})
	require.NoError(t, err)
	assert.Equal(t, Occupied(Piece{Kind: King, Owner: White}), o)

	o, err = b.At(Position{X: 4, Y: 4})
	require.NoError(t, err)
	assert.True(t, o.IsEmpty())

	for _, p := range []Position{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		_, err := b.At(p)
		assert.True(t, errors.Is(err, ErrOutOfRange), "%v", p)
	}
}

func TestBoardIsOpponent(t *testing.T) {
	b := NewBoard()
	assert.True(t, b.IsOpponent(Position{X: 0, Y: 0}, White))
	assert.False(t, b.IsOpponent(Position{X: 0, Y: 0}, Black))
	assert.False(t, b.IsOpponent(Position{X: 3, Y: 3}, White), "empty tiles are never opponents")
	assert.False(t, b.IsOpponent(Position{X: 9, Y: 3}, White))
}

func TestBoardSetCopies(t *testing.T) {
	b := NewBoard()
	c := b
	require.NoError(t, c.Set(Position{X: 0, Y: 0}, Occupant{}))

	assert.False(t, b[0][0].IsEmpty(), "copies must not share tiles")
	assert.True(t, c[0][0].IsEmpty())

	err := c.Set(Position{X: 0, Y: 8}, Occupant{})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestOccupant(t *testing.T) {
	var empty Occupant
	assert.True(t, empty.IsEmpty())
	_, ok := empty.Piece()
	assert.False(t, ok)
	assert.False(t, empty.OwnedBy(White))
	assert.False(t, empty.OwnedBy(Black))

	o := Occupied(Piece{Kind: Queen, Owner: Black})
	assert.False(t, o.IsEmpty())
	assert.True(t, o.OwnedBy(Black))
	assert.False(t, o.OwnedBy(White))
	assert.Equal(t, "Black queen", o.String())
}

func TestPieceSymbols(t *testing.T) {
	assert.Equal(t, byte('K'), Piece{Kind: King, Owner: White}.Letter())
	assert.Equal(t, byte('n'), Piece{Kind: Knight, Owner: Black}.Letter())
	assert.Equal(t, '♔', Piece{Kind: King, Owner: White}.Glyph())
	assert.Equal(t, '♟', Piece{Kind: Pawn, Owner: Black}.Glyph())
	assert.Equal(t, Black, White.Opponent())
	assert.Equal(t, White, Black.Opponent())
}

func TestToASCII(t *testing.T) {
	b := NewBoard()
	want := "  a b c d e f g h\n" +
		"8 r n b q k b n r  8\n" +
		"7 p p p p p p p p  7\n" +
		"6 . . . . . . . .  6\n" +
		"5 . . . . . . . .  5\n" +
		"4 . . . . . . . .  4\n" +
		"3 . . . . . . . .  3\n" +
		"2 P P P P P P P P  2\n" +
		"1 R N B Q K B N R  1\n" +
		"  a b c d e f g h"
	assert.Equal(t, want, b.ToASCII())
}

func TestLabels(t *testing.T) {
	tests := []struct {
		label string
		pos   Position
	}{
		{"a8", Position{X: 0, Y: 0}},
		{"h1", Position{X: 7, Y: 7}},
		{"e2", Position{X: 4, Y: 6}},
		{"b8", Position{X: 1, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.label, Label(tt.pos))
			assert.Equal(t, tt.label, tt.pos.String())
			got, err := ParseLabel(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.pos, got)
		})
	}

	got, err := ParseLabel(" E4 ")
	require.NoError(t, err)
	assert.Equal(t, Position{X: 4, Y: 4}, got)

	for _, bad := range []string{"", "e", "i1", "a0", "a9", "e22", "zz"} {
		_, err := ParseLabel(bad)
		assert.ErrorIs(t, err, ErrInvalidLabel, bad)
	}
	assert.Equal(t, "invalid", Position{X: 8, Y: 0}.String())
}
