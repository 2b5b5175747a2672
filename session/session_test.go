package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termchess/engine"
	"termchess/types"
)

func click(t *testing.T, s *Session, labels ...string) engine.Transition {
	t.Helper()
	var last engine.Transition
	for _, l := range labels {
		p, err := types.ParseLabel(l)
		require.NoError(t, err)
		last = s.Click(p)
	}
	return last
}

func TestNewSession(t *testing.T) {
	s := New(zerolog.Nop())
	_, err := uuid.Parse(s.ID())
	require.NoError(t, err)
	assert.Equal(t, engine.InitialState(), s.State())
	assert.Zero(t, s.MoveNumber())
	assert.Empty(t, s.Captured(types.White))
}

func TestClickSelectsThenMoves(t *testing.T) {
	s := New(zerolog.Nop())

	var seen []engine.TransitionKind
	s.OnMove(func(tr engine.Transition, state engine.GameState) {
		seen = append(seen, tr.Kind)
	})

	tr := click(t, s, "e2")
	assert.Equal(t, engine.Selected, tr.Kind)
	assert.Equal(t, types.White, s.State().Turn())

	tr = click(t, s, "e4")
	assert.Equal(t, engine.Moved, tr.Kind)
	assert.Equal(t, types.Black, s.State().Turn())
	assert.Equal(t, 1, s.MoveNumber())

	tr = s.Click(types.Position{X: -1, Y: 0})
	assert.Equal(t, engine.Ignored, tr.Kind)

	assert.Equal(t, []engine.TransitionKind{engine.Selected, engine.Moved}, seen)
}

// Scholar's-mate style line that ends with the queen taking the king.
func TestKingCaptureEndsSession(t *testing.T) {
	s := New(zerolog.Nop())

	var winner types.Player
	ended := 0
	s.OnGameEnd(func(w types.Player) {
		winner = w
		ended++
	})

	click(t, s,
		"e2", "e4", // white pawn
		"f7", "f6", // black pawn opens the king's diagonal
		"d1", "h5", // white queen
		"a7", "a6", // black wastes a move
		"h5", "e8", // queen takes king
	)

	require.True(t, s.State().IsGameOver())
	assert.Equal(t, 1, ended)
	assert.Equal(t, types.White, winner)
	assert.Equal(t, 5, s.MoveNumber())
	assert.Equal(t, []types.Piece{{Kind: types.King, Owner: types.Black}}, s.Captured(types.White))

	before := s.State()
	tr := click(t, s, "a6", "a5")
	assert.Equal(t, engine.Ignored, tr.Kind)
	assert.Equal(t, before, s.State())
	assert.Equal(t, 1, ended)
}

func TestResetKeepsCallbacks(t *testing.T) {
	s := New(zerolog.Nop())
	moves := 0
	s.OnMove(func(tr engine.Transition, state engine.GameState) {
		if tr.Kind == engine.Moved {
			moves++
		}
	})
	click(t, s, "g1", "f3")
	id := s.ID()

	s.Reset()
	assert.NotEqual(t, id, s.ID())
	assert.Equal(t, engine.InitialState(), s.State())
	assert.Zero(t, s.MoveNumber())

	click(t, s, "b1", "c3")
	assert.Equal(t, 2, moves)
}

func TestCapturedIsACopy(t *testing.T) {
	s := New(zerolog.Nop())
	click(t, s, "e2", "e4", "d7", "d5", "e4", "d5")

	got := s.Captured(types.White)
	require.Len(t, got, 1)
	assert.Equal(t, types.Piece{Kind: types.Pawn, Owner: types.Black}, got[0])

	got[0] = types.Piece{Kind: types.Queen, Owner: types.Black}
	assert.Equal(t, types.Pawn, s.Captured(types.White)[0].Kind)
}

func TestClickLogsMoves(t *testing.T) {
	var buf bytes.Buffer
	s := New(zerolog.New(&buf).Level(zerolog.InfoLevel))
	click(t, s, "e2", "e4")

	out := buf.String()
	assert.Contains(t, out, `"message":"game started"`)
	assert.Contains(t, out, `"from":"e2"`)
	assert.Contains(t, out, `"to":"e4"`)
	assert.Contains(t, out, `"player":"White"`)
	assert.Contains(t, out, s.ID())
	assert.False(t, strings.Contains(out, "square selected"), "selection is logged at debug level")
}
