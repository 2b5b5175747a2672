package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termchess/config"
	"termchess/session"
	"termchess/types"
)

func newTestRegistry(opts RenderOptions) (*Registry, *session.Session, *bytes.Buffer) {
	var out bytes.Buffer
	sess := session.New(zerolog.Nop())
	opts.Symbols = config.DefaultTheme.Symbols
	return NewRegistry(sess, &out, opts), sess, &out
}

func TestRenderPlainBoard(t *testing.T) {
	r, _, out := newTestRegistry(RenderOptions{Plain: true, ShowLegalMoves: true})
	r.Execute("board")

	lines := strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 10)
	assert.Equal(t, "    a  b  c  d  e  f  g  h ", lines[0])
	assert.Equal(t, " 8  r  n  b  q  k  b  n  r  8", lines[1])
	assert.Equal(t, " 1  R  N  B  Q  K  B  N  R  1", lines[8])
	assert.Contains(t, lines[10], "Move 1 · White to move")
}

func TestRenderMarksSelection(t *testing.T) {
	r, _, out := newTestRegistry(RenderOptions{Plain: true, ShowLegalMoves: true})
	r.Execute("b1")

	text := out.String()
	assert.Contains(t, text, "Selected White knight on b1: a3 c3")
	assert.Contains(t, text, " 3  *  .  *  .  .  .  .  .  3")
	assert.Contains(t, text, " 1  R [N] B  Q  K  B  N  R  1")
}

func TestRenderFlipped(t *testing.T) {
	r, _, out := newTestRegistry(RenderOptions{Plain: true, Flipped: true})
	r.Execute("board")

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "    h  g  f  e  d  c  b  a ", lines[0])
	assert.Equal(t, " 1  R  N  B  K  Q  B  N  R  1", lines[1])
}

func TestRenderColorUsesGlyphs(t *testing.T) {
	r, _, out := newTestRegistry(RenderOptions{})
	r.Execute("board")
	assert.Contains(t, out.String(), Blue+"♔"+Reset)
	assert.Contains(t, out.String(), Red+"♚"+Reset)
}

func TestPromptColors(t *testing.T) {
	r, sess, _ := newTestRegistry(RenderOptions{})
	id := sess.ID()[:8]
	assert.Equal(t, Yellow+"termchess ["+id+" "+Blue+"White"+Reset+Yellow+"] > "+Reset, r.Prompt())

	plain, sess, _ := newTestRegistry(RenderOptions{Plain: true})
	assert.Equal(t, "termchess ["+sess.ID()[:8]+" White] > ", plain.Prompt())
}

func TestClicksPlayMoves(t *testing.T) {
	r, sess, out := newTestRegistry(RenderOptions{Plain: true})

	r.Execute("e2")
	r.Execute("E4")
	assert.Equal(t, types.Black, sess.State().Turn())
	assert.Contains(t, out.String(), "pawn e2-e4")

	out.Reset()
	r.Execute("e5")
	assert.Contains(t, out.String(), "Selected empty e5")

	out.Reset()
	r.Execute("d2")
	assert.Contains(t, out.String(), "Selected White pawn on d2: no moves")
}

func TestMoveCommand(t *testing.T) {
	r, sess, out := newTestRegistry(RenderOptions{Plain: true})

	r.Execute("mv g1 f3")
	assert.Equal(t, 1, sess.MoveNumber())
	assert.Contains(t, out.String(), "knight g1-f3")

	out.Reset()
	r.Execute("move a7 a4")
	assert.Contains(t, out.String(), "a7 cannot move to a4")
	assert.Equal(t, 1, sess.MoveNumber())

	out.Reset()
	r.Execute("move a7")
	assert.Contains(t, out.String(), "usage: move <from> <to>")
}

func TestMovesCommand(t *testing.T) {
	r, _, out := newTestRegistry(RenderOptions{Plain: true})

	r.Execute("moves a2")
	assert.Contains(t, out.String(), "a2: a4 a3")

	out.Reset()
	r.Execute("moves a8")
	assert.Contains(t, out.String(), "a8: no moves")

	out.Reset()
	r.Execute("moves")
	assert.Contains(t, out.String(), "nothing selected")

	out.Reset()
	r.Execute("moves z9")
	assert.Contains(t, out.String(), "Error:")
}

func TestGameOverAndNew(t *testing.T) {
	r, sess, out := newTestRegistry(RenderOptions{Plain: true})
	for _, l := range []string{"e2", "e4", "f7", "f6", "d1", "h5", "a7", "a6", "h5", "e8"} {
		r.Execute(l)
	}
	require.True(t, sess.State().IsGameOver())
	assert.Contains(t, out.String(), "queen h5-e8, takes Black king")
	assert.Contains(t, out.String(), "White wins, king captured")
	assert.Contains(t, r.Prompt(), "White won")

	out.Reset()
	r.Execute("a6")
	assert.Contains(t, out.String(), "White wins")

	id := sess.ID()
	r.Execute("new")
	assert.NotEqual(t, id, sess.ID())
	assert.False(t, sess.State().IsGameOver())
}

func TestHintsAndHelp(t *testing.T) {
	r, _, out := newTestRegistry(RenderOptions{Plain: true, ShowLegalMoves: true})

	r.Execute("hints off")
	assert.Contains(t, out.String(), "Move hints off")
	out.Reset()
	r.Execute("g1")
	assert.NotContains(t, out.String(), "*")

	out.Reset()
	r.Execute("hints maybe")
	assert.Contains(t, out.String(), "usage: hints [on|off]")

	out.Reset()
	r.Execute("help")
	for _, name := range []string{"board", "moves", "move", "new", "flip", "hints", "help", "quit"} {
		assert.Contains(t, out.String(), name)
	}

	out.Reset()
	r.Execute("help mv")
	assert.Contains(t, out.String(), "Usage: move <from> <to>")

	out.Reset()
	r.Execute("dance")
	assert.Contains(t, out.String(), "Unknown command: dance")
}

func TestRunStopsOnQuit(t *testing.T) {
	r, sess, out := newTestRegistry(RenderOptions{Plain: true})
	in := strings.NewReader("e2\n\ne4\nquit\nd7\n")

	require.NoError(t, Run(r, NewPlainReader(in)))
	assert.True(t, r.Done())
	assert.Equal(t, 1, sess.MoveNumber(), "input after quit is not read")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRunStopsAtEOF(t *testing.T) {
	r, sess, _ := newTestRegistry(RenderOptions{Plain: true})
	require.NoError(t, Run(r, NewPlainReader(strings.NewReader("b1\nc3\nexit"))))
	assert.Equal(t, 1, sess.MoveNumber())
	assert.True(t, r.Done())
}
