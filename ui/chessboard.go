// Package ui specifies custom controls for tview to play chess in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termchess/config"
	"termchess/engine"
	"termchess/session"
	"termchess/types"
)

const (
	cellWidth   = 3 // characters per tile
	rankMargin  = 3 // columns left of the board for rank numbers
	boardWidth  = rankMargin + types.Size*cellWidth
	boardHeight = types.Size + 1 // tiles plus the file letter row
)

// style indexes
const (
	styleLight = iota
	styleDark
	styleWhitePiece
	styleBlackPiece
	styleCursor
	styleSelected
	styleLegal
	styleCapture
	styleCoord
)

type ChessBoardUI struct {
	Box       *tview.Box
	sess      *session.Session
	hint      *tview.TextView
	cfg       *config.Config
	selX      int
	selY      int
	styles    []tcell.Color
	infoPanel *GameInfoPanel
	focusMode bool
	flipped   bool
	showMoves bool

	// top-left corner of the a8 tile (h1 when flipped) in the last draw
	originX int
	originY int
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *ChessBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *ChessBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// SetFlipped puts Black at the bottom of the screen when true.
func (g *ChessBoardUI) SetFlipped(flipped bool) {
	g.flipped = flipped
}

// Flip turns the board around.
func (g *ChessBoardUI) Flip() {
	g.flipped = !g.flipped
}

// SetShowLegalMoves toggles highlighting of the selected piece's destinations.
func (g *ChessBoardUI) SetShowLegalMoves(show bool) {
	g.showMoves = show
	g.refreshHint()
}

// SelectedTile returns the tile under the keyboard cursor.
func (g *ChessBoardUI) SelectedTile() *types.Position {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.Position{X: g.selX, Y: g.selY}
}

// MoveSelection moves the keyboard cursor by h columns and v rows on screen.
func (g *ChessBoardUI) MoveSelection(h, v int) {
	if g.sess.State().IsGameOver() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		if p, ok := g.sess.State().Selection(); ok {
			g.selX, g.selY = p.X, p.Y
		} else {
			// Start on the turn holder's king file, in front of their pieces
			g.selX = 4
			g.selY = 6
			if g.sess.State().Turn() == types.Black {
				g.selY = 1
			}
		}
		return
	}
	if g.flipped {
		h, v = -h, -v
	}
	next := types.Position{X: g.selX + h, Y: g.selY + v}
	if !next.Valid() {
		return
	}
	g.selX, g.selY = next.X, next.Y
}

func (g *ChessBoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

// screenToBoard maps a tile offset on screen (column, row from the top-left tile)
// to a board position.
func screenToBoard(col, row int, flipped bool) types.Position {
	if flipped {
		return types.Position{X: types.Size - 1 - col, Y: types.Size - 1 - row}
	}
	return types.Position{X: col, Y: row}
}

// cellAt maps a screen coordinate to the tile drawn there.
func cellAt(sx, sy, originX, originY int, flipped bool) (types.Position, bool) {
	dx, dy := sx-originX, sy-originY
	if dx < 0 || dy < 0 {
		return types.Position{}, false
	}
	col, row := dx/cellWidth, dy
	if col >= types.Size || row >= types.Size {
		return types.Position{}, false
	}
	return screenToBoard(col, row, flipped), true
}

func NewChessBoard(c *config.Config, hint *tview.TextView, sess *session.Session) *ChessBoardUI {
	chessBoard := &ChessBoardUI{
		Box:       tview.NewBox(),
		sess:      sess,
		hint:      hint,
		selX:      -1,
		selY:      -1,
		flipped:   c.Game.Orientation == "black",
		showMoves: c.Game.ShowLegalMoves,
	}
	chessBoard.SetConfig(c)
	chessBoard.Box.SetDrawFunc(chessBoard.draw)
	chessBoard.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick {
			return action, event
		}
		sx, sy := event.Position()
		p, ok := cellAt(sx, sy, chessBoard.originX, chessBoard.originY, chessBoard.flipped)
		if !ok {
			return action, event
		}
		chessBoard.selX, chessBoard.selY = p.X, p.Y
		chessBoard.PlayMove(p.X, p.Y)
		// pass the click on so the box takes focus
		return action, event
	})

	sess.OnMove(func(t engine.Transition, state engine.GameState) {
		g := chessBoard
		if t.Kind == engine.Moved {
			g.selX, g.selY = t.To.X, t.To.Y
		}
		g.refreshHint()
	})
	sess.OnGameEnd(func(winner types.Player) {
		chessBoard.ResetSelection()
		chessBoard.refreshHint()
	})
	chessBoard.refreshHint()
	return chessBoard
}

func (g *ChessBoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	state := g.sess.State()
	board := state.Board()
	selected, hasSelection := state.Selection()

	var moves engine.MoveSet
	if g.showMoves {
		moves = state.SelectedMoves()
	}

	g.originX = x + rankMargin
	g.originY = y

	for row := 0; row < types.Size; row++ {
		for col := 0; col < types.Size; col++ {
			p := screenToBoard(col, row, g.flipped)
			occ := board[p.Y][p.X]

			bg := g.styles[styleLight]
			if (p.X+p.Y)%2 == 1 {
				bg = g.styles[styleDark]
			}

			drawRune := ' '
			fg := g.styles[styleCoord]
			if piece, ok := occ.Piece(); ok {
				drawRune = g.cfg.Theme.Symbols.Glyph(piece)
				fg = g.styles[styleWhitePiece]
				if piece.Owner == types.Black {
					fg = g.styles[styleBlackPiece]
				}
			}

			if moves.Contains(p) {
				if g.cfg.Theme.DrawMoveBackground {
					bg = g.styles[styleLegal]
					if !occ.IsEmpty() {
						bg = g.styles[styleCapture]
					}
				}
				if occ.IsEmpty() {
					drawRune = g.cfg.Theme.Symbols.LegalMove
				}
			}
			if hasSelection && p == selected {
				bg = g.styles[styleSelected]
			}
			if p.X == g.selX && p.Y == g.selY {
				bg = g.styles[styleCursor]
			}

			drawTile(screen, tcell.StyleDefault.Background(bg).Foreground(fg), drawRune, col, row, g.originX, g.originY)
		}
	}
	if g.cfg.Theme.DrawCoordinates {
		drawCoordinates(screen, x, y, g)
	}
	return x, y, boardWidth, boardHeight
}

// PlayMove clicks the tile at the given board coordinates.
func (g *ChessBoardUI) PlayMove(x, y int) {
	if g.sess.State().IsGameOver() {
		return
	}
	g.sess.Click(types.Position{X: x, Y: y})
}

// NewGame discards the current game and starts from the opening position.
func (g *ChessBoardUI) NewGame() {
	g.sess.Reset()
	g.ResetSelection()
	g.refreshHint()
}

func (g *ChessBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.LightSquare),  // styleLight
		tcell.PaletteColor(c.Theme.Colors.DarkSquare),   // styleDark
		tcell.PaletteColor(c.Theme.Colors.WhitePiece),   // styleWhitePiece
		tcell.PaletteColor(c.Theme.Colors.BlackPiece),   // styleBlackPiece
		tcell.PaletteColor(c.Theme.Colors.CursorBG),     // styleCursor
		tcell.PaletteColor(c.Theme.Colors.SelectedBG),   // styleSelected
		tcell.PaletteColor(c.Theme.Colors.LegalMoveBG),  // styleLegal
		tcell.PaletteColor(c.Theme.Colors.CaptureBG),    // styleCapture
		tcell.PaletteColor(c.Theme.Colors.CoordinateFG), // styleCoord
	}
	g.cfg = c
}

func (g *ChessBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetSession(g.sess)
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	state := g.sess.State()
	var turnLine, controlsLine string

	if winner, over := state.Winner(); over {
		turnLine = fmt.Sprintf("  %s wins, king captured\n", winner)
		controlsLine = "  n · new game   q · return to menu"
	} else {
		stone := "○"
		if state.Turn() == types.Black {
			stone = "●"
		}
		turnLine = fmt.Sprintf("  %s %s to move\n", stone, state.Turn())
		controlsLine = "  hjkl/↑↓←→ move   ⏎ select/play   x flip   n new   f focus   q quit"
	}

	g.hint.SetText(turnLine + controlsLine)
}

// IsFinished returns true if the game is over.
func (g *ChessBoardUI) IsFinished() bool {
	return g.sess.State().IsGameOver()
}

// drawTile draws a tile (cellWidth characters wide) with the rune centred.
func drawTile(s tcell.Screen, c tcell.Style, r rune, col, row, l, t int) {
	s.SetContent(l+col*cellWidth, t+row, ' ', nil, c)
	s.SetContent(l+col*cellWidth+1, t+row, r, nil, c)
	s.SetContent(l+col*cellWidth+2, t+row, ' ', nil, c)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *ChessBoardUI) {
	style := tcell.StyleDefault.Foreground(ui.styles[styleCoord])
	highlight := tcell.StyleDefault.Background(ui.styles[styleCursor])

	for col := 0; col < types.Size; col++ {
		p := screenToBoard(col, 0, ui.flipped)
		_style := style
		if p.X == ui.selX {
			_style = highlight
		}
		for i := 0; i < cellWidth; i++ {
			s.SetContent(ui.originX+col*cellWidth+i, y+types.Size, ' ', nil, _style)
		}
		s.SetContent(ui.originX+col*cellWidth+1, y+types.Size, rune('a'+p.X), nil, _style)
	}

	for row := 0; row < types.Size; row++ {
		p := screenToBoard(0, row, ui.flipped)
		_style := style
		if p.Y == ui.selY {
			_style = highlight
		}
		s.SetContent(x+1, y+row, rune('0'+types.Size-p.Y), nil, _style)
	}
}
