package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"termchess/config"
	"termchess/session"
	"termchess/types"
)

// GameInfoPanel displays game information alongside the board.
type GameInfoPanel struct {
	box     *tview.TextView
	sess    *session.Session
	symbols config.ConfigSymbols
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel(symbols config.ConfigSymbols) *GameInfoPanel {
	panel := &GameInfoPanel{
		box:     tview.NewTextView(),
		symbols: symbols,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetSession updates the panel with the current state of sess.
func (p *GameInfoPanel) SetSession(sess *session.Session) {
	p.sess = sess
	p.box.SetText(p.render())
}

func (p *GameInfoPanel) render() string {
	if p.sess == nil {
		return ""
	}
	state := p.sess.State()

	var text strings.Builder
	text.WriteString("[white::b]Game Info[-:-:-]\n")
	text.WriteString("[dimgray]──────────────────────[-:-:-]\n")

	fmt.Fprintf(&text, "[white]Move:[-:-:-] %d\n", p.sess.MoveNumber())
	if winner, over := state.Winner(); over {
		fmt.Fprintf(&text, "[yellow::b]%s wins[-:-:-]\n", winner)
	} else {
		fmt.Fprintf(&text, "[white]Turn:[-:-:-] %s\n", state.Turn())
	}

	if sel, ok := state.Selection(); ok {
		board := state.Board()
		occ := board[sel.Y][sel.X]
		text.WriteString("\n[white::b]Selected[-:-:-]\n")
		text.WriteString("[dimgray]──────────────────────[-:-:-]\n")
		if piece, ok := occ.Piece(); ok {
			fmt.Fprintf(&text, "%c %s on %s\n", p.symbols.Glyph(piece), piece.Kind, sel)
		} else {
			fmt.Fprintf(&text, "[dimgray]empty %s[-]\n", sel)
		}

		targets := state.SelectedMoves().Sorted()
		if len(targets) == 0 {
			text.WriteString("[dimgray]  (no moves)[-]\n")
		} else {
			labels := make([]string, len(targets))
			for i, t := range targets {
				labels[i] = t.String()
			}
			// four labels per line keep the panel within its fixed width
			for i := 0; i < len(labels); i += 4 {
				end := min(i+4, len(labels))
				fmt.Fprintf(&text, "  %s\n", strings.Join(labels[i:end], " "))
			}
		}
	}

	text.WriteString("\n[white::b]Captured[-:-:-]\n")
	text.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	for _, player := range []types.Player{types.White, types.Black} {
		fmt.Fprintf(&text, "[white]%s:[-:-:-] %s\n", player, p.capturedGlyphs(player))
	}

	return text.String()
}

func (p *GameInfoPanel) capturedGlyphs(by types.Player) string {
	taken := p.sess.Captured(by)
	if len(taken) == 0 {
		return "[dimgray]-[-]"
	}
	glyphs := make([]rune, len(taken))
	for i, piece := range taken {
		glyphs[i] = p.symbols.Glyph(piece)
	}
	return string(glyphs)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *ChessBoardUI, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, board, hint)
	return gameFrame
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form tview.Primitive, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *ChessBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel(board.cfg.Theme.Symbols)
	board.infoPanel = infoPanel
	board.refreshHint()

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false) // fixed width

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 4, 0, false) // two text rows plus border
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *ChessBoardUI) {
	gameFrame.Clear()

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}
