package cli

import (
	"fmt"
	"io"
	"strings"

	"termchess/config"
	"termchess/engine"
	"termchess/types"
)

// RenderOptions control how RenderBoard draws a position.
type RenderOptions struct {
	Flipped        bool
	ShowLegalMoves bool
	Plain          bool // ASCII letters and no colours
	Symbols        config.ConfigSymbols
}

// RenderBoard writes state as text. The selected square is shown in brackets
// and, with ShowLegalMoves, its destinations are marked with asterisks.
func RenderBoard(w io.Writer, state engine.GameState, opts RenderOptions) error {
	pal := palette{plain: opts.Plain}
	board := state.Board()
	selected, hasSelection := state.Selection()

	var targets engine.MoveSet
	if opts.ShowLegalMoves {
		targets = state.SelectedMoves()
	}

	files := make([]string, types.Size)
	for col := 0; col < types.Size; col++ {
		x := col
		if opts.Flipped {
			x = types.Size - 1 - col
		}
		files[col] = " " + string(rune('a'+x)) + " "
	}
	fileLine := "   " + pal.wrap(Cyan, strings.Join(files, "")) + "\n"

	var sb strings.Builder
	sb.WriteString(fileLine)
	for row := 0; row < types.Size; row++ {
		y := row
		if opts.Flipped {
			y = types.Size - 1 - row
		}
		rank := pal.wrap(Cyan, fmt.Sprintf("%d", types.Size-y))
		sb.WriteString(" " + rank + " ")
		for col := 0; col < types.Size; col++ {
			x := col
			if opts.Flipped {
				x = types.Size - 1 - col
			}
			p := types.Position{X: x, Y: y}
			sb.WriteString(renderSquare(pal, opts, board[y][x],
				hasSelection && p == selected, targets.Contains(p)))
		}
		sb.WriteString(" " + rank + "\n")
	}
	sb.WriteString(fileLine)

	_, err := io.WriteString(w, sb.String())
	return err
}

func renderSquare(pal palette, opts RenderOptions, occ types.Occupant, selected, target bool) string {
	body := "."
	if piece, ok := occ.Piece(); ok {
		if opts.Plain {
			body = string(piece.Letter())
		} else {
			body = string(opts.Symbols.Glyph(piece))
		}
		color := Red
		if piece.Owner == types.White {
			color = Blue
		}
		body = pal.wrap(color, body)
	}

	switch {
	case selected:
		return pal.wrap(Yellow, "[") + body + pal.wrap(Yellow, "]")
	case target && occ.IsEmpty():
		return " " + pal.wrap(Green, "*") + " "
	case target:
		return pal.wrap(Green, "*") + body + pal.wrap(Green, "*")
	default:
		return " " + body + " "
	}
}
