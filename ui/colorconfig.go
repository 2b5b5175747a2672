package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termchess/config"
	"termchess/types"
)

type paletteEntry struct {
	code int
	name string
}

// Light square colours.
var lightColors = []paletteEntry{
	{255, "White"},
	{254, "Off White"},
	{230, "Light Cream"},
	{229, "Pale Yellow"},
	{223, "Peach"},
	{222, "Gold"},
	{187, "Wheat"},
	{188, "Light Beige"},
	{194, "Mint"},
	{195, "Ice"},
	{189, "Lavender"},
	{252, "Light Gray"},
	{250, "Gray"},
	{180, "Tan"},
}

// Dark square colours.
var darkColors = []paletteEntry{
	{244, "Dark Gray"},
	{240, "Slate"},
	{137, "Walnut"},
	{136, "Dark Brown"},
	{130, "Dark Orange"},
	{94, "Saddle Brown"},
	{65, "Forest"},
	{71, "Tournament Green"},
	{66, "Teal"},
	{67, "Steel Blue"},
	{60, "Muted Blue"},
	{96, "Plum"},
	{88, "Dark Red"},
	{238, "Charcoal"},
}

// ColorConfigUI lets the user pick square colours with a live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func(error)

	selectedLight int
	selectedDark  int
	editingDark   bool
	populating    bool // list callbacks fire while items are added
}

// NewColorConfig creates the colour configuration screen. onDone receives the
// result of saving the configuration once both colours are confirmed.
func NewColorConfig(cfg *config.Config, onDone func(error)) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:           cfg,
		onDone:        onDone,
		selectedLight: cfg.Theme.Colors.LightSquare,
		selectedDark:  cfg.Theme.Colors.DarkSquare,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		entries := cc.palette()
		if cc.populating || index < 0 || index >= len(entries) {
			return
		}
		if cc.editingDark {
			cc.selectedDark = entries[index].code
		} else {
			cc.selectedLight = entries[index].code
		}
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if !cc.editingDark {
			cc.cfg.Theme.Colors.LightSquare = cc.selectedLight
			cc.editingDark = true
			cc.populateColorList()
			return
		}
		cc.cfg.Theme.Colors.DarkSquare = cc.selectedDark
		cc.editingDark = false
		cc.populateColorList()
		onDone(cc.cfg.Save())
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) palette() []paletteEntry {
	if cc.editingDark {
		return darkColors
	}
	return lightColors
}

func (cc *ColorConfigUI) populateColorList() {
	cc.populating = true
	defer func() { cc.populating = false }()
	cc.colorList.Clear()

	current := cc.selectedLight
	cc.colorList.SetTitle(" Light Squares (Tab: dark) ")
	if cc.editingDark {
		current = cc.selectedDark
		cc.colorList.SetTitle(" Dark Squares (Tab: light) ")
	}

	for i, c := range cc.palette() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.palette() {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

// previewPieces is a small middlegame fragment drawn on the preview board.
var previewPieces = map[types.Position]types.Piece{
	{X: 1, Y: 1}: {Kind: types.Knight, Owner: types.Black},
	{X: 3, Y: 1}: {Kind: types.King, Owner: types.Black},
	{X: 2, Y: 2}: {Kind: types.Pawn, Owner: types.Black},
	{X: 3, Y: 3}: {Kind: types.Pawn, Owner: types.White},
	{X: 4, Y: 4}: {Kind: types.Bishop, Owner: types.White},
	{X: 1, Y: 4}: {Kind: types.Queen, Owner: types.White},
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const size = 6

	startX := x + 2
	startY := y + 1
	if width < size*cellWidth+4 || height < size+3 {
		return x, y, width, height
	}

	colors := cc.cfg.Theme.Colors
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			bg := tcell.PaletteColor(cc.selectedLight)
			if (row+col)%2 == 1 {
				bg = tcell.PaletteColor(cc.selectedDark)
			}
			style := tcell.StyleDefault.Background(bg)

			r := ' '
			if piece, ok := previewPieces[types.Position{X: col, Y: row}]; ok {
				r = cc.cfg.Theme.Symbols.Glyph(piece)
				fg := colors.WhitePiece
				if piece.Owner == types.Black {
					fg = colors.BlackPiece
				}
				style = style.Foreground(tcell.PaletteColor(fg))
			}
			drawTile(screen, style, r, col, row, startX, startY)
		}
	}

	info := fmt.Sprintf("Light: %d  Dark: %d", cc.selectedLight, cc.selectedDark)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between editing light and dark squares.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingDark = !cc.editingDark
	cc.populateColorList()
}
