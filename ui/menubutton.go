package ui

import (
	"github.com/gdamore/tcell/v2"
)

// MenuButton is a styled button component.
type MenuButton struct {
	label    string
	primary  bool
	focused  bool
	onSelect func()

	drawX, drawY int
}

// NewMenuButton creates a new menu button.
func NewMenuButton(label string, primary bool, onSelect func()) *MenuButton {
	return &MenuButton{
		label:    label,
		primary:  primary,
		onSelect: onSelect,
		drawY:    -1,
	}
}

// SetFocused sets the focus state.
func (b *MenuButton) SetFocused(focused bool) {
	b.focused = focused
}

// Activate runs the button's action.
func (b *MenuButton) Activate() {
	if b.onSelect != nil {
		b.onSelect()
	}
}

// HandleKey processes keyboard input. Returns true if handled.
func (b *MenuButton) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyEnter:
		b.Activate()
		return true
	case tcell.KeyRune:
		if event.Rune() == ' ' {
			b.Activate()
			return true
		}
	}
	return false
}

// Contains reports whether the screen coordinate lies on the button as last drawn.
func (b *MenuButton) Contains(x, y int) bool {
	return b.drawY >= 0 && y == b.drawY && x >= b.drawX && x < b.drawX+b.Width()
}

func (b *MenuButton) text() string {
	if b.primary {
		return "▶ " + b.label
	}
	return b.label
}

// Draw renders the button component at the given position.
// Returns the width used.
func (b *MenuButton) Draw(screen tcell.Screen, x, y int) int {
	b.drawX, b.drawY = x, y
	label := b.text()
	width := b.Width()

	if b.focused {
		style := tcell.StyleDefault.
			Foreground(MenuColors.ButtonText).
			Background(MenuColors.ButtonFocus)
		for i := 0; i < width; i++ {
			screen.SetContent(x+i, y, ' ', nil, style)
		}
		col := x + 1
		for _, ch := range label {
			screen.SetContent(col, y, ch, nil, style)
			col++
		}
		return width
	}

	dimStyle := tcell.StyleDefault.
		Foreground(MenuColors.Hint).
		Background(MenuColors.CardBG)
	bracketStyle := tcell.StyleDefault.
		Foreground(MenuColors.Border).
		Background(MenuColors.CardBG)

	screen.SetContent(x, y, '[', nil, bracketStyle)
	col := x + 1
	for _, ch := range label {
		screen.SetContent(col, y, ch, nil, dimStyle)
		col++
	}
	screen.SetContent(col, y, ']', nil, bracketStyle)

	return width
}

// Width returns the button width including padding or brackets.
func (b *MenuButton) Width() int {
	return len([]rune(b.text())) + 2
}
