package ui

import (
	"github.com/gdamore/tcell/v2"
)

// RadioOption represents a single radio button option.
type RadioOption struct {
	Label       string
	Description string
}

// RadioSelect is a radio button group component.
type RadioSelect struct {
	label    string
	options  []RadioOption
	selected int
	focused  bool
	onChange func(int)

	// screen position of the first option row in the last draw
	drawX, drawY int
	drawWidth    int
}

// NewRadioSelect creates a new radio select component.
func NewRadioSelect(label string, options []RadioOption, initial int, onChange func(int)) *RadioSelect {
	return &RadioSelect{
		label:    label,
		options:  options,
		selected: initial,
		onChange: onChange,
		drawY:    -1,
	}
}

// SetFocused sets the focus state.
func (r *RadioSelect) SetFocused(focused bool) {
	r.focused = focused
}

// HandleKey processes keyboard input. Returns true if handled.
func (r *RadioSelect) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyUp, tcell.KeyLeft:
		r.SetSelected(r.selected - 1)
		return true
	case tcell.KeyDown, tcell.KeyRight:
		r.SetSelected(r.selected + 1)
		return true
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k', 'h':
			r.SetSelected(r.selected - 1)
			return true
		case 'j', 'l':
			r.SetSelected(r.selected + 1)
			return true
		}
	}
	return false
}

// OptionAt returns the option drawn at the given screen coordinate.
func (r *RadioSelect) OptionAt(x, y int) (int, bool) {
	if r.drawY < 0 || x < r.drawX || x >= r.drawX+r.drawWidth {
		return 0, false
	}
	i := y - r.drawY
	if i < 0 || i >= len(r.options) {
		return 0, false
	}
	return i, true
}

// Draw renders the radio select component.
// Returns the number of rows used.
func (r *RadioSelect) Draw(screen tcell.Screen, x, y, width int) int {
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)
	labelStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(MenuColors.CardBG)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)
	selectedStyle := tcell.StyleDefault.Foreground(MenuColors.Selected).Background(MenuColors.CardBG)
	unselectedStyle := tcell.StyleDefault.Foreground(MenuColors.Unselected).Background(MenuColors.CardBG)
	hintStyle := tcell.StyleDefault.Foreground(MenuColors.Hint).Background(MenuColors.CardBG)

	row := y

	// ◈ Orientation
	col := x
	screen.SetContent(col, row, '◈', nil, accentStyle)
	col += 2
	if r.focused {
		labelStyle = labelStyle.Bold(true)
	}
	for _, ch := range r.label {
		screen.SetContent(col, row, ch, nil, labelStyle)
		col++
	}
	row++

	r.drawX, r.drawY, r.drawWidth = x, row, width

	for i, opt := range r.options {
		col = x + 2

		if r.focused && i == r.selected {
			screen.SetContent(col, row, '▸', nil, selectedStyle)
		} else {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
		col += 2

		style := unselectedStyle
		bullet := '○'
		if i == r.selected {
			bullet = '●'
			style = selectedStyle
		}
		screen.SetContent(col, row, bullet, nil, style)
		col += 2

		for _, ch := range opt.Label {
			screen.SetContent(col, row, ch, nil, style)
			col++
		}

		if opt.Description != "" {
			col++
			for _, ch := range opt.Description {
				if col >= x+width {
					break
				}
				screen.SetContent(col, row, ch, nil, hintStyle)
				col++
			}
		}

		row++
	}

	return row - y
}

// Selected returns the currently selected index.
func (r *RadioSelect) Selected() int {
	return r.selected
}

// SetSelected sets the selected index. Out of range indexes are ignored.
func (r *RadioSelect) SetSelected(index int) {
	if index < 0 || index >= len(r.options) || index == r.selected {
		return
	}
	r.selected = index
	if r.onChange != nil {
		r.onChange(r.selected)
	}
}
