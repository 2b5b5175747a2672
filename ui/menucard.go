package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// headerRows is the space taken by the top border, the title line and its divider.
const headerRows = 5

// MenuCard is a styled card container with rounded borders and title.
type MenuCard struct {
	*tview.Box
	title   string
	accent  rune
	focused bool
}

// NewMenuCard creates a new menu card with the given title.
func NewMenuCard(title string, accent rune) *MenuCard {
	return &MenuCard{
		Box:    tview.NewBox(),
		title:  title,
		accent: accent,
	}
}

func (c *MenuCard) borderStyle() tcell.Style {
	borderColor := MenuColors.Border
	if c.focused {
		borderColor = MenuColors.BorderFocus
	}
	return tcell.StyleDefault.Foreground(borderColor).Background(MenuColors.CardBG)
}

// Draw renders the menu card with rounded borders.
func (c *MenuCard) Draw(screen tcell.Screen) {
	c.Box.DrawForSubclass(screen, c)

	x, y, width, height := c.GetInnerRect()
	if width < 10 || height < headerRows {
		return
	}

	borderStyle := c.borderStyle()
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)

	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
	}

	// ╭───╮
	screen.SetContent(x, y, '╭', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, y, '╮', nil, borderStyle)

	for row := y + 1; row < y+height-1; row++ {
		screen.SetContent(x, row, '│', nil, borderStyle)
		screen.SetContent(x+width-1, row, '│', nil, borderStyle)
	}

	// ╰───╯
	screen.SetContent(x, y+height-1, '╰', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y+height-1, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, y+height-1, '╯', nil, borderStyle)

	if c.title == "" {
		return
	}

	titleStyle := tcell.StyleDefault.Foreground(MenuColors.Title).Background(MenuColors.CardBG).Bold(true)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)

	// ♞  T E R M C H E S S
	titleLen := len([]rune(c.title)) + 3
	titleX := x + (width-titleLen)/2
	titleY := y + 2

	screen.SetContent(titleX, titleY, c.accent, nil, accentStyle)
	col := titleX + 3
	for _, ch := range c.title {
		screen.SetContent(col, titleY, ch, nil, titleStyle)
		col++
	}

	c.DrawDivider(screen, y+4)
}

// ContentRect returns the area inside the borders below the title divider.
func (c *MenuCard) ContentRect() (int, int, int, int) {
	x, y, width, height := c.GetInnerRect()
	return x + 2, y + headerRows + 1, width - 4, height - headerRows - 2
}

// DrawDivider draws a horizontal divider at the given y position.
func (c *MenuCard) DrawDivider(screen tcell.Screen, divY int) {
	x, _, width, _ := c.GetInnerRect()
	borderStyle := c.borderStyle()

	screen.SetContent(x, divY, '├', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, divY, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, divY, '┤', nil, borderStyle)
}

// SetFocused sets the focus state of the card.
func (c *MenuCard) SetFocused(focused bool) {
	c.focused = focused
}
