package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// GameOptions are the choices made on the setup screen.
type GameOptions struct {
	Flipped        bool
	ShowLegalMoves bool
}

// GameSetupUI is the start screen: board orientation, move hints and the menu buttons.
type GameSetupUI struct {
	*MenuCard
	radios  []*RadioSelect
	buttons []*MenuButton
	focus   int
	options GameOptions
}

// NewGameSetup creates the setup screen, preselecting defaults.
func NewGameSetup(defaults GameOptions, onStart func(GameOptions), onQuit func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		MenuCard: NewMenuCard("T E R M C H E S S", '♞'),
		options:  defaults,
	}

	orientation := 0
	if defaults.Flipped {
		orientation = 1
	}
	hints := 0
	if !defaults.ShowLegalMoves {
		hints = 1
	}

	setup.radios = []*RadioSelect{
		NewRadioSelect("Orientation", []RadioOption{
			{Label: "White", Description: "at the bottom"},
			{Label: "Black", Description: "at the bottom"},
		}, orientation, func(i int) {
			setup.options.Flipped = i == 1
		}),
		NewRadioSelect("Move Hints", []RadioOption{
			{Label: "On", Description: "highlight reachable squares"},
			{Label: "Off"},
		}, hints, func(i int) {
			setup.options.ShowLegalMoves = i == 0
		}),
	}

	setup.buttons = []*MenuButton{
		NewMenuButton("Start", true, func() {
			onStart(setup.options)
		}),
		NewMenuButton("Board Colours", false, func() {
			if onColors != nil {
				onColors()
			}
		}),
		NewMenuButton("Quit", false, func() {
			onQuit()
		}),
	}

	setup.setFocus(0)
	return setup
}

// Options returns the currently selected options.
func (s *GameSetupUI) Options() GameOptions {
	return s.options
}

func (s *GameSetupUI) elements() int {
	return len(s.radios) + len(s.buttons)
}

func (s *GameSetupUI) setFocus(i int) {
	n := s.elements()
	s.focus = ((i % n) + n) % n
	for j, r := range s.radios {
		r.SetFocused(j == s.focus)
	}
	for j, b := range s.buttons {
		b.SetFocused(len(s.radios)+j == s.focus)
	}
}

// focusedButton returns the index into buttons of the focused element, or -1.
func (s *GameSetupUI) focusedButton() int {
	if s.focus < len(s.radios) {
		return -1
	}
	return s.focus - len(s.radios)
}

// Draw renders the card with its radio groups and the button row.
func (s *GameSetupUI) Draw(screen tcell.Screen) {
	s.MenuCard.Draw(screen)

	x, y, width, height := s.ContentRect()
	if width < 20 || height < 10 {
		return
	}

	row := y
	for _, r := range s.radios {
		row += r.Draw(screen, x, row, width)
		row++
	}

	row++
	col := x
	for _, b := range s.buttons {
		col += b.Draw(screen, col, row) + 2
	}

	help := "Tab next · ↑↓ choose · ⏎ confirm"
	helpStyle := tcell.StyleDefault.Foreground(MenuColors.Hint).Background(MenuColors.CardBG)
	col = x + (width-len([]rune(help)))/2
	for _, ch := range help {
		screen.SetContent(col, y+height-1, ch, nil, helpStyle)
		col++
	}
}

// InputHandler moves focus between the radio groups and buttons.
func (s *GameSetupUI) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return s.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyTab:
			s.setFocus(s.focus + 1)
			return
		case tcell.KeyBacktab:
			s.setFocus(s.focus - 1)
			return
		}

		if b := s.focusedButton(); b >= 0 {
			switch event.Key() {
			case tcell.KeyLeft:
				if b > 0 {
					s.setFocus(s.focus - 1)
				}
				return
			case tcell.KeyRight:
				if b < len(s.buttons)-1 {
					s.setFocus(s.focus + 1)
				}
				return
			case tcell.KeyUp:
				s.setFocus(len(s.radios) - 1)
				return
			}
			s.buttons[b].HandleKey(event)
			return
		}

		if event.Key() == tcell.KeyEnter {
			s.setFocus(s.focus + 1)
			return
		}
		s.radios[s.focus].HandleKey(event)
	})
}

// MouseHandler selects radio options and presses buttons on left click.
func (s *GameSetupUI) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return s.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		if !s.InRect(event.Position()) {
			return false, nil
		}
		if action != tview.MouseLeftClick {
			return false, nil
		}
		setFocus(s)

		mx, my := event.Position()
		for i, r := range s.radios {
			if opt, ok := r.OptionAt(mx, my); ok {
				s.setFocus(i)
				r.SetSelected(opt)
				return true, nil
			}
		}
		for i, b := range s.buttons {
			if b.Contains(mx, my) {
				s.setFocus(len(s.radios) + i)
				b.Activate()
				return true, nil
			}
		}
		return true, nil
	})
}
