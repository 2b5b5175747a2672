package engine

import "termchess/types"

// TransitionKind tells what a Step did.
type TransitionKind int

const (
	Ignored TransitionKind = iota
	Selected
	Moved
)

func (k TransitionKind) String() string {
	switch k {
	case Selected:
		return "selected"
	case Moved:
		return "moved"
	default:
		return "ignored"
	}
}

// Transition describes the effect of a single Step.
type Transition struct {
	Kind     TransitionKind
	From     types.Position
	To       types.Position
	Mover    types.Player
	Piece    types.Piece
	Captured types.Occupant
	Ended    bool
}

// Select marks p as the selected tile. Any tile may be selected, including empty
// and opponent tiles; such a selection simply has no legal moves.
// Off-board positions and finished games are left unchanged.
func (s GameState) Select(p types.Position) GameState {
	if s.over || !p.Valid() {
		return s
	}
	s.selected = p
	s.selection = true
	return s
}

// Commit applies a click on dest: it moves the selected piece there when dest is
// one of its legal destinations, and selects dest otherwise.
func (s GameState) Commit(dest types.Position) GameState {
	next, _ := s.Step(dest)
	return next
}

// Step is Commit that also reports what happened.
func (s GameState) Step(dest types.Position) (GameState, Transition) {
	if s.over || !dest.Valid() {
		return s, Transition{Kind: Ignored, To: dest}
	}
	if next, t, ok := s.move(dest); ok {
		return next, t
	}
	return s.Select(dest), Transition{Kind: Selected, To: dest}
}

// move performs the raw commit. ok is false, and s is returned unchanged, when the
// game is over, nothing of the turn holder is selected, or dest is not a legal destination.
func (s GameState) move(dest types.Position) (GameState, Transition, bool) {
	if s.over || !s.selection {
		return s, Transition{}, false
	}
	from := s.selected
	o, err := s.board.At(from)
	if err != nil || !o.OwnedBy(s.turn) {
		return s, Transition{}, false
	}
	piece, _ := o.Piece()
	if !Moves(piece, from, &s.board).Contains(dest) {
		return s, Transition{}, false
	}

	captured, _ := s.board.At(dest)
	s.board[dest.Y][dest.X] = o
	s.board[from.Y][from.X] = types.Occupant{}

	mover := s.turn
	s.turn = mover.Opponent()
	s.selected = types.Position{}
	s.selection = false

	if c, ok := captured.Piece(); ok && c.Kind == types.King {
		s.over = true
		s.winner = mover
	}

	return s, Transition{
		Kind:     Moved,
		From:     from,
		To:       dest,
		Mover:    mover,
		Piece:    piece,
		Captured: captured,
		Ended:    s.over,
	}, true
}
