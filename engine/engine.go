// Package engine implements the chess rules: move generation and the game state machine.
//
// A GameState is an immutable value. Transitions return a new GameState and never
// modify the receiver, so any previously returned state stays valid.
package engine

import "termchess/types"

// GameState is a snapshot of a game: the board, the turn holder, the selected
// tile and whether a king has been captured.
type GameState struct {
	board     types.Board
	turn      types.Player
	selected  types.Position
	selection bool
	over      bool
	winner    types.Player
}

// InitialState returns the opening position with White to move and nothing selected.
func InitialState() GameState {
	return NewState(types.NewBoard(), types.White)
}

// NewState returns a game in progress on the given board with turn to move.
func NewState(b types.Board, turn types.Player) GameState {
	return GameState{
		board: b,
		turn:  turn,
	}
}

// Board returns a copy of the board.
func (s GameState) Board() types.Board {
	return s.board
}

// Turn returns the player to move.
func (s GameState) Turn() types.Player {
	return s.turn
}

// Selection returns the selected tile, if any.
func (s GameState) Selection() (types.Position, bool) {
	return s.selected, s.selection
}

// IsGameOver returns true once a king has been captured.
func (s GameState) IsGameOver() bool {
	return s.over
}

// Winner returns the player who captured the king.
func (s GameState) Winner() (types.Player, bool) {
	return s.winner, s.over
}

// LegalMoves returns the destinations of the piece on p.
// The set is empty when p is off the board, empty, not owned by the
// turn holder, or when the game is over.
func (s GameState) LegalMoves(p types.Position) MoveSet {
	if s.over {
		return MoveSet{}
	}
	o, err := s.board.At(p)
	if err != nil || !o.OwnedBy(s.turn) {
		return MoveSet{}
	}
	piece, _ := o.Piece()
	return Moves(piece, p, &s.board)
}

// SelectedMoves returns the destinations of the selected piece.
func (s GameState) SelectedMoves() MoveSet {
	if !s.selection {
		return MoveSet{}
	}
	return s.LegalMoves(s.selected)
}
