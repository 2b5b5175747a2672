// Package session drives a single game: it owns the current engine state and
// feeds user clicks into it.
package session

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"termchess/engine"
	"termchess/types"
)

// Session holds the one mutable game state of a running frontend.
// It is not safe for concurrent use; frontends call it from their event loop.
type Session struct {
	id       string
	state    engine.GameState
	moves    int
	captured map[types.Player][]types.Piece
	log      zerolog.Logger

	moveCallback func(t engine.Transition, state engine.GameState)
	endCallback  func(winner types.Player)
}

// New creates a session at the opening position.
func New(log zerolog.Logger) *Session {
	s := &Session{log: log}
	s.Reset()
	return s
}

// Reset starts a new game with a fresh identifier. Callbacks are kept.
func (s *Session) Reset() {
	s.id = uuid.New().String()
	s.state = engine.InitialState()
	s.moves = 0
	s.captured = map[types.Player][]types.Piece{}
	s.log.Info().Str("game", s.id).Msg("game started")
}

// ID returns the identifier of the current game.
func (s *Session) ID() string {
	return s.id
}

// State returns the current game state.
func (s *Session) State() engine.GameState {
	return s.state
}

// MoveNumber returns the number of moves played so far.
func (s *Session) MoveNumber() int {
	return s.moves
}

// Captured returns the pieces taken by player, in capture order.
func (s *Session) Captured(by types.Player) []types.Piece {
	return append([]types.Piece(nil), s.captured[by]...)
}

// OnMove registers a callback fired after every click that changed the state.
func (s *Session) OnMove(fn func(t engine.Transition, state engine.GameState)) {
	s.moveCallback = fn
}

// OnGameEnd registers a callback fired when a king is captured.
func (s *Session) OnGameEnd(fn func(winner types.Player)) {
	s.endCallback = fn
}

// Click applies a click on p: it moves the selected piece there if legal, and
// selects p otherwise.
func (s *Session) Click(p types.Position) engine.Transition {
	next, t := s.state.Step(p)

	switch t.Kind {
	case engine.Ignored:
		s.log.Debug().Str("game", s.id).Int("x", p.X).Int("y", p.Y).
			Bool("over", s.state.IsGameOver()).Msg("click ignored")
		return t
	case engine.Selected:
		s.log.Debug().Str("game", s.id).Stringer("square", p).
			Int("moves", next.SelectedMoves().Len()).Msg("square selected")
	case engine.Moved:
		s.moves++
		ev := s.log.Info().Str("game", s.id).Int("move", s.moves).
			Stringer("player", t.Mover).Stringer("piece", t.Piece.Kind).
			Stringer("from", t.From).Stringer("to", t.To)
		if c, ok := t.Captured.Piece(); ok {
			s.captured[t.Mover] = append(s.captured[t.Mover], c)
			ev = ev.Stringer("captured", c.Kind)
		}
		ev.Msg("move played")
	}

	s.state = next
	if s.moveCallback != nil {
		s.moveCallback(t, next)
	}

	if t.Ended {
		winner, _ := next.Winner()
		s.log.Info().Str("game", s.id).Stringer("winner", winner).Int("moves", s.moves).
			Msg("king captured, game over")
		if s.endCallback != nil {
			s.endCallback(winner)
		}
	}
	return t
}
