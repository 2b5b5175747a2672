package config

import "termchess/types"

// Glyph returns the configured symbol for a piece, falling back to the
// standard Unicode chess symbol when none is set.
func (s ConfigSymbols) Glyph(p types.Piece) rune {
	set := s.White
	if p.Owner == types.Black {
		set = s.Black
	}
	var r rune
	switch p.Kind {
	case types.Pawn:
		r = set.Pawn
	case types.Rook:
		r = set.Rook
	case types.Knight:
		r = set.Knight
	case types.Bishop:
		r = set.Bishop
	case types.Queen:
		r = set.Queen
	case types.King:
		r = set.King
	}
	if r == 0 {
		return p.Glyph()
	}
	return r
}
