package types

import (
	"errors"
	"fmt"
	"strings"
)

// Square labels:
// - Files: a-h (left to right)
// - Ranks: 1-8 (from the bottom of the board, White's side)
// - Example: e2, g8
//
// Board coordinates:
// - X: 0-7 (left to right)
// - Y: 0-7 (top to bottom)
// - Example: (4, 6) for e2

// ErrInvalidLabel is returned when a square label cannot be parsed.
var ErrInvalidLabel = errors.New("invalid square label")

// Label converts board coordinates to a square label.
// (0, 0) -> a8, (4, 6) -> e2, (7, 7) -> h1
func Label(p Position) string {
	return fmt.Sprintf("%c%d", 'a'+rune(p.X), Size-p.Y)
}

// ParseLabel converts a square label to board coordinates.
// Upper case files are accepted.
func ParseLabel(label string) (Position, error) {
	label = strings.TrimSpace(strings.ToLower(label))
	if len(label) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}

	file := int(label[0]) - 'a'
	if file < 0 || file >= Size {
		return Position{}, fmt.Errorf("%w: bad file in %q", ErrInvalidLabel, label)
	}

	rank := int(label[1]) - '0'
	if rank < 1 || rank > Size {
		return Position{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidLabel, label)
	}

	return Position{X: file, Y: Size - rank}, nil
}
