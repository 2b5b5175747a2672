// Package types contains the board data structures shared by the engine and its frontends.
package types

// Kind is the kind of a chess piece.
type Kind int

const (
	Pawn Kind = iota + 1
	Rook
	Knight
	Bishop
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "unknown"
	}
}

// Kinds lists every piece kind.
var Kinds = []Kind{Pawn, Rook, Knight, Bishop, Queen, King}

// Player is one of the two sides.
type Player int

const (
	White Player = iota + 1
	Black
)

func (p Player) String() string {
	switch p {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "-"
	}
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == White {
		return Black
	}
	return White
}

// Piece is a piece kind together with the player that owns it.
type Piece struct {
	Kind  Kind
	Owner Player
}

var pieceLetters = map[Kind]byte{
	Pawn:   'P',
	Rook:   'R',
	Knight: 'N',
	Bishop: 'B',
	Queen:  'Q',
	King:   'K',
}

// Letter returns the FEN-style letter: upper case for White, lower case for Black.
func (p Piece) Letter() byte {
	l, ok := pieceLetters[p.Kind]
	if !ok {
		return '?'
	}
	if p.Owner == Black {
		return l + ('a' - 'A')
	}
	return l
}

var whiteGlyphs = map[Kind]rune{
	Pawn:   '♙',
	Rook:   '♖',
	Knight: '♘',
	Bishop: '♗',
	Queen:  '♕',
	King:   '♔',
}

var blackGlyphs = map[Kind]rune{
	Pawn:   '♟',
	Rook:   '♜',
	Knight: '♞',
	Bishop: '♝',
	Queen:  '♛',
	King:   '♚',
}

// Glyph returns the Unicode chess symbol for the piece.
func (p Piece) Glyph() rune {
	glyphs := whiteGlyphs
	if p.Owner == Black {
		glyphs = blackGlyphs
	}
	if g, ok := glyphs[p.Kind]; ok {
		return g
	}
	return '?'
}

func (p Piece) String() string {
	return p.Owner.String() + " " + p.Kind.String()
}

// Occupant is the content of a tile. The zero value is an empty tile.
type Occupant struct {
	piece    Piece
	occupied bool
}

// Occupied returns an occupant holding the given piece.
func Occupied(p Piece) Occupant {
	return Occupant{piece: p, occupied: true}
}

// IsEmpty returns true if no piece stands on the tile.
func (o Occupant) IsEmpty() bool {
	return !o.occupied
}

// Piece returns the piece on the tile, if any.
func (o Occupant) Piece() (Piece, bool) {
	return o.piece, o.occupied
}

// OwnedBy returns true if the tile holds a piece of the given player.
func (o Occupant) OwnedBy(p Player) bool {
	return o.occupied && o.piece.Owner == p
}

func (o Occupant) String() string {
	if !o.occupied {
		return "empty"
	}
	return o.piece.String()
}

// Position is a tile on the board.
// X is the file (0 = a), Y counts ranks from the top of the board (0 = rank 8).
type Position struct {
	X int
	Y int
}

// Valid returns true if both coordinates lie on the board.
func (p Position) Valid() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Add returns the position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	if !p.Valid() {
		return "invalid"
	}
	return Label(p)
}
