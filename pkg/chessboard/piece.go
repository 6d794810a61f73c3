// Package chessboard models an 8x8 chess board and the per-piece move legality
// rules for moves given in coordinate notation ("e2e4").
//
// Validation and execution are separate steps: Validate never mutates the board,
// Execute never checks legality.
package chessboard

// Color is the side a piece belongs to.
type Color int

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the other color.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Kind is the type of a piece.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

var kindLetters = [...]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

func (k Kind) String() string {
	if k >= Pawn && k <= King {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the upper case letter of the kind, '?' for unknown kinds.
func (k Kind) Letter() byte {
	if k >= Pawn && k <= King {
		return kindLetters[k]
	}
	return '?'
}

// Piece is a kind tagged with a color. Two pieces with the same kind and color
// are interchangeable.
type Piece struct {
	Kind  Kind
	Color Color
}

// W returns a white piece of the given kind.
func W(k Kind) Piece {
	return Piece{Kind: k, Color: White}
}

// B returns a black piece of the given kind.
func B(k Kind) Piece {
	return Piece{Kind: k, Color: Black}
}

// Symbol returns the two character rendering symbol: a color marker ('w' or 'b')
// followed by the kind letter, e.g. "wP" or "bN".
func (p Piece) Symbol() string {
	marker := byte('w')
	if p.Color == Black {
		marker = 'b'
	}
	return string([]byte{marker, p.Kind.Letter()})
}

func (p Piece) String() string {
	return p.Color.String() + " " + p.Kind.String()
}
