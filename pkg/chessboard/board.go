package chessboard

// Square holds at most one piece.
type Square struct {
	Piece    Piece
	Occupied bool
}

// Board is an 8x8 grid of squares. It does not track whose turn it is, the move
// history or where the kings are.
type Board struct {
	// squares[rank][file]
	squares [Size][Size]Square
}

var backRank = [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Rank indices of the pawn start rows and back ranks.
const (
	blackBackRank = 0
	blackPawnRank = 1
	whitePawnRank = 6
	whiteBackRank = 7
)

// NewBoard returns a board in the standard initial position.
func NewBoard() *Board {
	b := NewEmptyBoard()
	for file := 0; file < Size; file++ {
		b.squares[blackBackRank][file] = Square{Piece: B(backRank[file]), Occupied: true}
		b.squares[blackPawnRank][file] = Square{Piece: B(Pawn), Occupied: true}
		b.squares[whitePawnRank][file] = Square{Piece: W(Pawn), Occupied: true}
		b.squares[whiteBackRank][file] = Square{Piece: W(backRank[file]), Occupied: true}
	}
	return b
}

// NewEmptyBoard returns a board with no pieces.
func NewEmptyBoard() *Board {
	return &Board{}
}

// Occupant returns the piece on c and whether the square is occupied.
func (b *Board) Occupant(c Coordinate) (Piece, bool, error) {
	if !c.Valid() {
		return Piece{}, false, ErrOutOfBounds
	}
	sq := b.at(c)
	return sq.Piece, sq.Occupied, nil
}

// Place puts p on c, replacing any previous occupant.
func (b *Board) Place(c Coordinate, p Piece) error {
	if !c.Valid() {
		return ErrOutOfBounds
	}
	b.squares[c.Rank][c.File] = Square{Piece: p, Occupied: true}
	return nil
}

// Clear empties c.
func (b *Board) Clear(c Coordinate) error {
	if !c.Valid() {
		return ErrOutOfBounds
	}
	b.squares[c.Rank][c.File] = Square{}
	return nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// Each calls fn for every square, rank index 0 first and file a first within a
// rank, which is the order a board is drawn from white's side.
func (b *Board) Each(fn func(c Coordinate, sq Square)) {
	for rank := 0; rank < Size; rank++ {
		for file := 0; file < Size; file++ {
			fn(Coordinate{File: file, Rank: rank}, b.squares[rank][file])
		}
	}
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	b.Each(func(_ Coordinate, sq Square) {
		if sq.Occupied {
			n++
		}
	})
	return n
}

// at reads a square without a bounds check; c must be valid.
func (b *Board) at(c Coordinate) Square {
	return b.squares[c.Rank][c.File]
}
