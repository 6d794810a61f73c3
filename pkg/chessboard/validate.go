package chessboard

// Validate reports whether the piece on from may move to to. It looks only at
// the geometry of the move and the occupancy of the squares involved: it knows
// nothing about turns, check, castling, en passant or promotion.
//
// A nil result means the move is legal. Any failure is a *MoveError wrapping one
// of the package's sentinel errors.
func Validate(b *Board, from, to Coordinate) error {
	if !from.Valid() || !to.Valid() {
		return &MoveError{From: from, To: to, Err: ErrOutOfBounds}
	}
	src := b.at(from)
	if !src.Occupied {
		return &MoveError{From: from, To: to, Err: ErrEmptySource}
	}
	if from == to {
		return &MoveError{From: from, To: to, Piece: src.Piece, Err: ErrNullMove}
	}

	var err error
	switch src.Piece.Kind {
	case Pawn:
		err = validatePawn(b, src.Piece, from, to)
	case Knight:
		err = validateKnight(b, src.Piece, from, to)
	case Bishop:
		err = validateBishop(b, src.Piece, from, to)
	case Rook:
		err = validateRook(b, from, to)
	case Queen, King:
		err = ErrUnsupportedPieceKind
	default:
		err = ErrUnsupportedPieceKind
	}
	if err != nil {
		return &MoveError{From: from, To: to, Piece: src.Piece, Err: err}
	}
	return nil
}

// Validate is a convenience for Validate(b, from, to).
func (b *Board) Validate(from, to Coordinate) error {
	return Validate(b, from, to)
}

// pawnDirection is the rank index step of a forward pawn move: white pawns
// move toward rank index 0.
func pawnDirection(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

func pawnStartRank(c Color) int {
	if c == White {
		return whitePawnRank
	}
	return blackPawnRank
}

func validatePawn(b *Board, p Piece, from, to Coordinate) error {
	dir := pawnDirection(p.Color)
	d := (to.Rank - from.Rank) * dir
	df := abs(to.File - from.File)
	dst := b.at(to)

	switch {
	case d == 1 && df == 0:
		if dst.Occupied {
			return ErrDestinationOccupied
		}
		return nil

	case d == 2 && df == 0:
		if from.Rank != pawnStartRank(p.Color) {
			return ErrInvalidPawnMove
		}
		if b.at(Coordinate{File: from.File, Rank: from.Rank + dir}).Occupied {
			return ErrPathBlocked
		}
		if dst.Occupied {
			return ErrDestinationOccupied
		}
		return nil

	case d == 1 && df == 1:
		if dst.Occupied && dst.Piece.Color != p.Color {
			return nil
		}
		return ErrInvalidPawnMove
	}
	return ErrInvalidPawnMove
}

func validateKnight(b *Board, p Piece, from, to Coordinate) error {
	dx := abs(to.File - from.File)
	dy := abs(to.Rank - from.Rank)
	if !(dx == 1 && dy == 2) && !(dx == 2 && dy == 1) {
		return ErrInvalidKnightMove
	}
	if dst := b.at(to); dst.Occupied && dst.Piece.Color == p.Color {
		return ErrCannotCaptureOwnPiece
	}
	return nil
}

func validateBishop(b *Board, p Piece, from, to Coordinate) error {
	if abs(to.File-from.File) != abs(to.Rank-from.Rank) {
		return ErrInvalidBishopMove
	}
	if dst := b.at(to); dst.Occupied && dst.Piece.Color == p.Color {
		return ErrCannotCaptureOwnPiece
	}
	if !pathClear(b, from, to) {
		return ErrPathBlocked
	}
	return nil
}

// validateRook does not look at the destination's color, so a rook may land on
// a piece of its own side.
func validateRook(b *Board, from, to Coordinate) error {
	sameFile := from.File == to.File
	sameRank := from.Rank == to.Rank
	if sameFile == sameRank {
		return ErrInvalidRookMove
	}
	if !pathClear(b, from, to) {
		return ErrPathBlocked
	}
	return nil
}

// pathClear walks the squares strictly between from and to along a straight or
// diagonal line and reports whether all of them are empty.
func pathClear(b *Board, from, to Coordinate) bool {
	df := sign(to.File - from.File)
	dr := sign(to.Rank - from.Rank)
	c := Coordinate{File: from.File + df, Rank: from.Rank + dr}
	for c != to {
		if b.at(c).Occupied {
			return false
		}
		c.File += df
		c.Rank += dr
	}
	return true
}
