package chessboard

// Execute moves whatever is on from to to, overwriting the destination and
// leaving from empty. It performs no legality check; call Validate first.
// Executing from an empty square clears to.
func Execute(b *Board, from, to Coordinate) error {
	if !from.Valid() || !to.Valid() {
		return &MoveError{From: from, To: to, Err: ErrOutOfBounds}
	}
	if from == to {
		return nil
	}
	b.squares[to.Rank][to.File] = b.squares[from.Rank][from.File]
	b.squares[from.Rank][from.File] = Square{}
	return nil
}

// Execute is a convenience for Execute(b, from, to).
func (b *Board) Execute(from, to Coordinate) error {
	return Execute(b, from, to)
}
