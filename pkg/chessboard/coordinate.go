package chessboard

// Size is the number of files and ranks on the board.
const Size = 8

// Coordinate addresses one square. File 0 is the a-file. Rank 0 is the eighth
// rank and rank 7 is the first rank, so white starts at the high rank indices.
type Coordinate struct {
	File int
	Rank int
}

// Valid reports whether both axes are within 0..7.
func (c Coordinate) Valid() bool {
	return c.File >= 0 && c.File < Size && c.Rank >= 0 && c.Rank < Size
}

// String renders the coordinate in algebraic form ("e2"), or "??" when the
// coordinate is off the board.
func (c Coordinate) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{byte('a' + c.File), byte('0' + Size - c.Rank)})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
