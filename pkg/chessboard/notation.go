package chessboard

// ParseSquare parses a two character square such as "e2". The digit is turned
// into a rank index with 8 - digit.
func ParseSquare(text string) (Coordinate, error) {
	if len(text) != 2 {
		return Coordinate{}, &NotationError{Text: text, Err: ErrInvalidFormat}
	}
	c, ok := square(text[0], text[1])
	if !ok {
		return Coordinate{}, &NotationError{Text: text, Err: ErrInvalidFormat}
	}
	return c, nil
}

// ParseMove parses a four character coordinate move such as "e2e4" into its
// source and destination squares. File letters must be lower case.
func ParseMove(text string) (from, to Coordinate, err error) {
	if len(text) != 4 {
		return Coordinate{}, Coordinate{}, &NotationError{Text: text, Err: ErrInvalidFormat}
	}
	from, okFrom := square(text[0], text[1])
	to, okTo := square(text[2], text[3])
	if !okFrom || !okTo {
		return Coordinate{}, Coordinate{}, &NotationError{Text: text, Err: ErrInvalidFormat}
	}
	return from, to, nil
}

// FormatMove is the inverse of ParseMove.
func FormatMove(from, to Coordinate) string {
	return from.String() + to.String()
}

func square(file, digit byte) (Coordinate, bool) {
	if file < 'a' || file > 'h' || digit < '1' || digit > '8' {
		return Coordinate{}, false
	}
	return Coordinate{File: int(file - 'a'), Rank: Size - int(digit-'0')}, true
}
