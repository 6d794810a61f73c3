package analysis

import (
	"fmt"

	"github.com/gmkornilov/chess-board-backend/pkg/chessboard"
	"github.com/notnil/chess"
)

var pieces = map[chessboard.Piece]chess.Piece{
	chessboard.W(chessboard.King):   chess.WhiteKing,
	chessboard.W(chessboard.Queen):  chess.WhiteQueen,
	chessboard.W(chessboard.Rook):   chess.WhiteRook,
	chessboard.W(chessboard.Bishop): chess.WhiteBishop,
	chessboard.W(chessboard.Knight): chess.WhiteKnight,
	chessboard.W(chessboard.Pawn):   chess.WhitePawn,
	chessboard.B(chessboard.King):   chess.BlackKing,
	chessboard.B(chessboard.Queen):  chess.BlackQueen,
	chessboard.B(chessboard.Rook):   chess.BlackRook,
	chessboard.B(chessboard.Bishop): chess.BlackBishop,
	chessboard.B(chessboard.Knight): chess.BlackKnight,
	chessboard.B(chessboard.Pawn):   chess.BlackPawn,
}

// toSquare maps a board coordinate to the a1 = 0 square numbering.
func toSquare(c chessboard.Coordinate) chess.Square {
	return chess.Square((chessboard.Size-1-c.Rank)*chessboard.Size + c.File)
}

func convert(b *chessboard.Board) *chess.Board {
	m := make(map[chess.Square]chess.Piece)
	b.Each(func(c chessboard.Coordinate, sq chessboard.Square) {
		if sq.Occupied {
			m[toSquare(c)] = pieces[sq.Piece]
		}
	})
	return chess.NewBoard(m)
}

// Placement returns the piece placement field of a FEN string.
func Placement(b *chessboard.Board) string {
	return convert(b).String()
}

// FEN returns a full FEN string for b with the given side to move. The board
// keeps no castling, en passant or clock state, so those fields are always
// "- - 0 1".
func FEN(b *chessboard.Board, side chessboard.Color) (string, error) {
	turn := "w"
	if side == chessboard.Black {
		turn = "b"
	}
	fen := fmt.Sprintf("%s %s - - 0 1", Placement(b), turn)
	if _, err := chess.FEN(fen); err != nil {
		return "", err
	}
	return fen, nil
}

// Diagram draws the board as text.
func Diagram(b *chessboard.Board) string {
	return convert(b).Draw()
}

// ParseSide accepts "w"/"white" and "b"/"black".
func ParseSide(s string) (chessboard.Color, error) {
	switch s {
	case "w", "white", "":
		return chessboard.White, nil
	case "b", "black":
		return chessboard.Black, nil
	}
	return chessboard.White, fmt.Errorf("unknown side %q", s)
}
