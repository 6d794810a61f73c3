package chessboard

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the parser, the board and the validator.
// Use errors.Is to check for a specific failure kind.
var (
	// ErrInvalidFormat indicates a notation string that is not [a-h][1-8][a-h][1-8].
	ErrInvalidFormat = errors.New("invalid move format")

	// ErrOutOfBounds indicates a coordinate outside 0..7 on either axis.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrNullMove indicates a move whose source and destination are the same square.
	ErrNullMove = errors.New("source and destination are the same square")

	ErrEmptySource = errors.New("no piece at the source square")

	ErrInvalidPawnMove   = errors.New("invalid pawn move")
	ErrInvalidRookMove   = errors.New("invalid rook move")
	ErrInvalidKnightMove = errors.New("invalid knight move")
	ErrInvalidBishopMove = errors.New("invalid bishop move")

	ErrDestinationOccupied   = errors.New("destination square is occupied")
	ErrCannotCaptureOwnPiece = errors.New("cannot capture own piece")
	ErrPathBlocked           = errors.New("path is blocked")

	// ErrUnsupportedPieceKind is returned for queen and king moves, which have
	// no movement rule.
	ErrUnsupportedPieceKind = errors.New("unsupported piece kind")
)

// NotationError wraps a parse failure with the offending text.
type NotationError struct {
	Text string
	Err  error
}

func (e *NotationError) Error() string {
	return fmt.Sprintf("move %q: %v", e.Text, e.Err)
}

func (e *NotationError) Unwrap() error {
	return e.Err
}

// MoveError wraps a validation failure with the squares and the piece involved.
// Piece is the zero value when the source square was empty.
type MoveError struct {
	From  Coordinate
	To    Coordinate
	Piece Piece
	Err   error
}

func (e *MoveError) Error() string {
	if errors.Is(e.Err, ErrEmptySource) || errors.Is(e.Err, ErrOutOfBounds) {
		return fmt.Sprintf("%s%s: %v", e.From, e.To, e.Err)
	}
	return fmt.Sprintf("%s%s (%s): %v", e.From, e.To, e.Piece, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
