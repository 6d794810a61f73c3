package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gmkornilov/chess-board-backend/internal/dao"
	"github.com/gmkornilov/chess-board-backend/pkg/chessboard"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrJournal is wrapped around repository failures after a move was applied.
	ErrJournal = errors.New("move applied but not journaled")
	// ErrJournalGap means the journal is missing a ply and cannot be replayed.
	ErrJournalGap = errors.New("journal is not contiguous")
)

// Move describes an applied move. Piece and Captured are rendering symbols;
// Captured is empty when the destination was empty.
type Move struct {
	Ply      int    `json:"ply"`
	Notation string `json:"notation"`
	From     string `json:"from"`
	To       string `json:"to"`
	Piece    string `json:"piece"`
	Captured string `json:"captured,omitempty"`
}

func (m Move) Record(session string, at time.Time) dao.MoveRecord {
	return dao.MoveRecord{
		Session:  session,
		Ply:      m.Ply,
		Notation: m.Notation,
		From:     m.From,
		To:       m.To,
		Piece:    m.Piece,
		Captured: m.Captured,
		PlayedAt: primitive.NewDateTimeFromTime(at),
	}
}

// Session owns one board. Every read-then-write on the board happens under mu,
// so two callers can never both validate against the same position.
type Session struct {
	id   string
	repo dao.MoveRepository
	log  zerolog.Logger
	now  func() time.Time

	mu    sync.Mutex
	board *chessboard.Board
	ply   int
}

func NewSession(id string, repo dao.MoveRepository, log zerolog.Logger) *Session {
	return &Session{
		id:    id,
		repo:  repo,
		log:   log.With().Str("session", id).Logger(),
		now:   time.Now,
		board: chessboard.NewBoard(),
	}
}

func (s *Session) ID() string {
	return s.id
}

// IsParseError reports whether err came from reading the move text rather than
// from the legality rules.
func IsParseError(err error) bool {
	var ne *chessboard.NotationError
	return errors.As(err, &ne)
}

// Play parses, validates and applies one move. If the journal write fails the
// board has still moved and the returned error wraps ErrJournal.
func (s *Session) Play(ctx context.Context, text string) (Move, error) {
	from, to, err := chessboard.ParseMove(text)
	if err != nil {
		return Move{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.board.Validate(from, to); err != nil {
		return Move{}, err
	}

	piece, _, _ := s.board.Occupant(from)
	move := Move{
		Ply:      s.ply + 1,
		Notation: text,
		From:     from.String(),
		To:       to.String(),
		Piece:    piece.Symbol(),
	}
	if captured, ok, _ := s.board.Occupant(to); ok {
		move.Captured = captured.Symbol()
	}

	if err = s.board.Execute(from, to); err != nil {
		return Move{}, err
	}
	s.ply = move.Ply

	s.log.Debug().Int("ply", move.Ply).Str("move", text).Str("piece", move.Piece).Msg("move applied")

	// The board has already moved; a caller going away must not drop the record.
	if err = s.repo.InsertMove(context.WithoutCancel(ctx), move.Record(s.id, s.now())); err != nil {
		s.log.Error().Err(err).Int("ply", move.Ply).Msg("journal insert failed")
		return move, fmt.Errorf("%w: %v", ErrJournal, err)
	}
	return move, nil
}

// Check parses and validates text against the current position without
// applying it.
func (s *Session) Check(text string) error {
	from, to, err := chessboard.ParseMove(text)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Validate(from, to)
}

// Snapshot returns a copy of the board for read-only use.
func (s *Session) Snapshot() *chessboard.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

// Ply returns the number of moves applied since the last reset.
func (s *Session) Ply() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ply
}

// Reset restores the initial position and clears the session's journal.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.DeleteSessionMoves(ctx, s.id); err != nil {
		return err
	}
	s.board = chessboard.NewBoard()
	s.ply = 0
	s.log.Info().Msg("board reset")
	return nil
}

// Restore rebuilds the board from the session's journal. Journaled moves were
// legal when recorded, so they are executed without validation.
func (s *Session) Restore(ctx context.Context) error {
	moves, err := s.repo.GetSessionMoves(ctx, s.id)
	if err != nil {
		return err
	}

	board := chessboard.NewBoard()
	ply := 0
	for _, rec := range moves {
		if rec.Ply != ply+1 {
			return fmt.Errorf("journal ply %d after %d: %w", rec.Ply, ply, ErrJournalGap)
		}
		from, to, err := chessboard.ParseMove(rec.Notation)
		if err != nil {
			return fmt.Errorf("journal ply %d: %w", rec.Ply, err)
		}
		if err = board.Execute(from, to); err != nil {
			return fmt.Errorf("journal ply %d: %w", rec.Ply, err)
		}
		ply = rec.Ply
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = board
	s.ply = ply
	if ply > 0 {
		s.log.Info().Int("ply", ply).Msg("session restored from journal")
	}
	return nil
}

func (s *Session) History(ctx context.Context) ([]dao.MoveRecord, error) {
	return s.repo.GetSessionMoves(ctx, s.id)
}
