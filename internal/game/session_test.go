package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gmkornilov/chess-board-backend/internal/dao"
	"github.com/gmkornilov/chess-board-backend/pkg/chessboard"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestSession() (*Session, *dao.MemoryMoveRepository) {
	repo := dao.NewMemoryMoveRepository()
	s := NewSession("test", repo, zerolog.Nop())
	s.now = func() time.Time { return time.Date(2021, 5, 3, 12, 0, 0, 0, time.UTC) }
	return s, repo
}

type failingRepo struct{}

func (failingRepo) InsertMove(context.Context, dao.MoveRecord) error {
	return errors.New("mongo down")
}

func (failingRepo) GetSessionMoves(context.Context, string) ([]dao.MoveRecord, error) {
	return nil, errors.New("mongo down")
}

func (failingRepo) DeleteSessionMoves(context.Context, string) error {
	return errors.New("mongo down")
}

func TestSession_PlayJournalsMoves(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession()

	for _, text := range []string{"e2e4", "d7d5", "e4d5"} {
		if _, err := s.Play(ctx, text); err != nil {
			t.Fatalf("Play(%s) error: %v", text, err)
		}
	}

	got, err := s.History(ctx)
	if err != nil {
		t.Fatal(err)
	}
	at := primitive.NewDateTimeFromTime(time.Date(2021, 5, 3, 12, 0, 0, 0, time.UTC))
	want := []dao.MoveRecord{
		{Session: "test", Ply: 1, Notation: "e2e4", From: "e2", To: "e4", Piece: "wP", PlayedAt: at},
		{Session: "test", Ply: 2, Notation: "d7d5", From: "d7", To: "d5", Piece: "bP", PlayedAt: at},
		{Session: "test", Ply: 3, Notation: "e4d5", From: "e4", To: "d5", Piece: "wP", Captured: "bP", PlayedAt: at},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}
	if s.Ply() != 3 {
		t.Errorf("Ply() = %d, want 3", s.Ply())
	}
}

func TestSession_ParseAndValidationFailures(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession()

	_, err := s.Play(ctx, "e2-e4")
	if !IsParseError(err) || !errors.Is(err, chessboard.ErrInvalidFormat) {
		t.Errorf("Play(e2-e4) error = %v, want parse error", err)
	}

	_, err = s.Play(ctx, "e2e5")
	if IsParseError(err) || !errors.Is(err, chessboard.ErrInvalidPawnMove) {
		t.Errorf("Play(e2e5) error = %v, want ErrInvalidPawnMove", err)
	}

	b := s.Snapshot()
	if p, ok, _ := b.Occupant(chessboard.Coordinate{File: 4, Rank: 6}); !ok || p != chessboard.W(chessboard.Pawn) {
		t.Error("rejected move changed the board")
	}
	if s.Ply() != 0 {
		t.Errorf("Ply() = %d, want 0", s.Ply())
	}
}

func TestSession_CheckDoesNotCommit(t *testing.T) {
	s, repo := newTestSession()
	if err := s.Check("g1f3"); err != nil {
		t.Fatalf("Check(g1f3) error: %v", err)
	}
	if err := s.Check("g1g3"); !errors.Is(err, chessboard.ErrInvalidKnightMove) {
		t.Errorf("Check(g1g3) error = %v", err)
	}
	if got := s.Snapshot().Count(); got != 32 {
		t.Errorf("Count() = %d after Check", got)
	}
	moves, _ := repo.GetSessionMoves(context.Background(), "test")
	if len(moves) != 0 {
		t.Errorf("Check journaled %d moves", len(moves))
	}
}

func TestSession_SnapshotIsACopy(t *testing.T) {
	s, _ := newTestSession()
	snap := s.Snapshot()
	if err := snap.Clear(chessboard.Coordinate{File: 0, Rank: 0}); err != nil {
		t.Fatal(err)
	}
	if got := s.Snapshot().Count(); got != 32 {
		t.Errorf("session board changed through snapshot: Count() = %d", got)
	}
}

func TestSession_ConcurrentPlaySerialised(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession()

	const callers = 16
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Play(ctx, "e2e4")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
		} else if !errors.Is(err, chessboard.ErrEmptySource) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if ok != 1 {
		t.Errorf("%d callers applied e2e4, want exactly 1", ok)
	}
}

func TestSession_JournalFailureKeepsMove(t *testing.T) {
	s := NewSession("test", failingRepo{}, zerolog.Nop())
	move, err := s.Play(context.Background(), "b1c3")
	if !errors.Is(err, ErrJournal) {
		t.Fatalf("Play error = %v, want ErrJournal", err)
	}
	if move.Ply != 1 || move.Piece != "wN" {
		t.Errorf("move = %+v", move)
	}
	if _, ok, _ := s.Snapshot().Occupant(chessboard.Coordinate{File: 2, Rank: 5}); !ok {
		t.Error("c3 empty after journal failure")
	}
}

func TestSession_Reset(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession()
	if _, err := s.Play(ctx, "e2e4"); err != nil {
		t.Fatal(err)
	}
	if err := s.Reset(ctx); err != nil {
		t.Fatal(err)
	}
	if s.Ply() != 0 {
		t.Errorf("Ply() = %d after reset", s.Ply())
	}
	moves, _ := s.History(ctx)
	if len(moves) != 0 {
		t.Errorf("History() = %v after reset", moves)
	}
	if _, err := s.Play(ctx, "e2e4"); err != nil {
		t.Errorf("Play(e2e4) after reset error: %v", err)
	}
}

func TestSession_Restore(t *testing.T) {
	ctx := context.Background()
	repo := dao.NewMemoryMoveRepository()
	first := NewSession("club", repo, zerolog.Nop())
	for _, text := range []string{"e2e4", "d7d5", "e4d5"} {
		if _, err := first.Play(ctx, text); err != nil {
			t.Fatalf("Play(%s) error: %v", text, err)
		}
	}

	second := NewSession("club", repo, zerolog.Nop())
	if err := second.Restore(ctx); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if second.Ply() != 3 {
		t.Errorf("Ply() = %d, want 3", second.Ply())
	}
	if diff := cmp.Diff(first.Snapshot(), second.Snapshot(), cmp.AllowUnexported(chessboard.Board{})); diff != "" {
		t.Errorf("restored board mismatch (-want +got):\n%s", diff)
	}
	if _, err := second.Play(ctx, "d8d5"); !errors.Is(err, chessboard.ErrUnsupportedPieceKind) {
		t.Errorf("Play(d8d5) error = %v", err)
	}
}

func TestSession_RestoreRejectsCorruptJournal(t *testing.T) {
	ctx := context.Background()
	repo := dao.NewMemoryMoveRepository()
	if err := repo.InsertMove(ctx, dao.MoveRecord{Session: "bad", Ply: 1, Notation: "??"}); err != nil {
		t.Fatal(err)
	}
	s := NewSession("bad", repo, zerolog.Nop())
	if err := s.Restore(ctx); !errors.Is(err, chessboard.ErrInvalidFormat) {
		t.Errorf("Restore() error = %v, want ErrInvalidFormat", err)
	}
}

func TestSession_JournalSurvivesCancelledCaller(t *testing.T) {
	repo := dao.NewMemoryMoveRepository()
	live := NewSession("club", repo, zerolog.Nop())

	if _, err := live.Play(context.Background(), "e2e4"); err != nil {
		t.Fatal(err)
	}
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := live.Play(cancelled, "g1f3"); err != nil {
		t.Fatalf("Play(g1f3) with cancelled context error: %v", err)
	}
	if _, err := live.Play(context.Background(), "d7d5"); err != nil {
		t.Fatal(err)
	}

	restored := NewSession("club", repo, zerolog.Nop())
	if err := restored.Restore(context.Background()); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if restored.Ply() != live.Ply() {
		t.Errorf("restored Ply() = %d, live Ply() = %d", restored.Ply(), live.Ply())
	}
	if diff := cmp.Diff(live.Snapshot(), restored.Snapshot(), cmp.AllowUnexported(chessboard.Board{})); diff != "" {
		t.Errorf("restored board mismatch (-live +restored):\n%s", diff)
	}
}

func TestSession_RestoreRejectsMissingPly(t *testing.T) {
	ctx := context.Background()
	repo := dao.NewMemoryMoveRepository()
	for _, rec := range []dao.MoveRecord{
		{Session: "gap", Ply: 1, Notation: "e2e4"},
		{Session: "gap", Ply: 3, Notation: "d7d5"},
	} {
		if err := repo.InsertMove(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	s := NewSession("gap", repo, zerolog.Nop())
	if err := s.Restore(ctx); !errors.Is(err, ErrJournalGap) {
		t.Errorf("Restore() error = %v, want ErrJournalGap", err)
	}
	if s.Ply() != 0 {
		t.Errorf("Ply() = %d after failed restore, want 0", s.Ply())
	}
}
