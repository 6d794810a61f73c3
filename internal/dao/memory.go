package dao

import (
	"context"
	"sync"
)

// MemoryMoveRepository keeps the journal in process memory. It is used when no
// Mongo address is configured.
type MemoryMoveRepository struct {
	mu    sync.RWMutex
	moves map[string][]MoveRecord
}

func NewMemoryMoveRepository() *MemoryMoveRepository {
	return &MemoryMoveRepository{moves: make(map[string][]MoveRecord)}
}

func (m *MemoryMoveRepository) InsertMove(ctx context.Context, move MoveRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moves[move.Session] = append(m.moves[move.Session], move)
	return nil
}

func (m *MemoryMoveRepository) GetSessionMoves(ctx context.Context, session string) ([]MoveRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	moves := make([]MoveRecord, len(m.moves[session]))
	copy(moves, m.moves[session])
	return moves, nil
}

func (m *MemoryMoveRepository) DeleteSessionMoves(ctx context.Context, session string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.moves, session)
	return nil
}
