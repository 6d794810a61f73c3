package analysis

import (
	"errors"
	"fmt"
	"sync"

	"github.com/freeeve/uci"
	"github.com/gmkornilov/chess-board-backend/internal/config"
	"github.com/gmkornilov/chess-board-backend/pkg/chessboard"
)

var (
	ErrEngineUnavailable = errors.New("engine is not configured")
	ErrNoBestMove        = errors.New("engine returned no move")
)

// Engine asks a UCI engine for a move in a given position. A nil *Engine is
// valid and reports ErrEngineUnavailable.
type Engine struct {
	mu    sync.Mutex
	e     *uci.Engine
	depth int
}

func setupEngine(path string, arg ...string) (*uci.Engine, error) {
	e, err := uci.NewEngine(path, arg...)
	if err != nil {
		return nil, err
	}

	err = e.SetOptions(uci.Options{
		MultiPV: 1,
		Hash:    128,
		Ponder:  false,
		OwnBook: true,
	})
	if err != nil {
		e.Close()
		return nil, err
	}
	return e, nil
}

// NewEngine starts the engine binary named in cfg. It returns nil, nil when no
// path is configured.
func NewEngine(cfg config.StockfishConfiguration) (*Engine, error) {
	if cfg.Path == "" {
		return nil, nil
	}
	e, err := setupEngine(cfg.Path, cfg.Args...)
	if err != nil {
		return nil, fmt.Errorf("starting engine %s: %w", cfg.Path, err)
	}
	return &Engine{e: e, depth: cfg.Depth}, nil
}

// BestMove returns the engine's preferred move for side in coordinate notation.
// The engine knows the full rules of chess, so its move may be one that
// chessboard.Validate rejects (a king or queen move, for example).
func (en *Engine) BestMove(b *chessboard.Board, side chessboard.Color) (string, error) {
	if en == nil || en.e == nil {
		return "", ErrEngineUnavailable
	}
	fen, err := FEN(b, side)
	if err != nil {
		return "", err
	}

	en.mu.Lock()
	defer en.mu.Unlock()

	if err = en.e.SetFEN(fen); err != nil {
		return "", err
	}
	result, err := en.e.GoDepth(en.depth)
	if err != nil {
		return "", err
	}
	if len(result.Results) == 0 || len(result.Results[0].BestMoves) == 0 {
		return "", ErrNoBestMove
	}
	return result.Results[0].BestMoves[0], nil
}

func (en *Engine) Close() {
	if en == nil || en.e == nil {
		return
	}
	en.mu.Lock()
	defer en.mu.Unlock()
	en.e.Close()
}
