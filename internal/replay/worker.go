package replay

import (
	"bytes"
	"context"
	"sync"

	"github.com/gmkornilov/chess-board-backend/internal/game"
	"github.com/rs/zerolog"
)

type Worker interface {
	StartWork()
	Result() interface{}
	Progress() float64
	Done() bool
	Error() error
}

// Job replays a move list against a session in the background.
type Job struct {
	mu        sync.Mutex
	report    Report
	err       error
	done      bool
	processed int

	ctx     context.Context
	session *game.Session
	moves   []byte
	total   int
	log     zerolog.Logger
}

func NewJob(ctx context.Context, session *game.Session, moves []byte, log zerolog.Logger) *Job {
	return &Job{
		ctx:     ctx,
		session: session,
		moves:   moves,
		total:   countMoveLines(moves),
		log:     log,
	}
}

func (j *Job) StartWork() {
	go j.run()
}

func (j *Job) run() {
	report, err := Run(j.ctx, bytes.NewReader(j.moves), j.session, Options{
		OnResult: func(LineResult) {
			j.mu.Lock()
			defer j.mu.Unlock()
			j.processed++
		},
	})
	if err != nil {
		j.log.Error().Err(err).Msg("replay job failed")
	} else {
		j.log.Info().Int("applied", report.Applied).Int("failed", report.Failed).Msg("replay job finished")
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.report = report
	j.err = err
	j.done = true
}

func (j *Job) Done() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.done
}

func (j *Job) Result() interface{} {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.report
}

func (j *Job) Progress() float64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.done || j.total == 0 {
		return 1
	}
	return float64(j.processed) / float64(j.total)
}

func (j *Job) Error() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.err
}

func countMoveLines(moves []byte) int {
	n := 0
	for _, line := range bytes.Split(moves, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) > 0 && line[0] != '#' {
			n++
		}
	}
	return n
}
