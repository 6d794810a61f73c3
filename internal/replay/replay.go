package replay

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gmkornilov/chess-board-backend/internal/game"
)

// Outcome classifies one processed line.
type Outcome int

const (
	Success Outcome = iota
	ParseFailure
	ValidationFailure
	// JournalFailure means the move was applied but could not be recorded.
	JournalFailure
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "ok"
	case ParseFailure:
		return "parse failure"
	case ValidationFailure:
		return "validation failure"
	case JournalFailure:
		return "journal failure"
	}
	return "unknown"
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

type LineResult struct {
	Line    int        `json:"line"`
	Text    string     `json:"text"`
	Outcome Outcome    `json:"outcome"`
	Move    *game.Move `json:"move,omitempty"`
	Err     error      `json:"-"`
	Error   string     `json:"error,omitempty"`
}

func (r LineResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("line %d: %s: %s: %v", r.Line, r.Text, r.Outcome, r.Err)
	}
	return fmt.Sprintf("line %d: %s: %s", r.Line, r.Text, r.Outcome)
}

type Report struct {
	Session string       `json:"session"`
	Results []LineResult `json:"results"`
	Applied int          `json:"applied"`
	Failed  int          `json:"failed"`
}

func (r *Report) add(res LineResult) {
	r.Results = append(r.Results, res)
	if res.Outcome == Success || res.Outcome == JournalFailure {
		r.Applied++
	} else {
		r.Failed++
	}
}

// Options tune Run.
type Options struct {
	// OnResult is called after every processed line.
	OnResult func(LineResult)
	// StopOnError ends the run at the first line that was not applied.
	StopOnError bool
}

// Run reads one move per line from r and plays each against s in order.
// Blank lines and lines starting with '#' are skipped. A failing line does not
// stop the run unless opts.StopOnError is set; read errors and context
// cancellation do, and are returned with the partial report.
func Run(ctx context.Context, r io.Reader, s *game.Session, opts Options) (Report, error) {
	report := Report{Session: s.ID(), Results: make([]LineResult, 0)}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return report, err
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		res := playLine(ctx, s, lineNo, text)
		report.add(res)
		if opts.OnResult != nil {
			opts.OnResult(res)
		}
		if opts.StopOnError && res.Outcome != Success {
			return report, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return report, fmt.Errorf("reading moves: %w", err)
	}
	return report, nil
}

func playLine(ctx context.Context, s *game.Session, lineNo int, text string) LineResult {
	res := LineResult{Line: lineNo, Text: text}
	move, err := s.Play(ctx, text)
	switch {
	case err == nil:
		res.Outcome = Success
	case game.IsParseError(err):
		res.Outcome = ParseFailure
	case errors.Is(err, game.ErrJournal):
		res.Outcome = JournalFailure
	default:
		res.Outcome = ValidationFailure
	}
	if move.Ply != 0 {
		res.Move = &move
	}
	if err != nil {
		res.Err = err
		res.Error = err.Error()
	}
	return res
}
