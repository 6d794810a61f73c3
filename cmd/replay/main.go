package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gmkornilov/chess-board-backend/internal/analysis"
	"github.com/gmkornilov/chess-board-backend/internal/config"
	"github.com/gmkornilov/chess-board-backend/internal/dao"
	"github.com/gmkornilov/chess-board-backend/internal/db"
	"github.com/gmkornilov/chess-board-backend/internal/game"
	"github.com/gmkornilov/chess-board-backend/internal/logger"
	"github.com/gmkornilov/chess-board-backend/internal/replay"
)

func main() {
	os.Exit(run())
}

func run() int {
	input := flag.String("input", "-", "move list, one coordinate move per line (- for stdin)")
	sessionID := flag.String("session", "replay", "journal session id")
	parquetPath := flag.String("parquet", "", "write the per-line report to this parquet file")
	stopOnError := flag.Bool("stop-on-error", false, "stop at the first move that is not applied")
	diagram := flag.Bool("diagram", true, "print the final board")
	flag.Parse()

	cfg, err := config.InitReplayConfig()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.Log, os.Stderr)

	var moveRepo dao.MoveRepository = dao.NewMemoryMoveRepository()
	if cfg.Database.Address != "" {
		dbClient, err := db.NewDbClient(cfg.Database)
		if err != nil {
			panic(err)
		}
		defer dbClient.Close()
		moveRepo = dao.NewMoveRepository(dbClient)
	}

	var r io.Reader = os.Stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		r = f
	}

	session := game.NewSession(*sessionID, moveRepo, log)
	if err = session.Restore(context.Background()); err != nil {
		panic(err)
	}

	report, err := replay.Run(context.Background(), r, session, replay.Options{
		StopOnError: *stopOnError,
		OnResult: func(res replay.LineResult) {
			fmt.Println(res)
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("replay aborted")
	}
	fmt.Printf("%d applied, %d failed\n", report.Applied, report.Failed)

	if *diagram {
		fmt.Println(analysis.Diagram(session.Snapshot()))
	}

	if *parquetPath != "" {
		if err := replay.WriteParquet(*parquetPath, report); err != nil {
			panic(err)
		}
		log.Info().Str("path", *parquetPath).Int("rows", len(report.Results)).Msg("report written")
	}

	if err != nil || report.Failed > 0 {
		return 1
	}
	return 0
}
