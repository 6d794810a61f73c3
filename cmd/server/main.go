package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gmkornilov/chess-board-backend/internal/analysis"
	"github.com/gmkornilov/chess-board-backend/internal/api"
	"github.com/gmkornilov/chess-board-backend/internal/config"
	"github.com/gmkornilov/chess-board-backend/internal/dao"
	"github.com/gmkornilov/chess-board-backend/internal/db"
	"github.com/gmkornilov/chess-board-backend/internal/game"
	"github.com/gmkornilov/chess-board-backend/internal/logger"
)

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.Log, os.Stderr)

	var moveRepo dao.MoveRepository
	if cfg.Database.Address != "" {
		dbClient, err := db.NewDbClient(cfg.Database)
		if err != nil {
			panic(err)
		}
		defer dbClient.Close()
		moveRepo = dao.NewMoveRepository(dbClient)
	} else {
		log.Warn().Msg("MONGO_ADDRESS not set, keeping the move journal in memory")
		moveRepo = dao.NewMemoryMoveRepository()
	}

	engine, err := analysis.NewEngine(cfg.Stockfish)
	if err != nil {
		panic(err)
	}
	defer engine.Close()

	session := game.NewSession(cfg.Session.ID, moveRepo, log)
	if err = session.Restore(context.Background()); err != nil {
		panic(err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(
		api.NewBoardApi(session, engine, log),
		api.NewReplayApi(session, log),
		log,
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("HTTP listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
