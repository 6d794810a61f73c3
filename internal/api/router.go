package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// requestLogger logs one line per request.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		log.Info().
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", ctx.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

func NewRouter(board *BoardApi, jobs *ReplayApi, log zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(log), gin.Recovery())
	router.SetHTMLTemplate(pageTemplate)

	router.GET("/", board.Index)
	router.POST("/move", board.MoveForm)
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})

	api := router.Group("/api")
	api.GET("/board", board.Board)
	api.POST("/move", board.Move)
	api.GET("/moves", board.Moves)
	api.GET("/fen", board.FEN)
	api.GET("/hint", board.Hint)
	api.POST("/reset", board.Reset)
	api.POST("/replay", jobs.StartReplay)
	api.GET("/replay/:job_id", jobs.GetJobStatus)

	return router
}
