package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gmkornilov/chess-board-backend/internal/analysis"
	"github.com/gmkornilov/chess-board-backend/internal/game"
	"github.com/rs/zerolog"
)

const invalidFormatMessage = "Invalid move format. Use format 'e2e4'."

type BoardApi struct {
	Session *game.Session
	Engine  *analysis.Engine
	log     zerolog.Logger
}

func NewBoardApi(session *game.Session, engine *analysis.Engine, log zerolog.Logger) *BoardApi {
	return &BoardApi{
		Session: session,
		Engine:  engine,
		log:     log,
	}
}

type moveRequest struct {
	Move string `json:"move" binding:"required"`
}

func (b *BoardApi) Index(ctx *gin.Context) {
	board := b.Session.Snapshot()
	ctx.HTML(http.StatusOK, "index", page{
		Rows: boardRows(board),
		Ply:  b.Session.Ply(),
	})
}

// MoveForm handles the HTML form post and redirects back to the board.
func (b *BoardApi) MoveForm(ctx *gin.Context) {
	text := strings.TrimSpace(ctx.PostForm("move_notation"))
	_, err := b.Session.Play(ctx.Request.Context(), text)
	switch {
	case err == nil, errors.Is(err, game.ErrJournal):
		ctx.Redirect(http.StatusSeeOther, "/")
	case game.IsParseError(err):
		ctx.String(http.StatusBadRequest, invalidFormatMessage)
	default:
		ctx.String(http.StatusBadRequest, "Invalid move: %v", err)
	}
}

func (b *BoardApi) Move(ctx *gin.Context) {
	var req moveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	move, err := b.Session.Play(ctx.Request.Context(), strings.TrimSpace(req.Move))
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, move)
	case errors.Is(err, game.ErrJournal):
		ctx.JSON(http.StatusOK, gin.H{
			"move":    move,
			"warning": err.Error(),
		})
	case game.IsParseError(err):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": invalidFormatMessage,
		})
	default:
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	}
}

func (b *BoardApi) Board(ctx *gin.Context) {
	board := b.Session.Snapshot()
	ctx.JSON(http.StatusOK, gin.H{
		"session":   b.Session.ID(),
		"ply":       b.Session.Ply(),
		"squares":   symbols(board),
		"placement": analysis.Placement(board),
	})
}

func (b *BoardApi) FEN(ctx *gin.Context) {
	side, err := analysis.ParseSide(ctx.DefaultQuery("side", "w"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	fen, err := analysis.FEN(b.Session.Snapshot(), side)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"fen": fen,
	})
}

func (b *BoardApi) Hint(ctx *gin.Context) {
	side, err := analysis.ParseSide(ctx.DefaultQuery("side", "w"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	best, err := b.Engine.BestMove(b.Session.Snapshot(), side)
	if errors.Is(err, analysis.ErrEngineUnavailable) {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": err.Error(),
		})
		return
	}
	if err != nil {
		b.log.Error().Err(err).Msg("engine hint failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"move":  best,
		"legal": b.Session.Check(best) == nil,
	})
}

func (b *BoardApi) Moves(ctx *gin.Context) {
	moves, err := b.Session.History(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, moves)
}

func (b *BoardApi) Reset(ctx *gin.Context) {
	if err := b.Session.Reset(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	ctx.Status(http.StatusNoContent)
}
