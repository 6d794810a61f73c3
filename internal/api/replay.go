package api

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gmkornilov/chess-board-backend/internal/game"
	"github.com/gmkornilov/chess-board-backend/internal/replay"
	"github.com/rs/zerolog"
)

const maxReplayBody = 1 << 20

type ReplayApi struct {
	Session    *game.Session
	activeJobs map[string]replay.Worker
	totalJobs  int
	mu         sync.RWMutex
	log        zerolog.Logger
}

func NewReplayApi(session *game.Session, log zerolog.Logger) *ReplayApi {
	return &ReplayApi{
		Session:    session,
		activeJobs: make(map[string]replay.Worker),
		log:        log,
	}
}

// StartReplay takes a plain text move list, one move per line, and replays it
// against the session in the background.
func (r *ReplayApi) StartReplay(ctx *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxReplayBody+1))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	if len(body) > maxReplayBody {
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("move list exceeds %d bytes", maxReplayBody),
		})
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.totalJobs++
	id := fmt.Sprintf("%x", md5.Sum([]byte(strconv.Itoa(r.totalJobs))))

	// The job outlives the request, so it does not inherit its context.
	job := replay.NewJob(context.Background(), r.Session, body, r.log.With().Str("job_id", id).Logger())
	r.activeJobs[id] = job
	job.StartWork()

	ctx.JSON(http.StatusAccepted, gin.H{
		"job_id": id,
	})
}

func (r *ReplayApi) GetJobStatus(ctx *gin.Context) {
	id := ctx.Param("job_id")
	r.mu.Lock()
	defer r.mu.Unlock()
	worker, ok := r.activeJobs[id]
	if !ok {
		ctx.AbortWithStatus(http.StatusNotFound)
		return
	}
	if !worker.Done() {
		ctx.JSON(http.StatusOK, gin.H{
			"done":     false,
			"progress": worker.Progress(),
		})
		return
	}

	delete(r.activeJobs, id)
	if worker.Error() != nil {
		ctx.JSON(http.StatusOK, gin.H{
			"done":  true,
			"error": worker.Error().Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"done":   true,
		"result": worker.Result(),
	})
}
