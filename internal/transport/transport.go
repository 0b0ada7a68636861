// Package transport provides the search-node server (by ginext) with handlers to serve endpoints
package transport

import (
	"context"
	"errors"
	"net/http"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/docker/distribution/uuid"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
	"go.uber.org/zap"
)

type TaskProcessor interface {
	ProcessInput(ctx context.Context, task *model.SearchTask) (*model.SearchResult, error)
}

type handler struct {
	proc     TaskProcessor
	logger   *zap.Logger
	maxInput int64
}

func NewNodeServer(cfg *model.NodeConfig, proc TaskProcessor, logger *zap.Logger) *http.Server {
	h := &handler{proc: proc, logger: logger, maxInput: cfg.MaxInputBytes}

	engine := ginext.New("release")
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/search", h.ReceiveTask)

	return &http.Server{
		Addr:    cfg.Address,
		Handler: engine,
	}
}

func (h *handler) HealthCheck(ctx *ginext.Context) {
	h.logger.Debug("received a healthcheck request")
	ctx.Status(http.StatusOK)
}

func (h *handler) ReceiveTask(ctx *ginext.Context) {
	if h.maxInput > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, h.maxInput)
	}

	var task model.SearchTask
	if err := ctx.ShouldBindJSON(&task); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse task from body: " + err.Error()})
		return
	}
	if task.TaskID == "" {
		task.TaskID = uuid.Generate().String()
	}

	h.logger.Info("received task",
		zap.String("tid", task.TaskID),
		zap.Int("input_bytes", len(task.Input)),
		zap.Bool("ignore_case", task.IgnoreCase),
		zap.Bool("use_regex", task.UseRegex),
	)

	res, err := h.proc.ProcessInput(ctx.Request.Context(), &task)
	switch {
	case errors.Is(err, matcher.ErrPattern):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"tid": task.TaskID, "error": err.Error(), "hint": matcher.RegexHint})
		return
	case err != nil:
		h.logger.Error("failed to process task", zap.String("tid", task.TaskID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"tid": task.TaskID, "error": err.Error()})
		return
	}

	h.logger.Info("calculated result", zap.String("tid", res.TaskID), zap.Int("matches", len(res.Output)), zap.Uint64("hash", res.HashSumm))
	ctx.JSON(http.StatusOK, res)
}
