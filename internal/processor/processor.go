// Package processor selects a matcher for the task, runs it and writes or returns matching lines
package processor

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/reader"
	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

type Processor struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{logger: logger}
}

// Run reads cfg.FilePath, filters it and writes each matching line to w.
// Nothing is written if the file can't be read or the pattern doesn't compile.
func (p *Processor) Run(cfg *model.Config, w io.Writer) error {
	contents, err := reader.ReadInput(cfg.FilePath)
	if err != nil {
		return err
	}

	mode := cfg.Mode()
	p.logger.Debug("searching file",
		zap.String("path", cfg.FilePath),
		zap.String("mode", string(mode)),
		zap.Int("bytes", len(contents)),
	)

	lines, err := matcher.Find(mode, cfg.Query, contents)
	if err != nil {
		return err
	}
	p.logger.Debug("search finished", zap.Int("matches", len(lines)))

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ProcessInput runs the same matcher selection over text posted to the search node.
func (p *Processor) ProcessInput(ctx context.Context, task *model.SearchTask) (*model.SearchResult, error) {
	result := model.SearchResult{
		TaskID: task.TaskID,
		Mode:   model.SelectMode(task.IgnoreCase, task.UseRegex),
	}

	lines, err := matcher.Find(result.Mode, task.Query, task.Input)
	if err != nil {
		p.logger.Warn("problem with pattern", zap.String("tid", task.TaskID), zap.String("pattern", task.Query), zap.Error(err))
		return nil, err
	}
	result.Output = lines

	// считаем общий хеш
	result.HashSumm, err = hasher(ctx, result.Output)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func hasher(ctx context.Context, input []string) (uint64, error) {
	hs := xxhash.New()
	for _, s := range input {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
			_, _ = hs.WriteString(s)
			_, _ = hs.WriteString("\n")
		}
	}
	return hs.Sum64(), nil
}
