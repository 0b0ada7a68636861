// Package appmode runs a single local search: config, dispatch and error-to-exit-code mapping
package appmode

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/UnendingLoop/minigrep/internal/logger"
	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

const (
	ExitOK    = 0
	ExitError = 1 // и ошибки аргументов, и ошибки выполнения
)

// RunLocal returns the process exit code. Matching lines go to stdout, diagnostics to stderr.
func RunLocal(args []string, lookupEnv func(string) (string, bool), stdout, stderr io.Writer) int {
	cfg, err := parser.BuildConfig(args, lookupEnv)
	if err != nil {
		report(stderr, "Problem parsing arguments", err)
		return ExitError
	}

	log, err := logger.ProvideCLILogger(cfg)
	if err != nil {
		log = zap.NewNop()
	}
	defer func() { _ = log.Sync() }()

	if err := processor.New(log).Run(cfg, stdout); err != nil {
		log.Debug("run failed", zap.Error(err))
		report(stderr, "Application error", err)
		if errors.Is(err, matcher.ErrPattern) {
			fmt.Fprintln(stderr, matcher.RegexHint)
		}
		return ExitError
	}
	return ExitOK
}

func report(w io.Writer, label string, err error) {
	labelColor(w).Fprint(w, label+":")
	fmt.Fprintf(w, " %v\n", err)
}

// labelColor colours only when w itself is a terminal; color.NoColor follows os.Stdout.
func labelColor(w io.Writer) *color.Color {
	c := color.New(color.FgRed, color.Bold)
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
