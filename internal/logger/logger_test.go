package logger_test

import (
	"testing"

	"github.com/UnendingLoop/minigrep/internal/logger"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestProvideLogger(t *testing.T) {
	prod, err := logger.ProvideLogger("prod")
	require.NoError(t, err)
	require.False(t, prod.Core().Enabled(zapcore.DebugLevel))
	require.True(t, prod.Core().Enabled(zapcore.InfoLevel))

	dev, err := logger.ProvideNodeLogger(&model.NodeConfig{Env: "local"})
	require.NoError(t, err)
	require.True(t, dev.Core().Enabled(zapcore.DebugLevel))
}

func TestProvideCLILogger(t *testing.T) {
	quiet, err := logger.ProvideCLILogger(&model.Config{})
	require.NoError(t, err)
	require.False(t, quiet.Core().Enabled(zapcore.ErrorLevel))

	debug, err := logger.ProvideCLILogger(&model.Config{Debug: true})
	require.NoError(t, err)
	require.True(t, debug.Core().Enabled(zapcore.DebugLevel))
}
