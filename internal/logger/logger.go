// Package logger builds zap loggers for the CLI and the search-node
package logger

import (
	"github.com/UnendingLoop/minigrep/internal/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ProvideLogger builds a JSON logger for "prod" and a console one for anything else.
// Both write to stderr so stdout stays reserved for matching lines.
func ProvideLogger(env string) (*zap.Logger, error) {
	switch env {
	case "prod":
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		zapCfg := zap.NewProductionConfig()
		zapCfg.EncoderConfig = encoderCfg
		zapCfg.OutputPaths = []string{"stderr"}
		return zapCfg.Build()

	default:
		zapCfg := zap.NewDevelopmentConfig()
		zapCfg.Encoding = "console"
		zapCfg.OutputPaths = []string{"stderr"}
		return zapCfg.Build()
	}
}

func ProvideNodeLogger(cfg *model.NodeConfig) (*zap.Logger, error) {
	return ProvideLogger(cfg.Env)
}

// ProvideCLILogger stays silent unless debug output is requested.
func ProvideCLILogger(cfg *model.Config) (*zap.Logger, error) {
	if !cfg.Debug {
		return zap.NewNop(), nil
	}
	return ProvideLogger("local")
}
