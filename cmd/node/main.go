package main

import (
	"github.com/UnendingLoop/minigrep/internal/config"
	"github.com/UnendingLoop/minigrep/internal/di"
	"github.com/UnendingLoop/minigrep/internal/logger"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/transport"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// search-node: POST /search с текстом и запросом, GET /ping для проверки доступности
func main() {
	app := fx.New(
		fx.Provide(
			config.MustLoad,
			logger.ProvideNodeLogger,
			processor.New,
			func(p *processor.Processor) transport.TaskProcessor {
				return p
			},
			transport.NewNodeServer,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(di.StartNodeServer),
	)
	app.Run()
}
