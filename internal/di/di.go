// Package di hooks the search-node server into the fx lifecycle
package di

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func StartNodeServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, srv *http.Server, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// слушаем сразу, чтобы ошибка занятого порта вернулась из Start
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("search-node running", zap.String("address", ln.Addr().String()))

			go func() {
				err := srv.Serve(ln)
				switch {
				case err == nil, errors.Is(err, http.ErrServerClosed):
					logger.Info("server gracefully stopping...")
				default:
					logger.Error("server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// закрытие всех соединений сервера
			shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("failed to shutdown search-node correctly", zap.String("address", srv.Addr), zap.Error(err))
				return err
			}
			logger.Info("search-node server is closed", zap.String("address", srv.Addr))
			_ = logger.Sync()
			return nil
		},
	})
}
