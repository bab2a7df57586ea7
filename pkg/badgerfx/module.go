package badgerfx

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"badgerfx",
		logger.WithNamedLogger("badgerfx"),
		fx.Provide(newLogger, fx.Private),
		fx.Provide(New),
		fx.Invoke(func(db *badger.DB, config Config, logger *zap.Logger, lifecycle fx.Lifecycle) {
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})

			lifecycle.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("starting badger module",
						zap.String("dir", config.Dir),
						zap.Bool("in_memory", config.InMemory))

					if config.InMemory || config.GCInterval <= 0 {
						close(done)
						return nil
					}

					go func() {
						defer close(done)
						collectGarbage(ctx, db, config.GCInterval, logger)
					}()
					return nil
				},
				OnStop: func(stopCtx context.Context) error {
					logger.Info("stopping badger module")

					cancel()
					select {
					case <-done:
					case <-stopCtx.Done():
					}

					if err := db.Close(); err != nil {
						return fmt.Errorf("failed to close BadgerDB: %w", err)
					}
					return nil
				},
			})
		}),
	)
}
