package workspace

import (
	"context"
	"time"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const minSweepInterval = time.Minute

func Module() fx.Option {
	return fx.Module(
		"workspace",
		logger.WithNamedLogger("workspace"),
		fx.Provide(NewService),
		fx.Invoke(func(svc *Service, config Config, logger *zap.Logger, lc fx.Lifecycle) {
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})

			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("starting workspace janitor", zap.Duration("ttl", config.SessionTTL))
					go func() {
						defer close(done)
						sweep(ctx, svc, max(config.SessionTTL/4, minSweepInterval))
					}()
					return nil
				},
				OnStop: func(stopCtx context.Context) error {
					logger.Info("stopping workspace janitor")
					cancel()
					select {
					case <-done:
					case <-stopCtx.Done():
					}
					return nil
				},
			})
		}),
	)
}

func sweep(ctx context.Context, svc *Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			svc.Expire()
		}
	}
}
