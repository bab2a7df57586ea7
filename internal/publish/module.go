package publish

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"publish",
		logger.WithNamedLogger("publish"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(newMetrics, fx.Private),
		fx.Provide(NewService),
	)
}
