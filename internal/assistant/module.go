package assistant

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"assistant",
		logger.WithNamedLogger("assistant"),
		fx.Provide(NewService),
	)
}
