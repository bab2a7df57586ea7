package jira

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"jira",
		logger.WithNamedLogger("jira"),
		fx.Provide(NewService),
	)
}
