package internal

import (
	"context"

	"github.com/apiarycd/assistd/internal/assistant"
	"github.com/apiarycd/assistd/internal/config"
	"github.com/apiarycd/assistd/internal/git"
	"github.com/apiarycd/assistd/internal/jira"
	"github.com/apiarycd/assistd/internal/llm"
	"github.com/apiarycd/assistd/internal/publish"
	"github.com/apiarycd/assistd/internal/server"
	"github.com/apiarycd/assistd/internal/workspace"
	"github.com/apiarycd/assistd/pkg/badgerfx"
	"github.com/apiarycd/assistd/pkg/openapifx"
	"github.com/apiarycd/assistd/pkg/promfx"
	"github.com/capcom6/go-infra-fx/validator"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/healthfx"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Run() {
	fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		badgerfx.Module(),
		healthfx.Module(),
		fiberfx.Module(),
		openapifx.Module(),
		promfx.Module(),
		validator.Module,
		//
		// APP MODULES
		config.Module(),
		server.Module(),
		//
		// BUSINESS MODULES
		fx.Provide(func() healthfx.Version { return healthfx.Version{Version: "0.1.0", ReleaseID: 1} }),
		git.Module(),
		publish.Module(),
		llm.Module(),
		assistant.Module(),
		jira.Module(),
		workspace.Module(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("🚀 assistd starting up")
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("🛑 assistd shutting down gracefully")
					return nil
				},
			})
		}),
	).Run()
}
