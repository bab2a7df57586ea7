package server

import (
	"github.com/apiarycd/assistd/internal/server/docs"
	"github.com/apiarycd/assistd/internal/server/handlers/ai"
	"github.com/apiarycd/assistd/internal/server/handlers/jira"
	"github.com/apiarycd/assistd/internal/server/handlers/publishes"
	"github.com/apiarycd/assistd/internal/server/handlers/workspaces"
	"github.com/apiarycd/assistd/internal/server/validation"
	"github.com/apiarycd/assistd/pkg/openapifx"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/health"
	fibervalidation "github.com/go-core-fx/fiberfx/validation"
	"github.com/go-core-fx/logger"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"server",
		logger.WithNamedLogger("server"),

		fx.Provide(func(log *zap.Logger) fiberfx.Options {
			opts := fiberfx.Options{}
			opts.WithErrorHandler(fiberfx.NewJSONErrorHandler(log))
			opts.WithMetrics()
			return opts
		}),
		fx.Supply(docs.SwaggerInfo),

		fx.Provide(
			fx.Annotate(health.NewHandler, fx.ResultTags(`name:"health-handler"`)), fx.Private,
			fx.Annotate(workspaces.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(publishes.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(ai.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(jira.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
		),

		// Custom tags must exist before the first request is validated.
		fx.Invoke(validation.RegisterRules),

		fx.Invoke(
			fx.Annotate(
				func(handlers []handler.Handler, healthHandler handler.Handler, openapiHandler *openapifx.Handler, app *fiber.App) {
					// Health endpoint
					healthHandler.Register(app)

					// Version 1 API group
					v1 := app.Group("/api/v1")
					openapiHandler.Register(v1.Group("/docs"))

					v1.Use(fibervalidation.Middleware)

					for _, h := range handlers {
						h.Register(v1)
					}
				},
				fx.ParamTags(`group:"handlers"`, `name:"health-handler"`),
			),
		),
	)
}
