package openapifx

import (
	"github.com/go-core-fx/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/swaggo/swag"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"openapifx",
		logger.WithNamedLogger("openapifx"),
		fx.Provide(New),
	)
}

// Handler serves the Swagger UI and the generated spec.
type Handler struct {
	config Config
	spec   *swag.Spec

	logger *zap.Logger
}

func New(config Config, spec *swag.Spec, logger *zap.Logger) *Handler {
	if config.PublicHost != "" {
		spec.Host = config.PublicHost
	}
	if config.PublicPath != "" {
		spec.BasePath = config.PublicPath
	}

	return &Handler{
		config: config,
		spec:   spec,

		logger: logger,
	}
}

// Register mounts the UI on r. Nothing is mounted when disabled.
func (h *Handler) Register(r fiber.Router) {
	if !h.config.Enabled {
		h.logger.Info("OpenAPI docs are disabled")
		return
	}

	r.Get("/*", swagger.New(swagger.Config{
		InstanceName: h.spec.InstanceName(),
		Title:        h.spec.Title,
	}))

	h.logger.Info("OpenAPI docs enabled", zap.String("host", h.spec.Host), zap.String("base_path", h.spec.BasePath))
}
