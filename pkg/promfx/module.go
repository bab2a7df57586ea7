package promfx

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Module provides the process-wide registerer scraped by the fiberfx
// metrics endpoint.
func Module() fx.Option {
	return fx.Module(
		"promfx",
		fx.Provide(func() prometheus.Registerer { return prometheus.DefaultRegisterer }),
	)
}
