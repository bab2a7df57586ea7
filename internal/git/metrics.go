package git

import (
	"time"

	"github.com/apiarycd/assistd/pkg/promfx"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requestDuration *prometheus.HistogramVec
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "assistd",
			Subsystem: "githost",
			Name:      "request_duration_seconds",
			Help:      "Duration of git host API calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op", "outcome"}),
	}

	var err error
	if m.requestDuration, err = promfx.Register(registerer, m.requestDuration); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *metrics) observe(op string, started time.Time, err error) {
	if m == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.requestDuration.WithLabelValues(op, outcome).Observe(time.Since(started).Seconds())
}
