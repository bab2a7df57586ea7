package publish

import (
	"github.com/apiarycd/assistd/pkg/promfx"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	publishes      *prometheus.CounterVec
	filesCommitted prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		publishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "assistd",
			Subsystem: "publish",
			Name:      "total",
			Help:      "Publish attempts by outcome and the stage they ended at.",
		}, []string{"status", "stage"}),
		filesCommitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "assistd",
			Subsystem: "publish",
			Name:      "files_committed_total",
			Help:      "Files committed to remote branches.",
		}),
	}

	var err error
	if m.publishes, err = promfx.Register(registerer, m.publishes); err != nil {
		return nil, err
	}
	if m.filesCommitted, err = promfx.Register(registerer, m.filesCommitted); err != nil {
		return nil, err
	}

	return m, nil
}

// record is a no-op on a nil receiver.
func (m *metrics) record(outcome *Outcome) {
	if m == nil {
		return
	}
	m.publishes.WithLabelValues(string(outcome.Status), string(outcome.Stage)).Inc()
	m.filesCommitted.Add(float64(len(outcome.Partial.FilesCommitted)))
}
