package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Trades)
	prometheus.MustRegister(Observer.prometheus.Models)
	prometheus.MustRegister(Observer.prometheus.Runs)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// AddTrades counts simulated trades for the given coin and process.
func (m *Metrics) AddTrades(n int, labels ...string) {
	m.prometheus.Trades.WithLabelValues(labels...).Add(float64(n))
}

// IncrementModels counts a trained model of the given type.
func (m *Metrics) IncrementModels(labels ...string) {
	m.prometheus.Models.WithLabelValues(labels...).Inc()
}

// IncrementRuns counts a completed grid search run.
func (m *Metrics) IncrementRuns(labels ...string) {
	m.prometheus.Runs.WithLabelValues(labels...).Inc()
}
