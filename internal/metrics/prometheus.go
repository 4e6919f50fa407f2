package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Trades *prometheus.CounterVec
	Models *prometheus.CounterVec
	Runs   *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Trades: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "coinml",
				Name:      "trades",
			}, []string{"coin", "process"}),
		Models: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "coinml",
				Name:      "models",
			}, []string{"type"}),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "coinml",
				Name:      "runs",
			}, []string{"process"}),
	}
}
