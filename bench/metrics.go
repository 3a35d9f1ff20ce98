package bench

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	// duration measures how long one sort of one input took.
	duration *prometheus.HistogramVec

	// runs counts sorts by algorithm and outcome ("ok" or "unsorted").
	runs *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "practice_sort_duration_seconds",
		Help: "The time spent sorting a single benchmark input",
		Buckets: []float64{
			0.00001, // 10µs
			0.0001,  // 100µs
			0.001,   // 1ms
			0.01,    // 10ms
			0.1,     // 100ms
			1,       // 1s
			10,      // 10s
		},
	}, []string{"algorithm"}))
	if err != nil {
		return nil, err
	}

	runs, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "practice_sort_runs_total",
		Help: "The total number of benchmark sorts performed",
	}, []string{"algorithm", "result"}))
	if err != nil {
		return nil, err
	}

	return &metrics{duration: duration, runs: runs}, nil
}

// register adds c to reg, or returns the collector already registered under
// the same descriptor so repeated runs can share one registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	var zero C

	return zero, err
}
