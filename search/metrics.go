package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// runsTotal counts finished runs by terminal state.
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "versegen_search_runs_total",
		Help: "Sequence search runs by terminal state",
	}, []string{"state"})

	// runIterations tracks loop turns per run.
	runIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "versegen_search_iterations",
		Help:    "Loop iterations per sequence search run",
		Buckets: []float64{1, 5, 25, 100, 500, 2000, 6000},
	})
)

// noStartLabel marks runs that failed during initialization.
const noStartLabel = "no_matching_start"

func observe(state State, iterations int) {
	runsTotal.WithLabelValues(state.String()).Inc()
	runIterations.Observe(float64(iterations))
}

func observeNoStart() {
	runsTotal.WithLabelValues(noStartLabel).Inc()
}
