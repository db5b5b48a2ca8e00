package line

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// buildAttempts tracks how many sub-searches a Build needed.
	buildAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "versegen_line_build_attempts",
		Help:    "Sub-searches per line build",
		Buckets: []float64{1, 2, 4, 8, 16, 32},
	})

	// buildsExhausted counts builds that hit the attempt ceiling.
	buildsExhausted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "versegen_line_builds_exhausted_total",
		Help: "Line builds that reached the attempt ceiling",
	})

	// linesTotal counts generated lines by kind.
	linesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "versegen_lines_total",
		Help: "Generated lines by kind",
	}, []string{"kind"})
)
