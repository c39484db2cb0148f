package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Registry holds the qualifier metrics. It is separate from the default
// registry so only these metrics get pushed.
var Registry = prometheus.NewRegistry()

var (
	// StepTotal tracks handshake steps by step name and status (success or failed)
	StepTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "qualifier_step_total",
			Help: "Total number of handshake steps by step and status (success or failed)",
		},
		[]string{"step", "status"},
	)

	// StepDuration tracks how long each handshake step takes
	StepDuration = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qualifier_step_duration_seconds",
			Help:    "Duration of handshake steps in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"step"},
	)
)

// RecordStep records a finished step with its outcome and duration
func RecordStep(step string, err error, duration time.Duration) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailed
	}

	StepTotal.WithLabelValues(step, status).Inc()
	StepDuration.WithLabelValues(step).Observe(duration.Seconds())
}
