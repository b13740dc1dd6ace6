// Package metrics records decision runs as Prometheus metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/geange/wordrep"
)

const namespace = "wordrep"

// Recorder is a wordrep.Observer backed by its own registry, so a run's metrics can be written out
// once the process is done.
type Recorder struct {
	registry *prometheus.Registry

	steps     *prometheus.CounterVec
	states    *prometheus.HistogramVec
	decisions *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with all metrics registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "combination_steps_total",
			Help:      "Constraint automata folded into the accumulator.",
		}, []string{"strategy"}),
		states: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "accumulator_states",
			Help:      "Accumulator size after each trimmed combination step.",
			Buckets:   prometheus.ExponentialBuckets(4, 4, 10),
		}, []string{"strategy"}),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decisions_total",
			Help:      "Finished decision runs by outcome.",
		}, []string{"strategy", "representable"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "decision_duration_seconds",
			Help:      "Wall time of a decision run.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"strategy"}),
	}
	r.registry.MustRegister(r.steps, r.states, r.decisions, r.duration)
	return r
}

func (r *Recorder) ObserveStep(step wordrep.Step) {
	strategy := step.Strategy.String()
	r.steps.WithLabelValues(strategy).Inc()
	r.states.WithLabelValues(strategy).Observe(float64(step.States))
}

func (r *Recorder) ObserveDecision(strategy wordrep.Strategy, representable bool, elapsed time.Duration) {
	r.decisions.WithLabelValues(strategy.String(), strconv.FormatBool(representable)).Inc()
	r.duration.WithLabelValues(strategy.String()).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
