// Package metrics collects per-run search statistics of the command line tool
// into a private Prometheus registry and writes them in the text exposition
// format, for node_exporter's textfile collector or for inspection.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/ullman/ullman"
)

// Result labels of ullman_match_total.
const (
	ResultMatch   = "match"
	ResultNoMatch = "no_match"
	ResultError   = "error"
)

// Recorder aggregates the outcome of match invocations. It is safe for
// concurrent use.
type Recorder struct {
	reg      *prometheus.Registry
	total    *prometheus.CounterVec
	states   prometheus.Counter
	pruned   prometheus.Counter
	passes   prometheus.Counter
	matches  prometheus.Counter
	duration prometheus.Histogram
}

// NewRecorder registers the collectors on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		total: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ullman_match_total",
			Help: "Match invocations by result",
		}, []string{"result"}),
		states: f.NewCounter(prometheus.CounterOpts{
			Name: "ullman_search_states_total",
			Help: "Tentative assignments tried by the search",
		}),
		pruned: f.NewCounter(prometheus.CounterOpts{
			Name: "ullman_search_pruned_total",
			Help: "Assignments rejected by edge consistency or forward checking",
		}),
		passes: f.NewCounter(prometheus.CounterOpts{
			Name: "ullman_refine_passes_total",
			Help: "Refinement passes over the compatibility matrix",
		}),
		matches: f.NewCounter(prometheus.CounterOpts{
			Name: "ullman_mappings_total",
			Help: "Complete mappings recorded",
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ullman_match_duration_seconds",
			Help:    "Wall time of one match invocation",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}

// Observe records one invocation. stats may be nil when the invocation failed
// before searching.
func (r *Recorder) Observe(found bool, stats *ullman.Stats, err error, elapsed time.Duration) {
	switch {
	case err != nil:
		r.total.WithLabelValues(ResultError).Inc()
	case found:
		r.total.WithLabelValues(ResultMatch).Inc()
	default:
		r.total.WithLabelValues(ResultNoMatch).Inc()
	}
	r.duration.Observe(elapsed.Seconds())
	if stats == nil {
		return
	}
	r.states.Add(float64(stats.States))
	r.pruned.Add(float64(stats.Pruned))
	r.passes.Add(float64(stats.Passes))
	r.matches.Add(float64(stats.Matches))
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteFile writes every collected metric to path atomically.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	return nil
}
