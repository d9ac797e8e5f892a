// Package metrics exposes search counters in the Prometheus exposition format.
package metrics

import (
	"errors"

	"tour-optimizer/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var errNoRecorder = errors.New("metrics recorder is not configured")

const (
	namespace = "tour_optimizer"
	subsystem = "search"
)

// Recorder owns a private registry so that independent runs (and tests) never share counters.
type Recorder struct {
	registry *prometheus.Registry

	orderings        prometheus.Counter
	missingEdges     prometheus.Counter
	partitions       *prometheus.CounterVec
	waves            prometheus.Counter
	partitionSeconds prometheus.Histogram
	bestDuration     prometheus.Gauge
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,

		// orderings counts every tour ordering the permutation engine produced.
		orderings: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "orderings_total",
			Help:      "Total tour orderings evaluated",
		}),

		missingEdges: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "missing_edges_total",
			Help:      "Total distance lookups that found no entry",
		}),

		// partitions counts finished partitions.
		// Labels: status (valid, invalid)
		partitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "partitions_total",
			Help:      "Total partitions solved by status",
		}, []string{"status"}),

		waves: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "waves_total",
			Help:      "Total partition waves completed",
		}),

		partitionSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "partition_duration_seconds",
			Help:      "Wall time spent solving one partition",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),

		bestDuration: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "best_tour_duration",
			Help:      "Duration of the best tour found",
		}),
	}
}

// ObservePartition records one published partition result.
// All Recorder methods are no-ops on a nil receiver.
func (r *Recorder) ObservePartition(result domain.PartitionResult) {
	if r == nil {
		return
	}
	status := "valid"
	if !result.Valid {
		status = "invalid"
	}
	r.partitions.WithLabelValues(status).Inc()
	r.orderings.Add(float64(result.Orderings))
	r.missingEdges.Add(float64(result.MissingEdges))
	r.partitionSeconds.Observe(result.Elapsed.Seconds())
}

func (r *Recorder) ObserveWave() {
	if r == nil {
		return
	}
	r.waves.Inc()
}

func (r *Recorder) SetBestDuration(duration int) {
	if r == nil {
		return
	}
	r.bestDuration.Set(float64(duration))
}

// Registry returns the gatherer backing this recorder.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// WriteToTextfile dumps the current metric values to path.
func (r *Recorder) WriteToTextfile(path string) error {
	if r == nil {
		return errNoRecorder
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
