// Package metrics counts what the generator produced, for the textfile
// collector (--metrics-file) and the /metrics endpoint of serve.
package metrics

import (
	"net/http"
	"time"

	"github.com/aretw0/sbmltab/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values of sbmltab_generations_total.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Collector owns a private registry so that tests and multiple generators never
// collide on the global one.
type Collector struct {
	registry    *prometheus.Registry
	entries     prometheus.Counter
	skipped     prometheus.Counter
	generations *prometheus.CounterVec
	duration    prometheus.Histogram
}

// New creates a Collector with all metrics registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		entries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sbmltab_map_entries_total",
			Help: "Map entries turned into widget rows.",
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sbmltab_skipped_children_total",
			Help: "Children of the intracellular element that were not map entries.",
		}),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sbmltab_generations_total",
			Help: "Generation runs by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sbmltab_generation_duration_seconds",
			Help:    "Time spent parsing, generating and rendering one module.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
	c.registry.MustRegister(c.entries, c.skipped, c.generations, c.duration)
	return c
}

// Observe records one generation run. model may be nil when err is set.
func (c *Collector) Observe(model *domain.TabModel, err error, elapsed time.Duration) {
	c.duration.Observe(elapsed.Seconds())
	if err != nil {
		c.generations.WithLabelValues(ResultError).Inc()
		return
	}
	c.generations.WithLabelValues(ResultOK).Inc()
	if model != nil {
		c.entries.Add(float64(len(model.Entries)))
		c.skipped.Add(float64(model.Skipped))
	}
}

// WriteTextfile writes the current values in the text exposition format,
// atomically, for node_exporter's textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}

// Handler serves the registry over HTTP.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
