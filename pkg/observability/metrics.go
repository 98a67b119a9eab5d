package observability

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/camelgraph/pkg/domain"
)

// Conversion outcomes used as the "result" label.
const (
	ResultOK                  = "ok"
	ResultUnknownConstruct    = "unknown_construct"
	ResultUnresolvedReference = "unresolved_reference"
	ResultMissingAttribute    = "missing_attribute"
	ResultUnexpectedConstruct = "unexpected_construct"
	ResultMalformedDocument   = "malformed_document"
	ResultCanceled            = "canceled"
	ResultError               = "error"
)

// Recorder holds the conversion collectors.
type Recorder struct {
	conversions *prometheus.CounterVec
	nodes       *prometheus.CounterVec
	duration    prometheus.Histogram
	cache       *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "camelgraph_conversions_total",
				Help: "Total number of route document conversions",
			},
			[]string{"result"},
		),
		nodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "camelgraph_graph_nodes_total",
				Help: "Total number of emitted graph nodes",
			},
			[]string{"shape"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "camelgraph_conversion_duration_seconds",
				Help:    "Duration of route document conversions",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
		),
		cache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "camelgraph_cache_requests_total",
				Help: "Result cache lookups by outcome",
			},
			[]string{"outcome"},
		),
	}

	if reg != nil {
		reg.MustRegister(r.conversions, r.nodes, r.duration, r.cache)
	}
	return r
}

// ObserveConversion records one finished conversion. g is nil on failure.
func (r *Recorder) ObserveConversion(elapsed time.Duration, g *domain.Graph, err error) {
	if r == nil {
		return
	}
	r.conversions.WithLabelValues(Result(err)).Inc()
	r.duration.Observe(elapsed.Seconds())

	for shape, count := range g.CountByShape() {
		r.nodes.WithLabelValues(shape.Name()).Add(float64(count))
	}
}

// ObserveCache records a cache lookup.
func (r *Recorder) ObserveCache(hit bool) {
	if r == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	r.cache.WithLabelValues(outcome).Inc()
}

// Result classifies a conversion error into a metric label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, domain.ErrUnknownConstruct):
		return ResultUnknownConstruct
	case errors.Is(err, domain.ErrUnresolvedReference):
		return ResultUnresolvedReference
	case errors.Is(err, domain.ErrMissingAttribute):
		return ResultMissingAttribute
	case errors.Is(err, domain.ErrUnexpectedConstruct):
		return ResultUnexpectedConstruct
	case errors.Is(err, domain.ErrMalformedDocument):
		return ResultMalformedDocument
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ResultCanceled
	default:
		return ResultError
	}
}
