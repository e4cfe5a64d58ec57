package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/plugkit/core/metrics"
)

// PromSink records registry and strategy events in Prometheus metrics.
type PromSink struct {
	creations  *prometheus.CounterVec
	executions *prometheus.CounterVec
	latency    *prometheus.HistogramVec
}

// NewPromSink registers the metrics on the default Prometheus registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	creations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "registry_creations_total",
		Help: "Total number of registry instantiation attempts",
	}, []string{"key", "ok"})
	executions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "strategy_executions_total",
		Help: "Total number of delegated strategy calls",
	}, []string{"component", "ok"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "strategy_execution_seconds",
		Help:    "Duration of delegated strategy calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"component"})

	if err := reg.Register(creations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			creations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(executions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			executions = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(latency); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			latency = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{creations: creations, executions: executions, latency: latency}, nil
}

// RecordCreation increments the creation counter for the key.
func (s *PromSink) RecordCreation(ev coremetrics.CreationEvent) {
	s.creations.WithLabelValues(ev.Key, strconv.FormatBool(ev.OK)).Inc()
}

// RecordExecution increments the execution counter and observes the latency.
func (s *PromSink) RecordExecution(ev coremetrics.ExecutionEvent) {
	s.executions.WithLabelValues(ev.Component, strconv.FormatBool(ev.OK)).Inc()
	s.latency.WithLabelValues(ev.Component).Observe(ev.Duration.Seconds())
}
