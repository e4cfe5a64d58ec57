package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/kilianp07/plugkit/core/metrics"
)

func TestPromSink_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	sink.RecordCreation(coremetrics.CreationEvent{Key: "circle", OK: true})
	sink.RecordCreation(coremetrics.CreationEvent{Key: "circle", OK: true})
	sink.RecordCreation(coremetrics.CreationEvent{Key: "triangle", OK: false})
	sink.RecordExecution(coremetrics.ExecutionEvent{Component: "support", OK: true, Duration: time.Millisecond})

	assert.Equal(t, 2.0, testutil.ToFloat64(sink.creations.WithLabelValues("circle", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.creations.WithLabelValues("triangle", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.executions.WithLabelValues("support", "true")))
}

func TestPromSink_ReuseRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	second, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	first.RecordCreation(coremetrics.CreationEvent{Key: "k", OK: true})
	second.RecordCreation(coremetrics.CreationEvent{Key: "k", OK: true})
	assert.Equal(t, 2.0, testutil.ToFloat64(first.creations.WithLabelValues("k", "true")))
}
