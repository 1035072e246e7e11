package oteladapters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/composekit/composable-attributes-go/attributes/oteladapters"
)

func Test_MetricsCollector_RecordDuration(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	collector := oteladapters.NewMetricsCollector(provider.Meter("test"))

	collector.RecordDuration("attribute_lookup_duration_seconds", 150*time.Millisecond, map[string]string{
		"chain":  "stage_speaker",
		"status": "success",
	})

	var resourceMetrics metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &resourceMetrics))

	histogram := findHistogramMetric(t, resourceMetrics, "attribute_lookup_duration_seconds")
	require.Len(t, histogram.DataPoints, 1)

	dataPoint := histogram.DataPoints[0]
	assert.Equal(t, uint64(1), dataPoint.Count)
	assert.InDelta(t, 0.15, dataPoint.Sum, 0.001)

	expectedAttrs := attribute.NewSet(
		attribute.String("chain", "stage_speaker"),
		attribute.String("status", "success"),
	)
	assert.True(t, dataPoint.Attributes.Equals(&expectedAttrs))
}

func Test_MetricsCollector_IncrementCounter(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	collector := oteladapters.NewMetricsCollector(provider.Meter("test"))

	labels := map[string]string{"chain": "stage_speaker", "attribute": "bass"}
	collector.IncrementCounter("attribute_lookups_total", labels)
	collector.IncrementCounter("attribute_lookups_total", labels)
	collector.IncrementCounter("attribute_lookups_total", labels)

	var resourceMetrics metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &resourceMetrics))

	counter := findCounterMetric(t, resourceMetrics, "attribute_lookups_total")
	require.Len(t, counter.DataPoints, 1)
	assert.Equal(t, int64(3), counter.DataPoints[0].Value)
}

func Test_MetricsCollector_RecordValue(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	collector := oteladapters.NewMetricsCollector(provider.Meter("test"))

	collector.RecordValue("chain_depth", 3, map[string]string{"chain": "stage_speaker"})

	var resourceMetrics metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &resourceMetrics))

	gauge := findGaugeMetric(t, resourceMetrics, "chain_depth")
	require.Len(t, gauge.DataPoints, 1)
	assert.InDelta(t, 3.0, gauge.DataPoints[0].Value, 0.0001)
}

func Test_MetricsCollector_ContextVariantsRecord(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	collector := oteladapters.NewMetricsCollector(provider.Meter("test"))
	ctx := context.Background()

	collector.RecordDurationContext(ctx, "attribute_lookup_duration_seconds", time.Millisecond, nil)
	collector.IncrementCounterContext(ctx, "attribute_lookups_total", nil)
	collector.RecordValueContext(ctx, "chain_depth", 1, nil)

	var resourceMetrics metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &resourceMetrics))

	findHistogramMetric(t, resourceMetrics, "attribute_lookup_duration_seconds")
	findCounterMetric(t, resourceMetrics, "attribute_lookups_total")
	findGaugeMetric(t, resourceMetrics, "chain_depth")
}

func findHistogramMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) *metricdata.Histogram[float64] {
	t.Helper()

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, metric := range scopeMetrics.Metrics {
			if metric.Name == name {
				if h, ok := metric.Data.(metricdata.Histogram[float64]); ok {
					return &h
				}
			}
		}
	}

	t.Fatalf("Histogram metric %s not found", name)
	return nil
}

func findCounterMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) *metricdata.Sum[int64] {
	t.Helper()

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, metric := range scopeMetrics.Metrics {
			if metric.Name == name {
				if c, ok := metric.Data.(metricdata.Sum[int64]); ok {
					return &c
				}
			}
		}
	}

	t.Fatalf("Counter metric %s not found", name)
	return nil
}

func findGaugeMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) *metricdata.Gauge[float64] {
	t.Helper()

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, metric := range scopeMetrics.Metrics {
			if metric.Name == name {
				if g, ok := metric.Data.(metricdata.Gauge[float64]); ok {
					return &g
				}
			}
		}
	}

	t.Fatalf("Gauge metric %s not found", name)
	return nil
}
