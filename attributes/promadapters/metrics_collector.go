// Package promadapters provides a Prometheus adapter for the attributes metrics interface,
// for users who expose metrics through a Prometheus registry instead of OpenTelemetry.
package promadapters

import (
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/composekit/composable-attributes-go/attributes"
)

// MetricsCollector implements attributes.MetricsCollector on prometheus/client_golang.
// It maps the attributes metrics interface onto Prometheus collectors:
//   - RecordDuration -> HistogramVec (observed in seconds)
//   - IncrementCounter -> CounterVec
//   - RecordValue -> GaugeVec
//
// Prometheus fixes a metric's label names at registration, so the label keys
// of the first call for a metric name define its label set; later calls for
// the same metric with a different label set are dropped.
type MetricsCollector struct {
	registerer prometheus.Registerer
	mu         sync.Mutex
	histograms map[string]*prometheus.HistogramVec
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
}

// NewMetricsCollector creates a Prometheus metrics collector registering its
// collectors on the given registerer, typically prometheus.DefaultRegisterer
// or a dedicated prometheus.NewRegistry().
func NewMetricsCollector(registerer prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		registerer: registerer,
		histograms: make(map[string]*prometheus.HistogramVec),
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
	}
}

// RecordDuration observes a duration in seconds on a histogram.
func (m *MetricsCollector) RecordDuration(metricName string, duration time.Duration, labels map[string]string) {
	histogram := m.getOrCreateHistogram(metricName, labelKeys(labels))
	if histogram == nil {
		return
	}

	observer, err := histogram.GetMetricWith(prometheus.Labels(labels))
	if err != nil {
		return
	}

	observer.Observe(duration.Seconds())
}

// IncrementCounter increments a counter by one.
func (m *MetricsCollector) IncrementCounter(metricName string, labels map[string]string) {
	counter := m.getOrCreateCounter(metricName, labelKeys(labels))
	if counter == nil {
		return
	}

	metric, err := counter.GetMetricWith(prometheus.Labels(labels))
	if err != nil {
		return
	}

	metric.Inc()
}

// RecordValue sets a gauge to the given value.
func (m *MetricsCollector) RecordValue(metricName string, value float64, labels map[string]string) {
	gauge := m.getOrCreateGauge(metricName, labelKeys(labels))
	if gauge == nil {
		return
	}

	metric, err := gauge.GetMetricWith(prometheus.Labels(labels))
	if err != nil {
		return
	}

	metric.Set(value)
}

func (m *MetricsCollector) getOrCreateHistogram(metricName string, keys []string) *prometheus.HistogramVec {
	m.mu.Lock()
	defer m.mu.Unlock()

	if histogram, ok := m.histograms[metricName]; ok {
		return histogram
	}

	histogram := prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: metricName}, keys)
	if err := m.registerer.Register(histogram); err != nil {
		return nil
	}

	m.histograms[metricName] = histogram

	return histogram
}

func (m *MetricsCollector) getOrCreateCounter(metricName string, keys []string) *prometheus.CounterVec {
	m.mu.Lock()
	defer m.mu.Unlock()

	if counter, ok := m.counters[metricName]; ok {
		return counter
	}

	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: metricName}, keys)
	if err := m.registerer.Register(counter); err != nil {
		return nil
	}

	m.counters[metricName] = counter

	return counter
}

func (m *MetricsCollector) getOrCreateGauge(metricName string, keys []string) *prometheus.GaugeVec {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gauge, ok := m.gauges[metricName]; ok {
		return gauge
	}

	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: metricName}, keys)
	if err := m.registerer.Register(gauge); err != nil {
		return nil
	}

	m.gauges[metricName] = gauge

	return gauge
}

// labelKeys returns the sorted label names of a label set.
func labelKeys(labels map[string]string) []string {
	keys := make([]string, 0, len(labels))
	for key := range labels {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Ensure MetricsCollector implements attributes.MetricsCollector.
var _ attributes.MetricsCollector = (*MetricsCollector)(nil)
