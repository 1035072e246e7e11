package testdoubles

import (
	"sync"
	"time"

	"github.com/composekit/composable-attributes-go/attributes"
)

// SpyDurationRecord represents one recorded duration measurement.
type SpyDurationRecord struct {
	Metric   string
	Duration time.Duration
	Labels   map[string]string
}

// SpyCounterRecord represents one recorded counter increment.
type SpyCounterRecord struct {
	Metric string
	Labels map[string]string
}

// SpyValueRecord represents one recorded gauge value.
type SpyValueRecord struct {
	Metric string
	Value  float64
	Labels map[string]string
}

// MetricsCollectorSpy is an attributes.MetricsCollector implementation that
// captures metrics recording calls for testing.
type MetricsCollectorSpy struct {
	mu        sync.Mutex
	durations []SpyDurationRecord
	counters  []SpyCounterRecord
	values    []SpyValueRecord
}

// NewMetricsCollectorSpy creates a new MetricsCollectorSpy instance.
func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{}
}

// RecordDuration implements the MetricsCollector interface for testing.
func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durations = append(s.durations, SpyDurationRecord{Metric: metric, Duration: duration, Labels: labels})
}

// IncrementCounter implements the MetricsCollector interface for testing.
func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters = append(s.counters, SpyCounterRecord{Metric: metric, Labels: labels})
}

// RecordValue implements the MetricsCollector interface for testing.
func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = append(s.values, SpyValueRecord{Metric: metric, Value: value, Labels: labels})
}

// Durations returns a copy of all recorded duration measurements.
func (s *MetricsCollectorSpy) Durations() []SpyDurationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyDurationRecord(nil), s.durations...)
}

// Counters returns a copy of all recorded counter increments.
func (s *MetricsCollectorSpy) Counters() []SpyCounterRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyCounterRecord(nil), s.counters...)
}

// CountersWithMetric returns a copy of all recorded increments of one counter.
func (s *MetricsCollectorSpy) CountersWithMetric(metric string) []SpyCounterRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matching []SpyCounterRecord
	for _, record := range s.counters {
		if record.Metric == metric {
			matching = append(matching, record)
		}
	}

	return matching
}

// Values returns a copy of all recorded gauge values.
func (s *MetricsCollectorSpy) Values() []SpyValueRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyValueRecord(nil), s.values...)
}

// Reset clears all recorded metrics calls.
func (s *MetricsCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durations = nil
	s.counters = nil
	s.values = nil
}

// Ensure MetricsCollectorSpy implements attributes.MetricsCollector.
var _ attributes.MetricsCollector = (*MetricsCollectorSpy)(nil)
