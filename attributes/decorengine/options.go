package decorengine

import (
	"github.com/composekit/composable-attributes-go/attributes"
)

// Option defines a functional option for configuring an InstrumentedProvider.
type Option func(*InstrumentedProvider) error

// WithChainName sets the chain name reported in logs, metrics labels, and span attributes.
func WithChainName(name string) Option {
	return func(p *InstrumentedProvider) error {
		if name == "" {
			return ErrEmptyChainNameSupplied
		}

		p.chainName = name

		return nil
	}
}

// WithLogger sets the logger for the InstrumentedProvider.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: attribute lookups with timing (development use)
// Error level: failed lookups, i.e. unknown attribute names.
func WithLogger(logger attributes.Logger) Option {
	return func(p *InstrumentedProvider) error {
		p.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the InstrumentedProvider.
// When both a contextual logger and a plain logger are configured, the
// contextual logger wins, enabling automatic trace/span correlation.
func WithContextualLogger(logger attributes.ContextualLogger) Option {
	return func(p *InstrumentedProvider) error {
		p.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the InstrumentedProvider.
// The collector will receive lookup durations, lookup counts, and error counts.
func WithMetrics(collector attributes.MetricsCollector) Option {
	return func(p *InstrumentedProvider) error {
		p.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the InstrumentedProvider.
// The collector will receive one span per attribute lookup, including error tracking.
func WithTracing(collector attributes.TracingCollector) Option {
	return func(p *InstrumentedProvider) error {
		p.tracingCollector = collector
		return nil
	}
}
