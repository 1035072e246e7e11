// Package testdoubles provides test doubles (spies) for the attributes observability interfaces.
//
// The spies capture every call made by an instrumented provider so tests can
// verify the observability instrumentation without a telemetry backend:
//   - LoggerSpy: captures plain log calls
//   - ContextualLoggerSpy: captures context-aware log calls
//   - MetricsCollectorSpy: captures duration, counter, and value recordings
//   - TracingCollectorSpy: captures started and finished spans
package testdoubles
