package decorengine

import (
	"context"
	"math"
	"time"

	"github.com/composekit/composable-attributes-go/attributes"
)

const defaultChainName = "unnamed"

const (
	statusSuccess = "success"
	statusError   = "error"

	logMsgLookupCompleted = "attribute lookup completed"
	logMsgLookupFailed    = "attribute lookup failed"

	logAttrChain      = "chain"
	logAttrAttribute  = "attribute"
	logAttrDurationMS = "durationMS"
	logAttrError      = "error"
	logAttrInstanceID = "instanceID"

	metricLookupDuration = "attribute_lookup_duration_seconds"
	metricLookups        = "attribute_lookups_total"
	metricLookupErrors   = "attribute_lookup_errors_total"

	spanNameGetAttribute = "attributes.get_attribute"
	spanAttrChain        = "chain.name"
	spanAttrAttribute    = "attribute.name"
	spanAttrInstanceID   = "provider.instance_id"
	spanAttrErrorType    = "error.type"

	labelChain     = "chain"
	labelAttribute = "attribute"
	labelStatus    = "status"
	labelErrorType = "error_type"

	errorTypeUnknownAttribute = "unknown_attribute"
)

// logDebugContext logs lookup details at debug level if a logger is configured,
// preferring the contextual logger for trace correlation.
func (p *InstrumentedProvider) logDebugContext(ctx context.Context, msg string, args ...any) {
	if p.contextualLogger != nil {
		p.contextualLogger.DebugContext(ctx, msg, args...)
		return
	}

	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

// logErrorContext logs error information at the error level if a logger is configured,
// preferring the contextual logger for trace correlation.
func (p *InstrumentedProvider) logErrorContext(ctx context.Context, msg string, err error, args ...any) {
	allArgs := append([]any{logAttrError, err.Error()}, args...)

	if p.contextualLogger != nil {
		p.contextualLogger.ErrorContext(ctx, msg, allArgs...)
		return
	}

	if p.logger != nil {
		p.logger.Error(msg, allArgs...)
	}
}

// recordLookupMetricsContext records a successful lookup if the metrics collector is configured.
func (p *InstrumentedProvider) recordLookupMetricsContext(
	ctx context.Context,
	name attributes.AttributeNameString,
	duration time.Duration,
) {

	if p.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		labelChain:     p.chainName,
		labelAttribute: name,
		labelStatus:    statusSuccess,
	}

	// Use context-aware methods if available
	if contextualCollector, ok := p.metricsCollector.(attributes.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricLookupDuration, duration, labels)
		contextualCollector.IncrementCounterContext(ctx, metricLookups, labels)
		return
	}

	p.metricsCollector.RecordDuration(metricLookupDuration, duration, labels)
	p.metricsCollector.IncrementCounter(metricLookups, labels)
}

// recordErrorMetricsContext records a failed lookup if the metrics collector is configured.
func (p *InstrumentedProvider) recordErrorMetricsContext(
	ctx context.Context,
	name attributes.AttributeNameString,
) {

	if p.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		labelChain:     p.chainName,
		labelAttribute: name,
		labelStatus:    statusError,
		labelErrorType: errorTypeUnknownAttribute,
	}

	// Use context-aware method if available
	if contextualCollector, ok := p.metricsCollector.(attributes.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricLookupErrors, labels)
		return
	}

	p.metricsCollector.IncrementCounter(metricLookupErrors, labels)
}

// startTraceSpan starts a tracing span if the tracing collector is configured.
func (p *InstrumentedProvider) startTraceSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, attributes.SpanContext) {

	if p.tracingCollector != nil {
		return p.tracingCollector.StartSpan(ctx, name, attrs)
	}

	return ctx, nil
}

// finishTraceSpan finishes a tracing span if the tracing collector is configured.
func (p *InstrumentedProvider) finishTraceSpan(
	spanCtx attributes.SpanContext,
	status string,
	attrs map[string]string,
) {

	if p.tracingCollector != nil && spanCtx != nil {
		p.tracingCollector.FinishSpan(spanCtx, status, attrs)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
