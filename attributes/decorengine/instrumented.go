package decorengine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/composekit/composable-attributes-go/attributes"
)

// InstrumentedProvider wraps any provider with observability. It is itself a
// decorator: values and errors pass through strictly unchanged, only the
// configured collectors observe the traffic.
//
// All collectors are optional; a provider without any configured collector
// behaves exactly like its inner provider.
type InstrumentedProvider struct {
	inner            attributes.Provider
	chainName        string
	instanceID       uuid.UUID
	logger           attributes.Logger
	contextualLogger attributes.ContextualLogger
	metricsCollector attributes.MetricsCollector
	tracingCollector attributes.TracingCollector
}

// NewInstrumentedProvider creates an InstrumentedProvider around inner,
// configured with the given options. Each instance carries a unique id
// included in log and span attributes, so overlapping chains can be told
// apart in telemetry.
func NewInstrumentedProvider(inner attributes.Provider, options ...Option) (*InstrumentedProvider, error) {
	if inner == nil {
		return nil, ErrNilInnerProvider
	}

	provider := &InstrumentedProvider{
		inner:      inner,
		chainName:  defaultChainName,
		instanceID: uuid.New(),
	}

	for _, option := range options {
		if err := option(provider); err != nil {
			return nil, err
		}
	}

	return provider, nil
}

// ChainName returns the configured chain name.
func (p *InstrumentedProvider) ChainName() string {
	return p.chainName
}

// InstanceID returns the unique id of this instrumented provider.
func (p *InstrumentedProvider) InstanceID() uuid.UUID {
	return p.instanceID
}

// GetAttribute implements attributes.Provider, instrumenting the lookup with
// a background context.
func (p *InstrumentedProvider) GetAttribute(name attributes.AttributeNameString) (attributes.Value, error) {
	return p.GetAttributeContext(context.Background(), name)
}

// GetAttributeContext performs an instrumented lookup: it records the lookup
// duration, increments lookup and error counters, and reports one trace span
// per lookup. The value and any error from the inner provider are returned
// unchanged.
func (p *InstrumentedProvider) GetAttributeContext(
	ctx context.Context,
	name attributes.AttributeNameString,
) (attributes.Value, error) {

	start := time.Now()

	ctx, span := p.startTraceSpan(ctx, spanNameGetAttribute, map[string]string{
		spanAttrChain:      p.chainName,
		spanAttrAttribute:  name,
		spanAttrInstanceID: p.instanceID.String(),
	})

	value, err := p.inner.GetAttribute(name)
	duration := time.Since(start)

	if err != nil {
		p.logErrorContext(ctx, logMsgLookupFailed, err,
			logAttrChain, p.chainName,
			logAttrAttribute, name,
			logAttrInstanceID, p.instanceID.String())
		p.recordErrorMetricsContext(ctx, name)
		p.finishTraceSpan(span, statusError, map[string]string{spanAttrErrorType: errorTypeUnknownAttribute})

		return attributes.Value{}, err
	}

	p.logDebugContext(ctx, logMsgLookupCompleted,
		logAttrChain, p.chainName,
		logAttrAttribute, name,
		logAttrDurationMS, toMilliseconds(duration))
	p.recordLookupMetricsContext(ctx, name, duration)
	p.finishTraceSpan(span, statusSuccess, nil)

	return value, nil
}

// AttributeNames delegates to the inner provider.
func (p *InstrumentedProvider) AttributeNames() []attributes.AttributeNameString {
	return p.inner.AttributeNames()
}

// Ensure InstrumentedProvider implements attributes.Provider.
var _ attributes.Provider = (*InstrumentedProvider)(nil)
