package oteladapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/composekit/composable-attributes-go/attributes/oteladapters"
)

func newTestTracer(exporter *tracetest.InMemoryExporter) *oteladapters.TracingCollector {
	provider := trace.NewTracerProvider(trace.WithSyncer(exporter))
	return oteladapters.NewTracingCollector(provider.Tracer("test"))
}

func Test_TracingCollector_StartAndFinishSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	collector := newTestTracer(exporter)

	ctx, spanCtx := collector.StartSpan(context.Background(), "attributes.get_attribute", map[string]string{
		"chain.name":     "stage_speaker",
		"attribute.name": "bass",
	})
	assert.NotNil(t, ctx)
	require.NotNil(t, spanCtx)

	collector.FinishSpan(spanCtx, "success", map[string]string{"result": "ok"})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "attributes.get_attribute", span.Name)
	assert.Equal(t, codes.Ok, span.Status.Code)
	assertSpanHasAttribute(t, span, "chain.name", "stage_speaker")
	assertSpanHasAttribute(t, span, "attribute.name", "bass")
	assertSpanHasAttribute(t, span, "result", "ok")
}

func Test_TracingCollector_FinishSpan_Error(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	collector := newTestTracer(exporter)

	_, spanCtx := collector.StartSpan(context.Background(), "attributes.get_attribute", nil)
	collector.FinishSpan(spanCtx, "error", map[string]string{"error.type": "unknown_attribute"})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, codes.Error, span.Status.Code)
	assertSpanHasAttribute(t, span, "error.type", "unknown_attribute")
}

func Test_TracingCollector_UnknownStatusRecordedAsAttribute(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	collector := newTestTracer(exporter)

	_, spanCtx := collector.StartSpan(context.Background(), "attributes.get_attribute", nil)
	collector.FinishSpan(spanCtx, "partial", nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	assert.Equal(t, codes.Unset, spans[0].Status.Code)
	assertSpanHasAttribute(t, spans[0], "status", "partial")
}

func Test_OTelSpanContext_AddAttribute(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	collector := newTestTracer(exporter)

	_, spanCtx := collector.StartSpan(context.Background(), "attributes.get_attribute", nil)
	spanCtx.AddAttribute("provider.instance_id", "abc-123")
	collector.FinishSpan(spanCtx, "success", nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assertSpanHasAttribute(t, spans[0], "provider.instance_id", "abc-123")
}

func Test_TracingCollector_FinishSpan_IgnoresForeignSpanContext(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	collector := newTestTracer(exporter)

	assert.NotPanics(t, func() {
		collector.FinishSpan(nil, "success", nil)
	})
	assert.Empty(t, exporter.GetSpans())
}

func assertSpanHasAttribute(t *testing.T, span tracetest.SpanStub, key, value string) {
	t.Helper()

	for _, attr := range span.Attributes {
		if string(attr.Key) == key && attr.Value.AsString() == value {
			return
		}
	}

	t.Errorf("span %q is missing attribute %s=%s", span.Name, key, value)
}
