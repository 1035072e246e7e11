package testdoubles

import (
	"context"
	"sync"

	"github.com/composekit/composable-attributes-go/attributes"
)

// SpySpan is the attributes.SpanContext implementation handed out by TracingCollectorSpy.
type SpySpan struct {
	Name        string
	StartAttrs  map[string]string
	FinishAttrs map[string]string
	Status      string
	Extra       map[string]string
	Finished    bool

	mu sync.Mutex
}

// SetStatus implements the SpanContext interface for testing.
func (s *SpySpan) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Status = status
}

// AddAttribute implements the SpanContext interface for testing.
func (s *SpySpan) AddAttribute(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Extra == nil {
		s.Extra = make(map[string]string)
	}

	s.Extra[key] = value
}

// Ensure SpySpan implements attributes.SpanContext.
var _ attributes.SpanContext = (*SpySpan)(nil)

// TracingCollectorSpy is an attributes.TracingCollector implementation that
// captures started and finished spans for testing.
type TracingCollectorSpy struct {
	mu    sync.Mutex
	spans []*SpySpan
}

// NewTracingCollectorSpy creates a new TracingCollectorSpy instance.
func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

// StartSpan implements the TracingCollector interface for testing.
func (s *TracingCollectorSpy) StartSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, attributes.SpanContext) {

	span := &SpySpan{Name: name, StartAttrs: attrs}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.spans = append(s.spans, span)

	return ctx, span
}

// FinishSpan implements the TracingCollector interface for testing.
func (s *TracingCollectorSpy) FinishSpan(spanCtx attributes.SpanContext, status string, attrs map[string]string) {
	span, ok := spanCtx.(*SpySpan)
	if !ok {
		return
	}

	span.mu.Lock()
	defer span.mu.Unlock()

	span.Status = status
	span.FinishAttrs = attrs
	span.Finished = true
}

// Spans returns a copy of all spans started so far.
func (s *TracingCollectorSpy) Spans() []*SpySpan {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*SpySpan(nil), s.spans...)
}

// Reset clears all recorded spans.
func (s *TracingCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.spans = nil
}

// Ensure TracingCollectorSpy implements attributes.TracingCollector.
var _ attributes.TracingCollector = (*TracingCollectorSpy)(nil)
