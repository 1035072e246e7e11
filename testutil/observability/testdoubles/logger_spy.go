package testdoubles

import (
	"context"
	"sync"

	"github.com/composekit/composable-attributes-go/attributes"
)

// SpyLogRecord represents one recorded log call.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
}

// LoggerSpy is an attributes.Logger implementation that captures log calls for testing.
type LoggerSpy struct {
	mu      sync.Mutex
	records []SpyLogRecord
}

// NewLoggerSpy creates a new LoggerSpy instance.
func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{}
}

// Debug implements the Logger interface for testing.
func (s *LoggerSpy) Debug(msg string, args ...any) {
	s.record("debug", msg, args)
}

// Info implements the Logger interface for testing.
func (s *LoggerSpy) Info(msg string, args ...any) {
	s.record("info", msg, args)
}

// Warn implements the Logger interface for testing.
func (s *LoggerSpy) Warn(msg string, args ...any) {
	s.record("warn", msg, args)
}

// Error implements the Logger interface for testing.
func (s *LoggerSpy) Error(msg string, args ...any) {
	s.record("error", msg, args)
}

// Records returns a copy of all recorded log calls.
func (s *LoggerSpy) Records() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyLogRecord(nil), s.records...)
}

// RecordsWithLevel returns a copy of all recorded log calls at the given level.
func (s *LoggerSpy) RecordsWithLevel(level string) []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matching []SpyLogRecord
	for _, record := range s.records {
		if record.Level == level {
			matching = append(matching, record)
		}
	}

	return matching
}

// Reset clears all recorded log calls.
func (s *LoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
}

func (s *LoggerSpy) record(level, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyLogRecord{Level: level, Message: msg, Args: args})
}

// Ensure LoggerSpy implements attributes.Logger.
var _ attributes.Logger = (*LoggerSpy)(nil)

// SpyContextualLogRecord represents one recorded contextual log call.
type SpyContextualLogRecord struct {
	Level   string
	Message string
	Args    []any
	Context context.Context
}

// ContextualLoggerSpy is an attributes.ContextualLogger implementation that
// captures contextual logging calls for testing.
type ContextualLoggerSpy struct {
	mu      sync.Mutex
	records []SpyContextualLogRecord
}

// NewContextualLoggerSpy creates a new ContextualLoggerSpy instance.
func NewContextualLoggerSpy() *ContextualLoggerSpy {
	return &ContextualLoggerSpy{}
}

// DebugContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "debug", msg, args)
}

// InfoContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "info", msg, args)
}

// WarnContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "warn", msg, args)
}

// ErrorContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "error", msg, args)
}

// Records returns a copy of all recorded contextual log calls.
func (s *ContextualLoggerSpy) Records() []SpyContextualLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyContextualLogRecord(nil), s.records...)
}

// Reset clears all recorded contextual log calls.
func (s *ContextualLoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
}

func (s *ContextualLoggerSpy) record(ctx context.Context, level, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyContextualLogRecord{
		Level:   level,
		Message: msg,
		Args:    args,
		Context: ctx,
	})
}

// Ensure ContextualLoggerSpy implements attributes.ContextualLogger.
var _ attributes.ContextualLogger = (*ContextualLoggerSpy)(nil)
