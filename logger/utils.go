package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// extractTracingFields extracts tracing information from the given context and
// returns it as Zap fields. Used internally to add trace correlation data to
// log entries when tracing is enabled.
//
// If the context carries an active, valid span the returned slice holds
// trace_id and span_id; otherwise it is empty.
func (l *LoggerClient) extractTracingFields(ctx context.Context) []zap.Field {
	if !l.tracingEnabled || ctx == nil {
		return nil
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return nil
	}

	spanContext := span.SpanContext()
	if !spanContext.IsValid() {
		return nil
	}

	return []zap.Field{
		zap.String("trace_id", spanContext.TraceID().String()),
		zap.String("span_id", spanContext.SpanID().String()),
	}
}

// convertToZapFields converts an error and additional field maps into Zap's
// structured logging fields. If multiple field maps contain the same key, the
// later maps override earlier ones.
func (l *LoggerClient) convertToZapFields(err error, fields ...map[string]interface{}) []zap.Field {
	var zapFields []zap.Field
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}

	// Iterate through optional field maps and convert them into Zap fields.
	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			zapFields = append(zapFields, zap.Any(key, value))
		}
	}
	return zapFields
}

// Info logs an informational message, along with an optional error and structured fields.
// Use Info for general application progress and successful operations.
//
// Example:
//
//	log.Info("Stats initialized", nil, map[string]interface{}{
//	    "report_interval": "10s",
//	    "disabled":        false,
//	})
func (l *LoggerClient) Info(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.convertToZapFields(err, fields...)...)
}

// Debug logs a debug-level message, useful for development and troubleshooting.
func (l *LoggerClient) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.convertToZapFields(err, fields...)...)
}

// Warn logs a warning message, indicating potential issues that aren't necessarily errors.
func (l *LoggerClient) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.convertToZapFields(err, fields...)...)
}

// Error logs an error message, including details of the error and additional context fields.
//
// Example:
//
//	if err := backend.RegisterView(descriptor, columns); err != nil {
//	    log.Error("Failed to register metric view", err, map[string]interface{}{
//	        "metric": descriptor.Name,
//	    })
//	}
func (l *LoggerClient) Error(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.convertToZapFields(err, fields...)...)
}

// Fatal logs a critical error message and terminates the application with
// os.Exit(1). Use only for errors that make it impossible to continue.
func (l *LoggerClient) Fatal(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Fatal(msg, l.convertToZapFields(err, fields...)...)
}

// InfoWithContext logs an informational message with trace context.
// Trace and span IDs are extracted from ctx when tracing is enabled.
func (l *LoggerClient) InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	zapFields := l.convertToZapFields(err, fields...)
	zapFields = append(zapFields, l.extractTracingFields(ctx)...)
	l.Zap.Info(msg, zapFields...)
}

// DebugWithContext logs a debug-level message with trace context.
// Trace and span IDs are extracted from ctx when tracing is enabled.
func (l *LoggerClient) DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	zapFields := l.convertToZapFields(err, fields...)
	zapFields = append(zapFields, l.extractTracingFields(ctx)...)
	l.Zap.Debug(msg, zapFields...)
}

// WarnWithContext logs a warning message with trace context.
// Trace and span IDs are extracted from ctx when tracing is enabled.
func (l *LoggerClient) WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	zapFields := l.convertToZapFields(err, fields...)
	zapFields = append(zapFields, l.extractTracingFields(ctx)...)
	l.Zap.Warn(msg, zapFields...)
}

// ErrorWithContext logs an error message with trace context.
// Trace and span IDs are extracted from ctx when tracing is enabled.
func (l *LoggerClient) ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	zapFields := l.convertToZapFields(err, fields...)
	zapFields = append(zapFields, l.extractTracingFields(ctx)...)
	l.Zap.Error(msg, zapFields...)
}

// FatalWithContext logs a critical error message with trace context and
// terminates the application with os.Exit(1).
func (l *LoggerClient) FatalWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	zapFields := l.convertToZapFields(err, fields...)
	zapFields = append(zapFields, l.extractTracingFields(ctx)...)
	l.Zap.Fatal(msg, zapFields...)
}
