package logger_test

import (
	"context"
	"errors"

	"github.com/Abolfazl-Alemi/stats-lab/logger"
)

func ExampleNewLoggerClient() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Info,
		ServiceName: "scheduler",
	})

	log.Info("service started", nil)
}

func ExampleLoggerClient_Info() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Info,
		ServiceName: "scheduler",
	})

	log.Info("stats initialized", nil, map[string]interface{}{
		"report_interval": "10s",
		"global_tags":     2,
	})
}

func ExampleLoggerClient_Error() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Info,
		ServiceName: "scheduler",
	})

	err := errors.New("a different view with the same name is already registered")
	log.Error("failed to register metric view", err, map[string]interface{}{
		"metric": "task_latency_ms",
	})
}

func ExampleLoggerClient_Debug() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Debug,
		ServiceName: "scheduler",
	})

	log.Debug("dropping value for unregistered metric", nil, map[string]interface{}{
		"metric": "queue_depth",
	})
}

func ExampleLoggerClient_InfoWithContext() {
	log := logger.NewLoggerClient(logger.Config{
		Level:         logger.Info,
		ServiceName:   "scheduler",
		EnableTracing: true,
	})

	ctx := context.Background()

	// When an active OpenTelemetry span is present in ctx,
	// trace_id and span_id are automatically attached to the log entry.
	log.InfoWithContext(ctx, "handling request", nil, map[string]interface{}{
		"request_id": "abc-123",
	})
}

func Example_callerSkip() {
	// When wrapping the logger in your own type, increase CallerSkip
	// so the reported caller points to your business logic, not the wrapper.
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Info,
		ServiceName: "scheduler",
		CallerSkip:  2,
	})

	log.Info("called from wrapper", nil)
}
