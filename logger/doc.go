// Package logger provides structured logging for the stats facade and its
// backend adapters.
//
// The logger package is designed to provide a standardized logging approach
// with features such as log levels, contextual logging, distributed tracing
// integration, and flexible output formatting. It integrates with the fx
// dependency injection framework for easy incorporation into applications.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: Defines the contract for logging operations
//   - LoggerClient struct: Concrete implementation of the Logger interface
//   - NewLoggerClient constructor: Returns *LoggerClient (concrete type)
//   - FXModule: Provides both *LoggerClient and Logger interface for dependency injection
//
// Core Features:
//   - Structured logging with key-value pairs
//   - Support for multiple log levels (Debug, Info, Warning, Error, Fatal)
//   - Context-aware logging for request tracing
//   - Automatic trace and span ID extraction from OpenTelemetry span contexts
//   - JSON output format with ISO8601 timestamps
//   - Output directed to stderr
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create a logger directly:
//
//	import "github.com/Abolfazl-Alemi/stats-lab/logger"
//
//	// Create a new logger (returns concrete *LoggerClient)
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "scheduler",
//	})
//
//	// Log with structured fields (without context)
//	log.Info("Stats initialized", nil, map[string]interface{}{
//		"report_interval": "10s",
//		"global_tags":     2,
//	})
//
//	// Log with trace context (automatically includes trace_id and span_id)
//	log.InfoWithContext(ctx, "Processing request", nil, map[string]interface{}{
//		"request_id": "abc-123",
//	})
//
// The stats facade and both backend adapters accept a *LoggerClient through
// their Config structs; when none is given they stay silent:
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info, ServiceName: "scheduler"})
//	stats.Init(stats.Config{
//	    ViewBackend: census.NewBackend(census.Config{Logger: log}),
//	    Logger:      log,
//	})
//
// # FX Module Integration
//
// For production applications using Uber's fx, use the FXModule which provides
// both the concrete type and interface. You must supply a logger.Config to the
// dependency injection container:
//
//	import (
//		"github.com/Abolfazl-Alemi/stats-lab/logger"
//		"go.uber.org/fx"
//	)
//
//	app := fx.New(
//		logger.FXModule, // Provides *LoggerClient and logger.Logger interface
//		fx.Provide(func() logger.Config {
//			return logger.Config{
//				Level:       logger.Info,
//				ServiceName: "scheduler",
//			}
//		}),
//		fx.Invoke(func(log *logger.LoggerClient) {
//			log.Info("Service started", nil)
//		}),
//		// ... other modules
//	)
//	app.Run()
//
// # Logging Levels
//
// Log level constants are defined as string constants in this package:
//
//	logger.Debug   // "debug"
//	logger.Info    // "info"
//	logger.Warning // "warning"
//	logger.Error   // "error"
//
// Example usage:
//
//	log.Debug("Debug message", nil)
//	log.Info("Info message", nil)
//	log.Warn("Warning message", nil)
//	log.Error("Error message", err)
//	log.Fatal("Fatal message", err) // calls os.Exit(1) after logging
//
// # Context-Aware Logging
//
//	log.DebugWithContext(ctx, "Debug with trace", nil)
//	log.InfoWithContext(ctx, "Info with trace", nil)
//	log.WarnWithContext(ctx, "Warning with trace", nil)
//	log.ErrorWithContext(ctx, "Error with trace", err)
//	log.FatalWithContext(ctx, "Fatal with trace", err) // calls os.Exit(1) after logging
//
// # Tracing Integration
//
// When tracing is enabled (EnableTracing: true), the logger will automatically
// extract trace and span IDs from the context and include them in log entries.
// This provides correlation between logs and distributed traces in your
// observability system.
//
// The following fields are automatically added to log entries when tracing is
// enabled and a valid span context is present:
//   - trace_id: The OpenTelemetry trace ID
//   - span_id: The OpenTelemetry span ID
//
// To use tracing, ensure your application has OpenTelemetry configured and pass
// context with active spans to the *WithContext logging methods.
//
// # Thread Safety
//
// All methods on the Logger interface are safe for concurrent use by multiple
// goroutines.
package logger
