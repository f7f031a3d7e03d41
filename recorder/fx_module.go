package recorder

import (
	"context"

	"go.uber.org/fx"

	"github.com/Abolfazl-Alemi/stats-lab/backend"
)

// FXModule defines the Fx module for the OpenTelemetry recorder.
// This module integrates the recorder pipeline into an Fx-based application
// by providing the Recorder factory and registering a lifecycle hook that
// unregisters the gauge callbacks on shutdown.
//
// The module provides:
// 1. *Recorder (concrete type) for direct use
// 2. backend.Recorder interface for the stats facade
// 3. Lifecycle management that stops gauge observation on stop
//
// Usage:
//
//	app := fx.New(
//	    recorder.FXModule,
//	    stats.FXModule,
//	    fx.Provide(func() recorder.Config {
//	        return recorder.Config{}
//	    }),
//	    fx.Provide(func() stats.Config {
//	        return stats.Config{}
//	    }),
//	)
//
// Dependencies required by this module:
// - A recorder.Config instance must be available in the dependency injection container
var FXModule = fx.Module("recorder",
	fx.Provide(
		NewRecorder, // Provides *Recorder
		// Also provide the backend.Recorder interface
		fx.Annotate(
			func(r *Recorder) backend.Recorder { return r },
			fx.As(new(backend.Recorder)),
		),
	),
	fx.Invoke(RegisterRecorderLifecycle), // Registers the lifecycle hooks
)

// RegisterRecorderLifecycle manages the shutdown lifecycle of the
// OpenTelemetry recorder.
//
// Parameters:
//   - lc: The Fx lifecycle controller
//   - r: The Recorder instance
//
// The lifecycle hook:
//   - OnStart: Logs that the recorder pipeline is ready
//   - OnStop: Unregisters every gauge callback the recorder registered
//
// Note: This function is automatically invoked by the FXModule and does not
// need to be called directly in application code.
func RegisterRecorderLifecycle(lc fx.Lifecycle, r *Recorder) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if r.log != nil {
				r.log.Info("OpenTelemetry recorder ready", nil, nil)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if r.log != nil {
				r.log.Info("Shutting down OpenTelemetry recorder", nil, nil)
			}
			return r.Close()
		},
	})
}
