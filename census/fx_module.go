package census

import (
	"context"

	"go.uber.org/fx"

	"github.com/Abolfazl-Alemi/stats-lab/backend"
)

// FXModule defines the Fx module for the OpenCensus view backend.
// This module integrates the legacy view pipeline into an Fx-based
// application by providing the Backend factory and registering a lifecycle
// hook that tears the registered views down on shutdown.
//
// The module provides:
// 1. *Backend (concrete type) for direct use
// 2. backend.ViewBackend interface for the stats facade
// 3. Lifecycle management that unregisters all views on stop
//
// Usage:
//
//	app := fx.New(
//	    census.FXModule,
//	    stats.FXModule,
//	    fx.Provide(func() census.Config {
//	        return census.Config{ReportingPeriod: 10 * time.Second}
//	    }),
//	    fx.Provide(func() stats.Config {
//	        return stats.Config{}
//	    }),
//	)
//
// Dependencies required by this module:
// - A census.Config instance must be available in the dependency injection container
var FXModule = fx.Module("census",
	fx.Provide(
		NewBackend, // Provides *Backend
		// Also provide the backend.ViewBackend interface
		fx.Annotate(
			func(b *Backend) backend.ViewBackend { return b },
			fx.As(new(backend.ViewBackend)),
		),
	),
	fx.Invoke(RegisterBackendLifecycle), // Registers the lifecycle hooks
)

// RegisterBackendLifecycle manages the shutdown lifecycle of the OpenCensus
// view backend.
//
// Parameters:
//   - lc: The Fx lifecycle controller
//   - b: The Backend instance
//
// The lifecycle hook:
//   - OnStart: Logs that the view pipeline is ready
//   - OnStop: Unregisters every view the backend registered
//
// Note: This function is automatically invoked by the FXModule and does not
// need to be called directly in application code.
func RegisterBackendLifecycle(lc fx.Lifecycle, b *Backend) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if b.log != nil {
				b.log.Info("OpenCensus view backend ready", nil, nil)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if b.log != nil {
				b.log.Info("Shutting down OpenCensus view backend", nil, nil)
			}
			return b.Close()
		},
	})
}
