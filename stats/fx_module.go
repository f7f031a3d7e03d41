package stats

import (
	"context"

	"go.uber.org/fx"

	"github.com/Abolfazl-Alemi/stats-lab/backend"
	"github.com/Abolfazl-Alemi/stats-lab/logger"
)

// FXModule defines the Fx module for the stats package.
// This module applies the process-wide stats configuration when the
// application starts and shuts collection down when it stops.
//
// The module consumes:
// 1. stats.Config (required) with the flags, tags, and intervals
// 2. *logger.LoggerClient (optional) for lifecycle logging
// 3. backend.ViewBackend (optional), e.g. provided by census.FXModule
// 4. backend.Recorder (optional), e.g. provided by recorder.FXModule
//
// Backends set directly on the Config take precedence over injected ones,
// so applications can mix explicit wiring with module-provided backends.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    census.FXModule,
//	    stats.FXModule,
//	    fx.Provide(func() stats.Config {
//	        return stats.Config{
//	            GlobalTags: backend.TagSet{backend.NewTag("Component", "scheduler")},
//	        }
//	    }),
//	)
//
// Dependencies required by this module:
// - A stats.Config instance must be available in the dependency injection container
var FXModule = fx.Module("stats",
	fx.Invoke(RegisterStatsLifecycle),
)

// StatsLifecycleParams collects the dependencies of the stats lifecycle.
// The logger and both backends are optional: absent bindings leave the
// matching Config fields untouched.
type StatsLifecycleParams struct {
	fx.In

	Config   Config
	Logger   *logger.LoggerClient `optional:"true"`
	View     backend.ViewBackend  `optional:"true"`
	Recorder backend.Recorder     `optional:"true"`
}

// RegisterStatsLifecycle manages the startup and shutdown lifecycle of the
// process-wide stats configuration.
//
// Parameters:
//   - lc: The Fx lifecycle controller
//   - p: The configuration and the optional logger and backends
//
// The lifecycle hook:
//   - OnStart: Fills the Config's empty logger/backend fields from the
//     container and applies it via Init
//   - OnStop: Calls Shutdown, disabling collection and closing the backends
//
// Note: This function is automatically invoked by the FXModule and does not
// need to be called directly in application code.
func RegisterStatsLifecycle(lc fx.Lifecycle, p StatsLifecycleParams) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			cfg := p.Config
			if cfg.Logger == nil {
				cfg.Logger = p.Logger
			}
			if cfg.ViewBackend == nil {
				cfg.ViewBackend = p.View
			}
			if cfg.Recorder == nil {
				cfg.Recorder = p.Recorder
			}
			Init(cfg)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return Shutdown()
		},
	})
}
