// Package stats provides a process-local metrics instrumentation facade with
// typed metric handles and pluggable export backends.
//
// The stats package is designed for instrumenting long-running system
// components: metric handles are constructed once, recorded into many times
// from many goroutines, and routed into exactly one of two interchangeable
// export pipelines without any coordination by the caller.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Gauge, Histogram, Count, Sum structs: Typed metric handles sharing the Metric core
//   - backend.ViewBackend / backend.Recorder interfaces: Contracts the facade records against
//   - census.Backend / recorder.Recorder: Concrete pipeline implementations
//   - FX module: Applies the process-wide configuration through the application lifecycle
//
// The facade never imports a concrete backend; the embedding application
// picks one and hands it to Init (or lets the Fx modules wire it).
//
// # Two Pipelines
//
// Observations flow into exactly one active pipeline:
//
// 1. View pipeline (census.Backend)
//   - Measures and aggregation views in the OpenCensus style
//   - View columns fixed at registration: global tag keys, then declared keys
//   - Observations forwarded as ordered tag lists, duplicates included
//
// 2. Recorder pipeline (recorder.Recorder)
//   - OpenTelemetry instruments keyed by metric name
//   - Caller tags filtered to the declared keys, unknown keys dropped
//   - Global tags overlaid last, so a global value wins a key collision
//
// When both backends are configured the recorder pipeline wins; a metric
// binds its pipeline at first record and never rebinds.
//
// # Core Features
//
//   - Four metric kinds with a fixed aggregation mapping: gauge (last value),
//     histogram (explicit bucket distribution), count (occurrences), sum (additive)
//   - Construction-time name validation against ^[a-zA-Z_:][a-zA-Z0-9_:]*$
//   - Lazy, exactly-once backend registration on first record, safe under
//     concurrent first use
//   - Process-wide disabled flag checked first on every record: disabling
//     stats makes every record call a cheap no-op with zero side effects
//   - Global tags stamped on every observation next to the caller's tags
//   - Fire-and-forget recording: Record never returns an error
//   - Integration with go.uber.org/fx for lifecycle management
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, initialize the package directly:
//
//	import (
//		"github.com/Abolfazl-Alemi/stats-lab/backend"
//		"github.com/Abolfazl-Alemi/stats-lab/census"
//		"github.com/Abolfazl-Alemi/stats-lab/stats"
//	)
//
//	func main() {
//		stats.Init(stats.Config{
//			GlobalTags: backend.TagSet{
//				backend.NewTag("Component", "scheduler"),
//			},
//			ViewBackend: census.NewBackend(census.Config{}),
//		})
//		defer stats.Shutdown()
//
//		queueDepth := stats.MustNewGauge(
//			"queue_depth",
//			"Pending tasks in the scheduler queue",
//			"tasks",
//			[]string{"NodeAddress"},
//		)
//
//		queueDepth.RecordWithTags(42, backend.TagSet{
//			backend.NewTag("NodeAddress", "10.0.0.1"),
//		})
//	}
//
// # FX Module Integration
//
// For applications using Uber's fx, compose the modules; the stats lifecycle
// picks up whichever backend the container provides:
//
//	import (
//		"go.uber.org/fx"
//		"github.com/Abolfazl-Alemi/stats-lab/census"
//		"github.com/Abolfazl-Alemi/stats-lab/logger"
//		"github.com/Abolfazl-Alemi/stats-lab/stats"
//	)
//
//	app := fx.New(
//		logger.FXModule,  // Optional: lifecycle and registration logging
//		census.FXModule,  // Provides backend.ViewBackend
//		stats.FXModule,   // Init on start, Shutdown on stop
//		fx.Provide(func() stats.Config {
//			return stats.Config{
//				GlobalTags: backend.TagSet{backend.NewTag("Component", "scheduler")},
//			}
//		}),
//	)
//	app.Run()
//
// Swapping census.FXModule for recorder.FXModule moves every metric in the
// process onto the OpenTelemetry pipeline with no instrumentation changes.
//
// # Tag Semantics
//
// Every metric declares its tag keys at construction. How caller tags and
// global tags combine depends on the active pipeline:
//
//	m := stats.MustNewCount("tasks_finished", "Finished tasks", "tasks", []string{"WorkerId"})
//	m.RecordWithTags(1, backend.TagSet{
//		backend.NewTag("WorkerId", "w-12"),
//		backend.NewTag("JobId", "j-9"), // not declared
//	})
//
// On the recorder pipeline the "JobId" tag is dropped because it was never
// declared, and a global tag named "WorkerId" would replace "w-12". On the
// view pipeline the full tag list travels to the backend with the global
// tags appended after it, and the backend's tag map decides how repeated
// keys collapse.
//
// Tag keys are process-wide identities: backend.RegisterTagKey interns them
// by name, and metric construction registers every declared key, so keys
// exist before any backend binds.
//
// # Metric Kinds and Usage Examples
//
// ## 1. Gauge - Most recent value per tag combination
//
// Use gauges for current state (queue depth, resident memory, active workers):
//
//	queueDepth := stats.MustNewGauge(
//		"queue_depth",
//		"Pending tasks in the scheduler queue",
//		"tasks",
//		[]string{"Component"},
//	)
//	queueDepth.Record(17)
//	queueDepth.Record(3) // replaces 17 for the same tag combination
//
// ## 2. Histogram - Distribution over explicit bucket boundaries
//
// Use histograms for latency and size distributions. Boundaries are declared
// up front and flow to both pipelines:
//
//	latency := stats.MustNewHistogram(
//		"operation_latency_ms",
//		"Latency of scheduler operations",
//		"ms",
//		[]float64{1, 10, 100, 1000},
//		[]string{"Operation"},
//	)
//	latency.RecordWithTags(12.5, backend.TagSet{backend.NewTag("Operation", "submit")})
//
// ## 3. Count - Number of observations
//
// Use counts when only the number of events matters; the recorded value is
// ignored by the aggregation:
//
//	restarts := stats.MustNewCount(
//		"worker_restarts",
//		"Worker process restarts",
//		"restarts",
//		[]string{"Reason"},
//	)
//	restarts.Record(1)
//
// ## 4. Sum - Additive total of observed values
//
// Use sums for totals that can also decrease (bytes in flight, credit
// balances). Negative values are allowed:
//
//	bytesSent := stats.MustNewSum(
//		"bytes_sent",
//		"Bytes sent over the object transfer channel",
//		"bytes",
//		[]string{"Destination"},
//	)
//	bytesSent.Record(4096)
//	bytesSent.Record(-512)
//
// # Lifecycle
//
// Collection starts disabled. Init applies the configuration and enables
// collection (unless Config.Disabled is set); a second Init is a logged
// no-op. Shutdown disables collection, closes backends that support it, and
// resets the configuration so a later Init starts fresh.
//
// Records issued while disabled return immediately without registering
// anything, so package-level metric handles are safe to declare in programs
// that never initialize stats at all.
//
// Metric handles can be closed individually: Close removes the metric's view
// from the view pipeline and stops its export. On the recorder pipeline
// instrument lifetime belongs to the meter and Close is a no-op.
//
// # Performance Considerations
//
// 1. Tag Cardinality:
//   - Keep tag values bounded (avoid task IDs, timestamps)
//   - Every distinct tag combination is a separate aggregation in the backend
//
// 2. Hot Path:
//   - A record while disabled costs one atomic load
//   - After the first record, recording does no locking in the facade beyond
//     a read lock on the global tag snapshot
//   - Construct handles once and reuse them; construction validates the name
//     and interns tag keys
//
// # Thread Safety
//
// All operations on metric handles and the package-level configuration are
// safe for concurrent use by multiple goroutines. N goroutines racing a
// metric's first record produce exactly one backend registration; the losers
// wait for it and then record normally.
//
// # Testing
//
// For unit tests, inject a backend double and reset the package between
// tests:
//
//	func TestInstrumentation(t *testing.T) {
//		fake := &fakeViewBackend{}
//		stats.Init(stats.Config{ViewBackend: fake})
//		defer stats.Shutdown()
//
//		m := stats.MustNewCount("events_total", "Events seen", "events", nil)
//		m.Record(1)
//
//		// assert against fake's captured observations
//	}
package stats
