// Package backend defines the capability contracts the stats facade requires
// from its metric export backends.
//
// # Overview
//
// The backend package declares two narrow interfaces, ViewBackend for the
// view-based aggregation pipeline and Recorder for the OpenTelemetry-style
// pipeline, together with the tag vocabulary (TagKey, Tag, TagSet) and the
// metric Descriptor that flows through both. The stats package records against
// these contracts only; the concrete census and recorder packages implement
// them. This keeps the two export pipelines interchangeable and independently
// testable.
//
// # Design Philosophy
//
// 1. **Narrow**: each contract exposes exactly what the facade calls, nothing more
// 2. **Interchangeable**: one active backend at a time, selected at first record
// 3. **Leaf**: this package imports nothing from the rest of stats-lab, so the
// core and every adapter can depend on it without cycles
// 4. **Test-friendly**: NoOpViewBackend and NoOpRecorder are safe defaults and
// ready-made doubles
//
// # Tag keys
//
// Tag keys are process-wide identities: RegisterTagKey interns by name, so
// registering the same key string twice yields the same TagKey. Metric
// construction registers every declared key here before any backend is bound,
// which is what lets backend binding stay lazy.
//
// # Implementations
//
//	census.Backend    — ViewBackend over go.opencensus.io measures and views
//	recorder.Recorder — Recorder over go.opentelemetry.io/otel/metric
//
// Applications normally wire an implementation through stats.Config or the
// packages' Fx modules and never call these interfaces directly.
package backend
