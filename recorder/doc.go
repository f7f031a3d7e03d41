// Package recorder adapts the OpenTelemetry metric API to the
// backend.Recorder contract so the stats facade can route observations into
// it.
//
// # Overview
//
// The recorder owns one OpenTelemetry instrument per metric name, created on
// first registration and reused for every later observation:
//
//   - gauge     → Float64ObservableGauge, fed by a callback from a
//     last-value store keyed per attribute set
//   - histogram → Float64Histogram with explicit bucket boundaries
//   - count     → Float64Counter (monotonic)
//   - sum       → Float64UpDownCounter (additive in both directions)
//
// SetMetricValue converts the tag mapping into an attribute set and applies
// the value to whichever instrument the name registered. Values for unknown
// names are dropped, which is also the failure mode when instrument creation
// failed and was logged.
//
// # Gauges are pull-based
//
// OpenTelemetry observable gauges report through callbacks at collection
// time, while the facade pushes values at record time. The recorder bridges
// the two with a per-gauge store holding the last value for every attribute
// set seen; each collection observes the whole store. Close unregisters the
// callbacks so a shut-down recorder stops reporting stale values.
//
// # Choosing the meter
//
// By default instruments live on a meter from the global MeterProvider under
// DefaultMeterName, so installing an SDK provider with otel.SetMeterProvider
// is all an application has to do. Tests and embedding applications can hand
// in their own meter or provider through Config:
//
//	reader := sdkmetric.NewManualReader()
//	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
//	r := recorder.NewRecorder(recorder.Config{Meter: provider.Meter("test")})
//	stats.Init(stats.Config{Recorder: r})
//
// Export is the embedding application's concern: whatever readers and
// exporters its MeterProvider is built with receive the instrument data.
package recorder
