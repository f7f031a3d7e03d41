// Package census adapts the OpenCensus view pipeline to the backend.ViewBackend
// contract so the stats facade can route observations into it.
//
// # Overview
//
// OpenCensus splits metric collection into measures (what is recorded), views
// (how it is aggregated and which tag columns are kept), and a process-global
// worker that folds measurements into rows and pushes them to exporters. This
// package maps the facade's calls onto that model:
//
//  1. RegisterOrGetMeasure creates or reuses one float64 measure per metric
//     name. The OpenCensus measure registry is process-global, so the same
//     name always resolves to the same descriptor.
//  2. RegisterView registers one view per metric with a column per tag key
//     and the aggregation that matches the metric kind.
//  3. RecordObservation applies the tag set as upsert mutators and records
//     the measurement; the worker aggregates it into the view's rows.
//  4. RemoveView and Close unregister views so the worker stops collecting.
//
// # Aggregations
//
// The metric kind decides the view aggregation:
//
//   - gauge     → view.LastValue()
//   - histogram → view.Distribution(boundaries...)
//   - count     → view.Count()
//   - sum       → view.Sum()
//
// # Usage
//
// The backend is usually handed to stats.Init (or provided through Fx) and
// never called directly:
//
//	b := census.NewBackend(census.Config{
//	    ReportingPeriod: 10 * time.Second,
//	})
//	stats.Init(stats.Config{ViewBackend: b})
//
//	queueDepth := stats.MustNewGauge("queue_depth", "Pending tasks.", "tasks", []string{"WorkerId"})
//	queueDepth.RecordWithTagMap(42, map[string]string{"WorkerId": "w-1"})
//
// Exporters are the embedding application's concern: register an OpenCensus
// exporter (Prometheus, stdout, ...) with view.RegisterExporter and the
// worker pushes aggregated rows to it every reporting period.
//
// # Tag semantics
//
// Tags are applied in order as upserts, so when the facade forwards a caller
// tag and a global tag under the same key the global value, appended last,
// wins inside the tag map. Tag keys OpenCensus rejects are skipped at record
// time and fail view registration; invalid tag values drop the single
// measurement they arrived with.
package census
