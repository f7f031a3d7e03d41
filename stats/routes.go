package stats

import "github.com/Abolfazl-Alemi/stats-lab/backend"

// route is the per-metric binding produced by the one-shot backend
// resolution at first record. Exactly one route is ever bound to a metric;
// configuration changes after binding affect only metrics that have not
// bound yet.
type route interface {
	record(m *Metric, value float64, tags backend.TagSet)
	close(m *Metric)
}

// resolveRoute picks the active pipeline at the moment of a metric's first
// record and performs the metric's registration with it. The recorder
// pipeline wins when both backends are configured; with neither configured
// the metric binds a route that drops everything.
func resolveRoute(m *Metric) route {
	if rec := state.recorderHandle(); rec != nil {
		registerRecorderMetric(rec, m)
		return &recorderRoute{rec: rec}
	}
	if vb := state.viewBackendHandle(); vb != nil {
		measure := vb.RegisterOrGetMeasure(m.name, m.description, m.unit)
		descriptor := backend.Descriptor{
			Name:        m.name,
			Description: m.description,
			Unit:        m.unit,
			Kind:        m.kind,
			Boundaries:  m.boundaries,
			TagKeys:     m.tagKeys,
		}
		// View columns are the global tag keys followed by the declared
		// keys, fixed at registration time.
		if err := vb.RegisterView(descriptor, tagSetKeys(state.globalTagsSnapshot())); err != nil {
			if log := state.loggerHandle(); log != nil {
				log.Error("Failed to register metric view", err, map[string]interface{}{
					"metric": m.name,
				})
			}
		}
		return &viewRoute{backend: vb, measure: measure}
	}
	return dropRoute{}
}

// registerRecorderMetric declares the instrument matching the metric's kind.
func registerRecorderMetric(rec backend.Recorder, m *Metric) {
	switch m.kind {
	case backend.KindGauge:
		rec.RegisterGaugeMetric(m.name, m.description)
	case backend.KindHistogram:
		rec.RegisterHistogramMetric(m.name, m.description, m.boundaries)
	case backend.KindCount:
		rec.RegisterCounterMetric(m.name, m.description)
	case backend.KindSum:
		rec.RegisterSumMetric(m.name, m.description)
	}
}

// recorderRoute forwards observations to the OpenTelemetry-style pipeline.
type recorderRoute struct {
	rec backend.Recorder
}

// record filters the caller's tags down to the metric's declared keys, lays
// every global tag on top, and forwards the flattened mapping. Caller tags
// with undeclared keys are dropped silently; on a key collision the global
// tag wins.
func (r *recorderRoute) record(m *Metric, value float64, tags backend.TagSet) {
	global := state.globalTagsSnapshot()
	mapping := make(map[string]string, len(tags)+len(global))
	for _, t := range tags {
		if _, ok := m.declared[t.Key.Name()]; ok {
			mapping[t.Key.Name()] = t.Value
		}
	}
	for _, t := range global {
		mapping[t.Key.Name()] = t.Value
	}
	r.rec.SetMetricValue(m.name, mapping, value)
}

// close is a no-op: recorder instruments live as long as their meter.
func (r *recorderRoute) close(*Metric) {}

// viewRoute forwards observations to the view pipeline.
type viewRoute struct {
	backend backend.ViewBackend
	measure backend.MeasureHandle
}

// record forwards the caller's tags with the global tags appended, without
// deduplication: collapsing repeated keys is the backend's concern.
func (r *viewRoute) record(m *Metric, value float64, tags backend.TagSet) {
	global := state.globalTagsSnapshot()
	combined := make(backend.TagSet, 0, len(tags)+len(global))
	combined = append(combined, tags...)
	combined = append(combined, global...)
	r.backend.RecordObservation(r.measure, value, combined)
}

// close removes the metric's view, stopping its export.
func (r *viewRoute) close(m *Metric) {
	r.backend.RemoveView(m.name)
}

// dropRoute is bound when no backend is configured at first record.
type dropRoute struct{}

func (dropRoute) record(*Metric, float64, backend.TagSet) {}

func (dropRoute) close(*Metric) {}
