package census

import (
	"context"
	"fmt"
	"sync"
	"time"

	ocstats "go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"

	"github.com/Abolfazl-Alemi/stats-lab/backend"
	"github.com/Abolfazl-Alemi/stats-lab/logger"
)

// measureHandle wraps an OpenCensus float64 measure behind the
// backend.MeasureHandle contract.
type measureHandle struct {
	measure *ocstats.Float64Measure
}

func (h *measureHandle) MeasureName() string { return h.measure.Name() }

// Backend routes observations into the OpenCensus view pipeline.
//
// Measures are registered get-or-create by name, views carry the metric's
// aggregation plus one column per tag key, and every observation is applied
// through tag mutators so the OpenCensus worker can aggregate rows per tag
// combination. Measures and tag keys live in OpenCensus process-global
// registries; the Backend caches its handles so repeated lookups stay cheap.
type Backend struct {
	log *logger.LoggerClient

	mu       sync.RWMutex
	measures map[string]*measureHandle
	views    map[string]*view.View
	tagKeys  map[string]tag.Key
}

// NewBackend initializes and returns a new instance of the OpenCensus view
// backend.
//
// Parameters:
//   - cfg: Configuration carrying the reporting period and an optional logger
//
// Returns:
//   - *Backend: A configured backend ready to be handed to stats.Init or to
//     the Fx container
//
// Example:
//
//	b := census.NewBackend(census.Config{
//	    ReportingPeriod: 10 * time.Second,
//	})
//	stats.Init(stats.Config{ViewBackend: b})
func NewBackend(cfg Config) *Backend {
	b := &Backend{
		log:      cfg.Logger,
		measures: make(map[string]*measureHandle),
		views:    make(map[string]*view.View),
		tagKeys:  make(map[string]tag.Key),
	}

	if cfg.ReportingPeriod > 0 {
		view.SetReportingPeriod(cfg.ReportingPeriod)
	}

	return b
}

// RegisterOrGetMeasure returns the measure handle for name, creating it on
// first use. OpenCensus keeps one measure descriptor per name process-wide,
// so a second registration under the same name reuses the first descriptor
// whatever description or unit it is given.
func (b *Backend) RegisterOrGetMeasure(name, description, unit string) backend.MeasureHandle {
	b.mu.RLock()
	h, ok := b.measures[name]
	b.mu.RUnlock()
	if ok {
		return h
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if h, ok := b.measures[name]; ok {
		return h
	}
	h = &measureHandle{measure: ocstats.Float64(name, description, unit)}
	b.measures[name] = h
	return h
}

// RegisterView registers the OpenCensus view for the described metric.
//
// The view's columns are the extra columns followed by the descriptor's
// declared tag keys, with duplicate names collapsed. The aggregation follows
// the metric kind: gauges keep the last value, histograms distribute over the
// descriptor's explicit boundaries, counts count observations, and sums add
// values.
//
// OpenCensus keeps one view per name: a second registration under an existing
// name is rejected and the error is returned. The shared measure keeps
// accepting measurements either way, aggregated under the first view.
func (b *Backend) RegisterView(d backend.Descriptor, extraColumns []backend.TagKey) error {
	columns, err := b.columnKeys(extraColumns, d.TagKeys)
	if err != nil {
		return err
	}

	aggregation, err := aggregationFor(d)
	if err != nil {
		return err
	}

	measure := b.RegisterOrGetMeasure(d.Name, d.Description, d.Unit).(*measureHandle)

	v := &view.View{
		Name:        d.Name,
		Description: d.Description,
		TagKeys:     columns,
		Measure:     measure.measure,
		Aggregation: aggregation,
	}
	if err := view.Register(v); err != nil {
		return fmt.Errorf("register view %q: %w", d.Name, err)
	}

	b.mu.Lock()
	b.views[d.Name] = v
	b.mu.Unlock()

	if b.log != nil {
		b.log.Debug("Registered OpenCensus view", nil, map[string]interface{}{
			"view":    d.Name,
			"kind":    d.Kind.String(),
			"columns": len(columns),
		})
	}
	return nil
}

// RemoveView unregisters the named view so the worker stops aggregating its
// measurements. Unknown names are ignored.
func (b *Backend) RemoveView(name string) {
	b.mu.Lock()
	v, ok := b.views[name]
	delete(b.views, name)
	b.mu.Unlock()

	if !ok {
		v = view.Find(name)
		if v == nil {
			return
		}
	}
	view.Unregister(v)
}

// RecordObservation applies one measurement with the given tags.
//
// Tags are applied as upsert mutators in order, so when the same key appears
// more than once the last value wins inside the OpenCensus tag map. Tags
// whose key name OpenCensus rejects are skipped; a measurement with an
// invalid tag value is dropped whole.
func (b *Backend) RecordObservation(m backend.MeasureHandle, value float64, tags backend.TagSet) {
	h, ok := m.(*measureHandle)
	if !ok {
		b.mu.RLock()
		h, ok = b.measures[m.MeasureName()]
		b.mu.RUnlock()
		if !ok {
			return
		}
	}

	err := ocstats.RecordWithTags(context.Background(), b.mutators(tags), h.measure.M(value))
	if err != nil && b.log != nil {
		b.log.Debug("Dropped observation with invalid tags", err, map[string]interface{}{
			"measure": h.measure.Name(),
		})
	}
}

// SetReportingPeriod adjusts how often the OpenCensus worker pushes
// aggregated rows to registered exporters.
func (b *Backend) SetReportingPeriod(d time.Duration) {
	view.SetReportingPeriod(d)
}

// Close unregisters every view this backend registered. Measures stay in the
// OpenCensus registry (it has no removal), but without views their
// measurements are no-ops.
func (b *Backend) Close() error {
	b.mu.Lock()
	views := make([]*view.View, 0, len(b.views))
	for _, v := range b.views {
		views = append(views, v)
	}
	b.views = make(map[string]*view.View)
	b.mu.Unlock()

	view.Unregister(views...)
	return nil
}

// columnKeys resolves tag keys into OpenCensus view columns, preserving
// group order and skipping names already taken.
func (b *Backend) columnKeys(groups ...[]backend.TagKey) ([]tag.Key, error) {
	var columns []tag.Key
	seen := make(map[string]struct{})
	for _, group := range groups {
		for _, k := range group {
			if _, ok := seen[k.Name()]; ok {
				continue
			}
			seen[k.Name()] = struct{}{}

			key, err := b.tagKeyFor(k.Name())
			if err != nil {
				return nil, fmt.Errorf("%w %q: %v", ErrInvalidTagKey, k.Name(), err)
			}
			columns = append(columns, key)
		}
	}
	return columns, nil
}

// tagKeyFor returns the OpenCensus key for name, caching resolutions so the
// record path stays a single read-locked map hit per tag.
func (b *Backend) tagKeyFor(name string) (tag.Key, error) {
	b.mu.RLock()
	key, ok := b.tagKeys[name]
	b.mu.RUnlock()
	if ok {
		return key, nil
	}

	key, err := tag.NewKey(name)
	if err != nil {
		return tag.Key{}, err
	}

	b.mu.Lock()
	b.tagKeys[name] = key
	b.mu.Unlock()
	return key, nil
}

func (b *Backend) mutators(tags backend.TagSet) []tag.Mutator {
	mutators := make([]tag.Mutator, 0, len(tags))
	for _, t := range tags {
		key, err := b.tagKeyFor(t.Key.Name())
		if err != nil {
			continue
		}
		mutators = append(mutators, tag.Upsert(key, t.Value))
	}
	return mutators
}

func aggregationFor(d backend.Descriptor) (*view.Aggregation, error) {
	switch d.Kind {
	case backend.KindGauge:
		return view.LastValue(), nil
	case backend.KindHistogram:
		return view.Distribution(d.Boundaries...), nil
	case backend.KindCount:
		return view.Count(), nil
	case backend.KindSum:
		return view.Sum(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedKind, d.Kind.String())
	}
}
