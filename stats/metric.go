package stats

import (
	"regexp"
	"sync"
	"sync/atomic"

	"github.com/Abolfazl-Alemi/stats-lab/backend"
)

// nameGrammar is the grammar every metric name must satisfy: a leading
// letter, underscore, or colon followed by letters, digits, underscores, or
// colons. Compiled once at package load.
var nameGrammar = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)

// Metric is the shared core of every metric handle. It carries the identity
// fixed at construction (name, description, unit, kind, declared tag keys)
// and the one-shot state that binds the handle to a backend at first record.
//
// A Metric is constructed once and recorded into many times, concurrently,
// without further coordination by the caller. The zero value is not usable;
// obtain handles through the typed constructors (NewGauge, NewHistogram,
// NewCount, NewSum) or their Must variants.
type Metric struct {
	name        string
	description string
	unit        string
	kind        backend.Kind
	boundaries  []float64

	// tagKeys holds the declared keys in declaration order with duplicates
	// removed; declared is the same set keyed by name, used by the recorder
	// pipeline's tag filter.
	tagKeys  []backend.TagKey
	declared map[string]struct{}

	// bindOnce resolves the active backend and registers the metric exactly
	// once, no matter how many goroutines race the first record.
	bindOnce   sync.Once
	registered atomic.Bool
	route      route

	closeOnce sync.Once
}

// initMetric validates the identity and populates m in place. The typed
// constructors allocate their handle first and fill the embedded Metric
// through this function, so a Metric is never copied after construction.
func initMetric(m *Metric, name, description, unit string, kind backend.Kind, boundaries []float64, tagKeys []string) error {
	if !nameGrammar.MatchString(name) {
		return &InvalidNameError{Name: name}
	}

	m.name = name
	m.description = description
	m.unit = unit
	m.kind = kind
	m.boundaries = boundaries
	m.declared = make(map[string]struct{}, len(tagKeys))
	m.tagKeys = make([]backend.TagKey, 0, len(tagKeys))
	for _, key := range tagKeys {
		if _, ok := m.declared[key]; ok {
			continue
		}
		m.declared[key] = struct{}{}
		m.tagKeys = append(m.tagKeys, backend.RegisterTagKey(key))
	}
	return nil
}

// Name returns the metric name.
func (m *Metric) Name() string {
	return m.name
}

// Description returns the help text declared at construction.
func (m *Metric) Description() string {
	return m.description
}

// Unit returns the unit label declared at construction.
func (m *Metric) Unit() string {
	return m.unit
}

// Kind returns the metric's aggregation kind.
func (m *Metric) Kind() backend.Kind {
	return m.kind
}

// TagKeys returns a copy of the declared tag keys in declaration order.
func (m *Metric) TagKeys() []backend.TagKey {
	return append([]backend.TagKey(nil), m.tagKeys...)
}

// Registered reports whether the metric has bound a backend. It flips from
// false to true at the first record while collection is enabled and never
// reverses.
func (m *Metric) Registered() bool {
	return m.registered.Load()
}

// Record records value with no metric-specific tags. Global tags still apply.
func (m *Metric) Record(value float64) {
	m.RecordWithTags(value, nil)
}

// RecordWithTags records value with the given metric-specific tags.
//
// When collection is disabled the call returns immediately with no side
// effects, not even backend registration. Otherwise the first record through
// this handle resolves the active backend and registers the metric with it;
// every record then forwards the observation with the caller's tags and the
// global tags combined according to the active pipeline. Recording is fire
// and forget: failures are logged, never returned.
func (m *Metric) RecordWithTags(value float64, tags backend.TagSet) {
	if Disabled() {
		return
	}
	m.bindOnce.Do(m.bind)
	m.route.record(m, value, tags)
}

// RecordWithTagMap records value with tags given as a plain map. Map keys
// are applied in sorted order, so repeated calls with equal maps produce
// identical tag sets.
func (m *Metric) RecordWithTagMap(value float64, tags map[string]string) {
	if Disabled() {
		return
	}
	m.RecordWithTags(value, tagSetFromMap(tags))
}

func (m *Metric) bind() {
	m.route = resolveRoute(m)
	m.registered.Store(true)
}

// Close releases the metric's backend registration. On the view pipeline it
// removes the metric's view, stopping its export; on the recorder pipeline
// it is a no-op because instrument lifetime belongs to the meter. Closing a
// metric that never recorded is a no-op. Close is safe to call more than
// once and always returns nil; the signature satisfies io.Closer. Callers
// should not record through the handle after closing it.
func (m *Metric) Close() error {
	m.closeOnce.Do(func() {
		if m.registered.Load() {
			m.route.close(m)
		}
	})
	return nil
}
