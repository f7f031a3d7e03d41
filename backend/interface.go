package backend

// Kind identifies the aggregation a metric asks its backend to apply.
//
// The view pipeline maps kinds to view aggregations (last value, distribution,
// count, sum); the recorder pipeline maps them to instrument types (gauge,
// histogram, counter, up/down counter). The kind is fixed at metric
// construction and never changes afterwards.
type Kind int

const (
	// KindGauge keeps only the most recent observation.
	KindGauge Kind = iota
	// KindHistogram buckets observations into explicit boundaries.
	KindHistogram
	// KindCount counts observations, ignoring their values.
	KindCount
	// KindSum accumulates observation values, negatives allowed.
	KindSum
)

// String returns the lowercase name of the kind, or "unknown" for values
// outside the declared range.
func (k Kind) String() string {
	switch k {
	case KindGauge:
		return "gauge"
	case KindHistogram:
		return "histogram"
	case KindCount:
		return "count"
	case KindSum:
		return "sum"
	default:
		return "unknown"
	}
}

// Descriptor carries everything a backend needs to register a metric: its
// identity, documentation, aggregation kind, histogram boundaries (histograms
// only), and the tag keys declared at construction.
//
// Descriptors are value types; backends must not retain references into the
// slices after registration returns.
type Descriptor struct {
	// Name is the unique metric name. The stats package validates it before
	// any descriptor reaches a backend.
	Name string

	// Description is the human-readable help text exported alongside the data.
	Description string

	// Unit is a free-form unit label such as "ms" or "bytes". It is
	// descriptive only; no conversion is ever applied.
	Unit string

	// Kind selects the aggregation.
	Kind Kind

	// Boundaries holds explicit histogram bucket boundaries. It is nil for
	// every kind except KindHistogram.
	Boundaries []float64

	// TagKeys lists the tag keys declared at metric construction, in
	// declaration order.
	TagKeys []TagKey
}

// MeasureHandle identifies a measure previously registered with a ViewBackend.
//
// Handles are opaque to the stats core: it obtains one from
// RegisterOrGetMeasure and passes it back verbatim to RecordObservation.
// Implementations attach whatever state they need to route the observation.
type MeasureHandle interface {
	// MeasureName reports the name the handle was registered under.
	MeasureName() string
}

// ViewBackend is the contract for the view-based aggregation pipeline.
//
// The pipeline separates the raw measure (what is recorded) from the view
// (how it is aggregated and broken down). A metric registers its measure and
// view once, then records observations against the measure handle; the
// backend aggregates per distinct tag combination.
//
// Implementations must be safe for concurrent use. RecordObservation sits on
// the hot path and must never block on registration work.
type ViewBackend interface {
	// RegisterOrGetMeasure returns the measure registered under name,
	// creating it on first use. Registering the same name again returns the
	// handle created first; the later description and unit are ignored.
	RegisterOrGetMeasure(name, description, unit string) MeasureHandle

	// RegisterView registers the aggregation view for the descriptor. The
	// view's tag columns are extraColumns followed by the descriptor's own
	// TagKeys, in that order. Registering a view that already exists with an
	// identical shape is a no-op; a conflicting shape is an error.
	RegisterView(d Descriptor, extraColumns []TagKey) error

	// RemoveView unregisters the view named name, stopping its export.
	// Removing an unknown view is a no-op.
	RemoveView(name string)

	// RecordObservation records value against the measure with the given
	// tags. The tag set may contain duplicate keys; how duplicates collapse
	// is the implementation's concern.
	RecordObservation(m MeasureHandle, value float64, tags TagSet)
}

// Recorder is the contract for the OpenTelemetry-style pipeline.
//
// Unlike ViewBackend it is name-keyed end to end: registration declares the
// instrument for a name, and SetMetricValue routes observations by that name.
// Registering a name that is already registered is a no-op.
//
// Implementations must be safe for concurrent use.
type Recorder interface {
	// RegisterGaugeMetric declares a last-value instrument.
	RegisterGaugeMetric(name, description string)

	// RegisterHistogramMetric declares a histogram instrument with explicit
	// bucket boundaries.
	RegisterHistogramMetric(name, description string, boundaries []float64)

	// RegisterCounterMetric declares a monotonic counter instrument.
	RegisterCounterMetric(name, description string)

	// RegisterSumMetric declares an up/down counter instrument.
	RegisterSumMetric(name, description string)

	// SetMetricValue records value for the named instrument with the given
	// attribute set. Observations for names that were never registered are
	// dropped.
	SetMetricValue(name string, tags map[string]string, value float64)
}
