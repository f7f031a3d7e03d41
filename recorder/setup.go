package recorder

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/multierr"

	"github.com/Abolfazl-Alemi/stats-lab/logger"
)

// gaugeState keeps the last recorded value per attribute set and feeds the
// observable gauge's callback from it. OpenTelemetry gauges are pull-based,
// so a pushed value has to be parked here until the next collection.
type gaugeState struct {
	instrument   metric.Float64ObservableGauge
	registration metric.Registration

	mu     sync.Mutex
	points map[attribute.Distinct]gaugePoint
}

type gaugePoint struct {
	set   attribute.Set
	value float64
}

func (g *gaugeState) observe(_ context.Context, o metric.Observer) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, p := range g.points {
		o.ObserveFloat64(g.instrument, p.value, metric.WithAttributeSet(p.set))
	}
	return nil
}

func (g *gaugeState) record(set attribute.Set, value float64) {
	g.mu.Lock()
	g.points[set.Equivalent()] = gaugePoint{set: set, value: value}
	g.mu.Unlock()
}

// Recorder routes observations into OpenTelemetry instruments.
//
// Each metric name owns exactly one instrument, created on first
// registration and reused afterwards: gauges become observable gauges fed
// from a per-attribute-set last-value store, counts become monotonic
// counters, sums become up-down counters, and histograms carry their
// explicit bucket boundaries.
type Recorder struct {
	meter metric.Meter
	log   *logger.LoggerClient

	mu         sync.RWMutex
	gauges     map[string]*gaugeState
	counters   map[string]metric.Float64Counter
	sums       map[string]metric.Float64UpDownCounter
	histograms map[string]metric.Float64Histogram
}

// NewRecorder initializes and returns a new instance of the OpenTelemetry
// recorder.
//
// Parameters:
//   - cfg: Configuration naming the meter (or provider) to create
//     instruments on and an optional logger
//
// Returns:
//   - *Recorder: A configured recorder ready to be handed to stats.Init or
//     to the Fx container
//
// Example:
//
//	r := recorder.NewRecorder(recorder.Config{})
//	stats.Init(stats.Config{Recorder: r})
func NewRecorder(cfg Config) *Recorder {
	meter := cfg.Meter
	if meter == nil {
		name := cfg.MeterName
		if name == "" {
			name = DefaultMeterName
		}
		provider := cfg.MeterProvider
		if provider == nil {
			provider = otel.GetMeterProvider()
		}
		meter = provider.Meter(name)
	}

	return &Recorder{
		meter:      meter,
		log:        cfg.Logger,
		gauges:     make(map[string]*gaugeState),
		counters:   make(map[string]metric.Float64Counter),
		sums:       make(map[string]metric.Float64UpDownCounter),
		histograms: make(map[string]metric.Float64Histogram),
	}
}

// RegisterGaugeMetric creates the observable gauge for name and registers
// its callback. A second registration under the same name is a no-op.
func (r *Recorder) RegisterGaugeMetric(name, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.gauges[name]; ok {
		return
	}

	instrument, err := r.meter.Float64ObservableGauge(name, metric.WithDescription(description))
	if err != nil {
		r.logRegistrationFailure("gauge", name, err)
		return
	}
	g := &gaugeState{
		instrument: instrument,
		points:     make(map[attribute.Distinct]gaugePoint),
	}
	registration, err := r.meter.RegisterCallback(g.observe, instrument)
	if err != nil {
		r.logRegistrationFailure("gauge", name, err)
		return
	}
	g.registration = registration
	r.gauges[name] = g
}

// RegisterHistogramMetric creates the histogram for name with the given
// explicit bucket boundaries. A second registration under the same name is a
// no-op.
func (r *Recorder) RegisterHistogramMetric(name, description string, boundaries []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.histograms[name]; ok {
		return
	}

	instrument, err := r.meter.Float64Histogram(name,
		metric.WithDescription(description),
		metric.WithExplicitBucketBoundaries(boundaries...),
	)
	if err != nil {
		r.logRegistrationFailure("histogram", name, err)
		return
	}
	r.histograms[name] = instrument
}

// RegisterCounterMetric creates the monotonic counter for name. A second
// registration under the same name is a no-op.
func (r *Recorder) RegisterCounterMetric(name, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.counters[name]; ok {
		return
	}

	instrument, err := r.meter.Float64Counter(name, metric.WithDescription(description))
	if err != nil {
		r.logRegistrationFailure("counter", name, err)
		return
	}
	r.counters[name] = instrument
}

// RegisterSumMetric creates the up-down counter for name, so the aggregate
// follows additions in either direction. A second registration under the
// same name is a no-op.
func (r *Recorder) RegisterSumMetric(name, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sums[name]; ok {
		return
	}

	instrument, err := r.meter.Float64UpDownCounter(name, metric.WithDescription(description))
	if err != nil {
		r.logRegistrationFailure("sum", name, err)
		return
	}
	r.sums[name] = instrument
}

// SetMetricValue applies one observation to the instrument registered under
// name. Values for names with no registered instrument are dropped.
func (r *Recorder) SetMetricValue(name string, tags map[string]string, value float64) {
	r.mu.RLock()
	gauge := r.gauges[name]
	counter := r.counters[name]
	sum := r.sums[name]
	histogram := r.histograms[name]
	r.mu.RUnlock()

	set := attributeSet(tags)
	ctx := context.Background()

	switch {
	case gauge != nil:
		gauge.record(set, value)
	case counter != nil:
		counter.Add(ctx, value, metric.WithAttributeSet(set))
	case sum != nil:
		sum.Add(ctx, value, metric.WithAttributeSet(set))
	case histogram != nil:
		histogram.Record(ctx, value, metric.WithAttributeSet(set))
	default:
		if r.log != nil {
			r.log.Debug("Dropping value for unregistered metric", nil, map[string]interface{}{
				"metric": name,
			})
		}
	}
}

// Close unregisters every gauge callback so collections stop observing
// stale values. Synchronous instruments need no teardown; their lifetime
// belongs to the meter.
func (r *Recorder) Close() error {
	r.mu.Lock()
	gauges := r.gauges
	r.gauges = make(map[string]*gaugeState)
	r.counters = make(map[string]metric.Float64Counter)
	r.sums = make(map[string]metric.Float64UpDownCounter)
	r.histograms = make(map[string]metric.Float64Histogram)
	r.mu.Unlock()

	var err error
	for _, g := range gauges {
		if g.registration != nil {
			err = multierr.Append(err, g.registration.Unregister())
		}
	}
	return err
}

func (r *Recorder) logRegistrationFailure(kind, name string, err error) {
	if r.log == nil {
		return
	}
	r.log.Error("Failed to register OpenTelemetry instrument", err, map[string]interface{}{
		"metric": name,
		"kind":   kind,
	})
}
