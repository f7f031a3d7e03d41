package stats

import "github.com/Abolfazl-Alemi/stats-lab/backend"

// Gauge tracks the most recent value per tag combination, for quantities
// that move up and down such as queue depth or resident memory.
type Gauge struct {
	Metric
}

// NewGauge creates a gauge metric handle.
//
// Parameters:
//   - name: metric name matching ^[a-zA-Z_:][a-zA-Z0-9_:]*$
//   - description: help text exported alongside the data
//   - unit: free-form unit label, e.g. "ms" or "bytes"
//   - tagKeys: declared tag keys; duplicates are dropped, order is kept
//
// Returns:
//   - *Gauge: the handle, constructed once and recorded into many times
//   - error: an *InvalidNameError when the name violates the grammar
//
// Example:
//
//	queueDepth, err := stats.NewGauge(
//	    "queue_depth",
//	    "Pending tasks in the scheduler queue",
//	    "tasks",
//	    []string{"Component"},
//	)
//	if err != nil {
//	    return err
//	}
//	queueDepth.RecordWithTags(42, backend.TagSet{backend.NewTag("Component", "scheduler")})
func NewGauge(name, description, unit string, tagKeys []string) (*Gauge, error) {
	g := &Gauge{}
	if err := initMetric(&g.Metric, name, description, unit, backend.KindGauge, nil, tagKeys); err != nil {
		return nil, err
	}
	return g, nil
}

// MustNewGauge is NewGauge panicking on error, for package-level handles
// whose names are fixed at compile time.
func MustNewGauge(name, description, unit string, tagKeys []string) *Gauge {
	g, err := NewGauge(name, description, unit, tagKeys)
	if err != nil {
		panic(err)
	}
	return g
}

// Histogram buckets observations into explicit boundaries, for latency and
// size distributions.
type Histogram struct {
	Metric
}

// NewHistogram creates a histogram metric handle with explicit bucket
// boundaries.
//
// Parameters:
//   - name: metric name matching ^[a-zA-Z_:][a-zA-Z0-9_:]*$
//   - description: help text exported alongside the data
//   - unit: free-form unit label
//   - boundaries: explicit bucket boundaries in ascending order
//   - tagKeys: declared tag keys; duplicates are dropped, order is kept
//
// Returns:
//   - *Histogram: the handle
//   - error: an *InvalidNameError when the name violates the grammar
//
// Example:
//
//	latency, err := stats.NewHistogram(
//	    "operation_latency_ms",
//	    "Latency of scheduler operations",
//	    "ms",
//	    []float64{1, 10, 100, 1000},
//	    []string{"Component", "Operation"},
//	)
func NewHistogram(name, description, unit string, boundaries []float64, tagKeys []string) (*Histogram, error) {
	h := &Histogram{}
	bounds := append([]float64(nil), boundaries...)
	if err := initMetric(&h.Metric, name, description, unit, backend.KindHistogram, bounds, tagKeys); err != nil {
		return nil, err
	}
	return h, nil
}

// MustNewHistogram is NewHistogram panicking on error.
func MustNewHistogram(name, description, unit string, boundaries []float64, tagKeys []string) *Histogram {
	h, err := NewHistogram(name, description, unit, boundaries, tagKeys)
	if err != nil {
		panic(err)
	}
	return h
}

// Boundaries returns a copy of the histogram's bucket boundaries.
func (h *Histogram) Boundaries() []float64 {
	return append([]float64(nil), h.boundaries...)
}

// Count counts observations, ignoring their values. Recording any value adds
// one occurrence to the count.
type Count struct {
	Metric
}

// NewCount creates a count metric handle.
//
// Returns an *InvalidNameError when the name violates the grammar; see
// NewGauge for the parameter semantics shared by all constructors.
func NewCount(name, description, unit string, tagKeys []string) (*Count, error) {
	c := &Count{}
	if err := initMetric(&c.Metric, name, description, unit, backend.KindCount, nil, tagKeys); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewCount is NewCount panicking on error.
func MustNewCount(name, description, unit string, tagKeys []string) *Count {
	c, err := NewCount(name, description, unit, tagKeys)
	if err != nil {
		panic(err)
	}
	return c
}

// Sum accumulates observation values. Negative values are allowed, so a Sum
// can move down as well as up.
type Sum struct {
	Metric
}

// NewSum creates a sum metric handle.
//
// Example:
//
//	bytesSent, err := stats.NewSum(
//	    "bytes_sent",
//	    "Bytes sent over the object transfer channel",
//	    "bytes",
//	    []string{"Destination"},
//	)
func NewSum(name, description, unit string, tagKeys []string) (*Sum, error) {
	s := &Sum{}
	if err := initMetric(&s.Metric, name, description, unit, backend.KindSum, nil, tagKeys); err != nil {
		return nil, err
	}
	return s, nil
}

// MustNewSum is NewSum panicking on error.
func MustNewSum(name, description, unit string, tagKeys []string) *Sum {
	s, err := NewSum(name, description, unit, tagKeys)
	if err != nil {
		panic(err)
	}
	return s
}
