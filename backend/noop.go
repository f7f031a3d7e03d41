package backend

// NoOpViewBackend is a ViewBackend that discards everything it is given.
//
// It is the safe default when metric collection is disabled and a ready-made
// double for tests that only care that the facade routed a call somewhere.
type NoOpViewBackend struct{}

// NewNoOpViewBackend creates a ViewBackend that ignores all calls.
//
// Returns:
//   - ViewBackend: a no-op implementation, safe for concurrent use
func NewNoOpViewBackend() ViewBackend {
	return &NoOpViewBackend{}
}

type noopMeasure struct {
	name string
}

func (m noopMeasure) MeasureName() string { return m.name }

// RegisterOrGetMeasure returns a handle that remembers only the name.
func (b *NoOpViewBackend) RegisterOrGetMeasure(name, _, _ string) MeasureHandle {
	return noopMeasure{name: name}
}

// RegisterView does nothing and always succeeds.
func (b *NoOpViewBackend) RegisterView(Descriptor, []TagKey) error { return nil }

// RemoveView does nothing.
func (b *NoOpViewBackend) RemoveView(string) {}

// RecordObservation discards the observation.
func (b *NoOpViewBackend) RecordObservation(MeasureHandle, float64, TagSet) {}

// NoOpRecorder is a Recorder that discards everything it is given.
type NoOpRecorder struct{}

// NewNoOpRecorder creates a Recorder that ignores all calls.
//
// Returns:
//   - Recorder: a no-op implementation, safe for concurrent use
func NewNoOpRecorder() Recorder {
	return &NoOpRecorder{}
}

// RegisterGaugeMetric does nothing.
func (r *NoOpRecorder) RegisterGaugeMetric(string, string) {}

// RegisterHistogramMetric does nothing.
func (r *NoOpRecorder) RegisterHistogramMetric(string, string, []float64) {}

// RegisterCounterMetric does nothing.
func (r *NoOpRecorder) RegisterCounterMetric(string, string) {}

// RegisterSumMetric does nothing.
func (r *NoOpRecorder) RegisterSumMetric(string, string) {}

// SetMetricValue discards the observation.
func (r *NoOpRecorder) SetMetricValue(string, map[string]string, float64) {}
