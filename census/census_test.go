package census_test

import (
	"errors"
	"testing"

	"go.opencensus.io/stats/view"

	"github.com/Abolfazl-Alemi/stats-lab/backend"
	"github.com/Abolfazl-Alemi/stats-lab/census"
)

// newBackend returns a backend whose views are torn down when the test ends.
// OpenCensus registries are process-global, so every test records under
// names of its own.
func newBackend(t *testing.T) *census.Backend {
	t.Helper()
	b := census.NewBackend(census.Config{})
	t.Cleanup(func() {
		if err := b.Close(); err != nil {
			t.Errorf("Close() error: %v", err)
		}
	})
	return b
}

func descriptor(name string, kind backend.Kind, keys ...string) backend.Descriptor {
	return backend.Descriptor{
		Name:        name,
		Description: "description of " + name,
		Unit:        "1",
		Kind:        kind,
		TagKeys:     backend.RegisterTagKeys(keys),
	}
}

// retrieveRows waits for the worker to fold queued measurements, which it has
// done by the time RetrieveData returns because both travel the same channel.
func retrieveRows(t *testing.T, name string) []*view.Row {
	t.Helper()
	rows, err := view.RetrieveData(name)
	if err != nil {
		t.Fatalf("RetrieveData(%q) error: %v", name, err)
	}
	return rows
}

func rowTags(row *view.Row) map[string]string {
	tags := make(map[string]string, len(row.Tags))
	for _, tg := range row.Tags {
		tags[tg.Key.Name()] = tg.Value
	}
	return tags
}

func TestRegisterOrGetMeasureReusesHandle(t *testing.T) {
	b := newBackend(t)

	first := b.RegisterOrGetMeasure("census_reuse_ms", "latency", "ms")
	second := b.RegisterOrGetMeasure("census_reuse_ms", "latency", "ms")
	if first != second {
		t.Error("same name should return the same measure handle")
	}

	other := b.RegisterOrGetMeasure("census_reuse_other", "latency", "ms")
	if other == first {
		t.Error("different names should return different measure handles")
	}
	if other.MeasureName() != "census_reuse_other" {
		t.Errorf("MeasureName() = %q, want %q", other.MeasureName(), "census_reuse_other")
	}
}

func TestCountAggregation(t *testing.T) {
	b := newBackend(t)
	const name = "census_count_total"

	m := b.RegisterOrGetMeasure(name, "observation count", "1")
	if err := b.RegisterView(descriptor(name, backend.KindCount), nil); err != nil {
		t.Fatalf("RegisterView() error: %v", err)
	}

	for i := 0; i < 3; i++ {
		b.RecordObservation(m, 42, nil)
	}

	rows := retrieveRows(t, name)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	data, ok := rows[0].Data.(*view.CountData)
	if !ok {
		t.Fatalf("row data is %T, want *view.CountData", rows[0].Data)
	}
	if data.Value != 3 {
		t.Errorf("count = %d, want 3", data.Value)
	}
}

func TestSumAggregation(t *testing.T) {
	b := newBackend(t)
	const name = "census_sum_bytes"

	m := b.RegisterOrGetMeasure(name, "bytes sent", "bytes")
	if err := b.RegisterView(descriptor(name, backend.KindSum), nil); err != nil {
		t.Fatalf("RegisterView() error: %v", err)
	}

	b.RecordObservation(m, 1.5, nil)
	b.RecordObservation(m, 2.5, nil)

	rows := retrieveRows(t, name)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	data, ok := rows[0].Data.(*view.SumData)
	if !ok {
		t.Fatalf("row data is %T, want *view.SumData", rows[0].Data)
	}
	if data.Value != 4.0 {
		t.Errorf("sum = %v, want 4.0", data.Value)
	}
}

func TestLastValueAggregation(t *testing.T) {
	b := newBackend(t)
	const name = "census_gauge_depth"

	m := b.RegisterOrGetMeasure(name, "queue depth", "tasks")
	if err := b.RegisterView(descriptor(name, backend.KindGauge), nil); err != nil {
		t.Fatalf("RegisterView() error: %v", err)
	}

	b.RecordObservation(m, 1, nil)
	b.RecordObservation(m, 5, nil)
	b.RecordObservation(m, 3, nil)

	rows := retrieveRows(t, name)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	data, ok := rows[0].Data.(*view.LastValueData)
	if !ok {
		t.Fatalf("row data is %T, want *view.LastValueData", rows[0].Data)
	}
	if data.Value != 3 {
		t.Errorf("last value = %v, want 3", data.Value)
	}
}

func TestDistributionAggregation(t *testing.T) {
	b := newBackend(t)
	const name = "census_hist_latency"

	m := b.RegisterOrGetMeasure(name, "latency", "ms")
	d := descriptor(name, backend.KindHistogram)
	d.Boundaries = []float64{10, 100}
	if err := b.RegisterView(d, nil); err != nil {
		t.Fatalf("RegisterView() error: %v", err)
	}

	b.RecordObservation(m, 5, nil)
	b.RecordObservation(m, 50, nil)
	b.RecordObservation(m, 500, nil)

	rows := retrieveRows(t, name)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	data, ok := rows[0].Data.(*view.DistributionData)
	if !ok {
		t.Fatalf("row data is %T, want *view.DistributionData", rows[0].Data)
	}
	if data.Count != 3 {
		t.Errorf("count = %d, want 3", data.Count)
	}
	if data.Min != 5 || data.Max != 500 {
		t.Errorf("min/max = %v/%v, want 5/500", data.Min, data.Max)
	}
	wantBuckets := []int64{1, 1, 1}
	if len(data.CountPerBucket) != len(wantBuckets) {
		t.Fatalf("got %d buckets, want %d", len(data.CountPerBucket), len(wantBuckets))
	}
	for i, want := range wantBuckets {
		if data.CountPerBucket[i] != want {
			t.Errorf("bucket %d count = %d, want %d", i, data.CountPerBucket[i], want)
		}
	}
}

func TestViewColumnsCarryTagValues(t *testing.T) {
	b := newBackend(t)
	const name = "census_tagged_total"

	m := b.RegisterOrGetMeasure(name, "tagged observations", "1")
	d := descriptor(name, backend.KindCount, "WorkerId")
	extra := backend.RegisterTagKeys([]string{"Component"})
	if err := b.RegisterView(d, extra); err != nil {
		t.Fatalf("RegisterView() error: %v", err)
	}

	b.RecordObservation(m, 1, backend.TagSet{
		backend.NewTag("WorkerId", "w-1"),
		backend.NewTag("Component", "scheduler"),
	})

	rows := retrieveRows(t, name)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	tags := rowTags(rows[0])
	if tags["WorkerId"] != "w-1" {
		t.Errorf("WorkerId = %q, want %q", tags["WorkerId"], "w-1")
	}
	if tags["Component"] != "scheduler" {
		t.Errorf("Component = %q, want %q", tags["Component"], "scheduler")
	}
}

func TestRowsSplitPerTagCombination(t *testing.T) {
	b := newBackend(t)
	const name = "census_split_total"

	m := b.RegisterOrGetMeasure(name, "split observations", "1")
	if err := b.RegisterView(descriptor(name, backend.KindCount, "WorkerId"), nil); err != nil {
		t.Fatalf("RegisterView() error: %v", err)
	}

	b.RecordObservation(m, 1, backend.TagSet{backend.NewTag("WorkerId", "w-1")})
	b.RecordObservation(m, 1, backend.TagSet{backend.NewTag("WorkerId", "w-1")})
	b.RecordObservation(m, 1, backend.TagSet{backend.NewTag("WorkerId", "w-2")})

	rows := retrieveRows(t, name)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	counts := make(map[string]int64)
	for _, row := range rows {
		counts[rowTags(row)["WorkerId"]] = row.Data.(*view.CountData).Value
	}
	if counts["w-1"] != 2 {
		t.Errorf("w-1 count = %d, want 2", counts["w-1"])
	}
	if counts["w-2"] != 1 {
		t.Errorf("w-2 count = %d, want 1", counts["w-2"])
	}
}

func TestDuplicateTagKeyLastValueWins(t *testing.T) {
	b := newBackend(t)
	const name = "census_dup_total"

	m := b.RegisterOrGetMeasure(name, "duplicate tags", "1")
	if err := b.RegisterView(descriptor(name, backend.KindCount, "Component"), nil); err != nil {
		t.Fatalf("RegisterView() error: %v", err)
	}

	// The facade forwards caller tags first and global tags last; the later
	// upsert must win inside the tag map.
	b.RecordObservation(m, 1, backend.TagSet{
		backend.NewTag("Component", "caller"),
		backend.NewTag("Component", "global"),
	})

	rows := retrieveRows(t, name)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if got := rowTags(rows[0])["Component"]; got != "global" {
		t.Errorf("Component = %q, want %q", got, "global")
	}
}

func TestColumnsDeduplicated(t *testing.T) {
	b := newBackend(t)
	const name = "census_dedup_total"

	d := descriptor(name, backend.KindCount, "Component", "WorkerId")
	extra := backend.RegisterTagKeys([]string{"Component"})
	if err := b.RegisterView(d, extra); err != nil {
		t.Fatalf("RegisterView() error: %v", err)
	}

	v := view.Find(name)
	if v == nil {
		t.Fatal("view.Find returned nil for a registered view")
	}
	if len(v.TagKeys) != 2 {
		t.Errorf("got %d columns, want 2", len(v.TagKeys))
	}
}

func TestRegisterViewUnsupportedKind(t *testing.T) {
	b := newBackend(t)

	err := b.RegisterView(descriptor("census_bad_kind", backend.Kind(42)), nil)
	if err == nil {
		t.Fatal("RegisterView() should fail for an unknown kind")
	}
	if !errors.Is(err, census.ErrUnsupportedKind) {
		t.Errorf("error = %v, want ErrUnsupportedKind", err)
	}
}

func TestRegisterViewRejectsInvalidTagKey(t *testing.T) {
	b := newBackend(t)

	d := descriptor("census_bad_key", backend.KindCount)
	d.TagKeys = []backend.TagKey{backend.RegisterTagKey("")}
	err := b.RegisterView(d, nil)
	if err == nil {
		t.Fatal("RegisterView() should fail for an empty tag key name")
	}
	if !errors.Is(err, census.ErrInvalidTagKey) {
		t.Errorf("error = %v, want ErrInvalidTagKey", err)
	}
}

func TestRegisterViewConflictingName(t *testing.T) {
	b := newBackend(t)
	const name = "census_conflict_total"

	if err := b.RegisterView(descriptor(name, backend.KindCount), nil); err != nil {
		t.Fatalf("RegisterView() error: %v", err)
	}
	if err := b.RegisterView(descriptor(name, backend.KindSum), nil); err == nil {
		t.Error("registering a different aggregation under the same name should fail")
	}
}

func TestRemoveViewStopsCollection(t *testing.T) {
	b := newBackend(t)
	const name = "census_removed_total"

	m := b.RegisterOrGetMeasure(name, "removed", "1")
	if err := b.RegisterView(descriptor(name, backend.KindCount), nil); err != nil {
		t.Fatalf("RegisterView() error: %v", err)
	}

	b.RemoveView(name)
	if view.Find(name) != nil {
		t.Error("view should be unregistered after RemoveView")
	}

	// Recording against a removed view must stay a harmless no-op.
	b.RecordObservation(m, 1, nil)
}

func TestRemoveViewUnknownNameIsNoOp(t *testing.T) {
	b := newBackend(t)
	b.RemoveView("census_never_registered")
}

func TestCloseUnregistersEverything(t *testing.T) {
	b := census.NewBackend(census.Config{})

	if err := b.RegisterView(descriptor("census_close_a", backend.KindCount), nil); err != nil {
		t.Fatalf("RegisterView() error: %v", err)
	}
	if err := b.RegisterView(descriptor("census_close_b", backend.KindSum), nil); err != nil {
		t.Fatalf("RegisterView() error: %v", err)
	}

	if err := b.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if view.Find("census_close_a") != nil || view.Find("census_close_b") != nil {
		t.Error("Close() should unregister every view the backend registered")
	}

	if err := b.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}

func TestInvalidTagValueDropsSingleMeasurement(t *testing.T) {
	b := newBackend(t)
	const name = "census_badval_total"

	m := b.RegisterOrGetMeasure(name, "bad values", "1")
	if err := b.RegisterView(descriptor(name, backend.KindCount, "Component"), nil); err != nil {
		t.Fatalf("RegisterView() error: %v", err)
	}

	b.RecordObservation(m, 1, backend.TagSet{backend.NewTag("Component", "ok")})
	// Non-printable tag values are rejected by OpenCensus; only this
	// measurement is lost.
	b.RecordObservation(m, 1, backend.TagSet{backend.NewTag("Component", "bad\xffvalue")})
	b.RecordObservation(m, 1, backend.TagSet{backend.NewTag("Component", "ok")})

	rows := retrieveRows(t, name)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if got := rows[0].Data.(*view.CountData).Value; got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
}

type foreignHandle struct{ name string }

func (h foreignHandle) MeasureName() string { return h.name }

func TestForeignMeasureHandleResolvedByName(t *testing.T) {
	b := newBackend(t)
	const name = "census_foreign_total"

	b.RegisterOrGetMeasure(name, "foreign handle", "1")
	if err := b.RegisterView(descriptor(name, backend.KindCount), nil); err != nil {
		t.Fatalf("RegisterView() error: %v", err)
	}

	b.RecordObservation(foreignHandle{name: name}, 1, nil)

	rows := retrieveRows(t, name)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if got := rows[0].Data.(*view.CountData).Value; got != 1 {
		t.Errorf("count = %d, want 1", got)
	}

	// A handle naming an unknown measure is dropped without panicking.
	b.RecordObservation(foreignHandle{name: "census_foreign_unknown"}, 1, nil)
}
