package stats_test

import (
	"fmt"

	"github.com/Abolfazl-Alemi/stats-lab/backend"
	"github.com/Abolfazl-Alemi/stats-lab/stats"
)

func ExampleNewGauge() {
	queueDepth, err := stats.NewGauge(
		"queue_depth",
		"Pending tasks in the scheduler queue",
		"tasks",
		[]string{"Component"},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	queueDepth.RecordWithTags(42, backend.TagSet{
		backend.NewTag("Component", "scheduler"),
	})

	fmt.Println(queueDepth.Name(), queueDepth.Kind())
	// Output: queue_depth gauge
}

func ExampleNewHistogram() {
	latency, err := stats.NewHistogram(
		"operation_latency_ms",
		"Latency of scheduler operations",
		"ms",
		[]float64{1, 10, 100, 1000},
		[]string{"Operation"},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	latency.RecordWithTagMap(12.5, map[string]string{"Operation": "submit"})

	fmt.Println(latency.Kind(), latency.Boundaries())
	// Output: histogram [1 10 100 1000]
}

func ExampleMustNewSum() {
	bytesSent := stats.MustNewSum(
		"bytes_sent",
		"Bytes sent over the object transfer channel",
		"bytes",
		[]string{"Destination"},
	)

	bytesSent.Record(4096)
	bytesSent.Record(-512)

	fmt.Println(bytesSent.Name(), bytesSent.Unit())
	// Output: bytes_sent bytes
}

func ExampleInit() {
	stats.Init(stats.Config{
		GlobalTags: backend.TagSet{
			backend.NewTag("Component", "scheduler"),
		},
	})
	defer func() { _ = stats.Shutdown() }()

	fmt.Println(stats.Initialized())
	// Output: true
}
