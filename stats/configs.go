package stats

import (
	"time"

	"github.com/Abolfazl-Alemi/stats-lab/backend"
	"github.com/Abolfazl-Alemi/stats-lab/logger"
)

// Default collection intervals applied when Config leaves them unset.
const (
	// DefaultReportInterval is how often aggregated data is pushed to
	// exporters by the view pipeline.
	DefaultReportInterval = 10 * time.Second

	// DefaultHarvestInterval is how often raw observations are folded into
	// the aggregations. It should stay at or below the report interval.
	DefaultHarvestInterval = 5 * time.Second
)

// Config defines the process-wide stats configuration applied by Init.
//
// The zero value is a valid configuration: collection enabled, no global tags,
// default intervals, and no backends bound, in which case observations are
// dropped.
type Config struct {
	// Disabled turns off metric collection for the whole process.
	// Every record call returns immediately with no side effects, including
	// backend registration. Before Init is called collection is disabled
	// regardless of this field.
	//
	// Default: false (collection enabled once Init runs)
	Disabled bool

	// GlobalTags are appended to every recorded observation, whichever
	// backend is active. On the recorder pipeline a global tag overrides a
	// caller tag with the same key; on the view pipeline global tags become
	// trailing view columns and are appended after the caller's tags.
	//
	// Example:
	//
	//	GlobalTags: backend.TagSet{
	//	    backend.NewTag("Component", "scheduler"),
	//	    backend.NewTag("Version", "2.9.0"),
	//	}
	GlobalTags backend.TagSet

	// ReportInterval is how often the view pipeline pushes aggregated data
	// to its exporters. Propagated to the active view backend when it
	// supports reporting-period configuration.
	//
	// Default: DefaultReportInterval (10s)
	ReportInterval time.Duration

	// HarvestInterval is how often raw observations are folded into the
	// aggregations. Exposed through HarvestInterval() for embedding
	// applications that drive periodic collection themselves.
	//
	// Default: DefaultHarvestInterval (5s)
	HarvestInterval time.Duration

	// ViewBackend is the view-based pipeline to route observations into.
	// Leave nil when using the recorder pipeline.
	ViewBackend backend.ViewBackend

	// Recorder is the OpenTelemetry-style pipeline to route observations
	// into. When both Recorder and ViewBackend are set, Recorder wins:
	// exactly one pipeline is ever active for a given metric.
	Recorder backend.Recorder

	// Logger receives lifecycle and registration events. Optional; when nil
	// the package stays silent.
	Logger *logger.LoggerClient
}
