package census

import (
	"time"

	"github.com/Abolfazl-Alemi/stats-lab/logger"
)

// Config defines the configuration structure for the OpenCensus view backend.
// The zero value is valid: the OpenCensus worker keeps its default reporting
// period and the backend stays silent.
type Config struct {
	// ReportingPeriod is how often the OpenCensus worker pushes aggregated
	// view rows to the exporters registered by the embedding application.
	// Zero or negative leaves the worker's current period untouched.
	//
	// Default: 0 (keep the OpenCensus default)
	ReportingPeriod time.Duration

	// Logger receives view registration events and dropped-observation
	// notices. Optional; when nil the backend stays silent.
	Logger *logger.LoggerClient
}
