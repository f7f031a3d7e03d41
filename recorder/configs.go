package recorder

import (
	"go.opentelemetry.io/otel/metric"

	"github.com/Abolfazl-Alemi/stats-lab/logger"
)

// DefaultMeterName is the instrumentation scope used when Config names no
// meter of its own.
const DefaultMeterName = "github.com/Abolfazl-Alemi/stats-lab/recorder"

// Config defines the configuration structure for the OpenTelemetry recorder.
// The zero value is valid: instruments are created on a meter obtained from
// the global MeterProvider under DefaultMeterName.
type Config struct {
	// Meter is the OpenTelemetry meter instruments are created on. When set
	// it takes precedence over MeterProvider and MeterName.
	Meter metric.Meter

	// MeterProvider supplies the meter when Meter is nil. When this is also
	// nil the global provider registered with the otel package is used, so
	// an application that installs its own SDK provider is picked up
	// automatically.
	MeterProvider metric.MeterProvider

	// MeterName is the instrumentation scope passed to the provider when the
	// recorder obtains its own meter.
	//
	// Default: DefaultMeterName
	MeterName string

	// Logger receives instrument registration failures and dropped-value
	// notices. Optional; when nil the recorder stays silent.
	Logger *logger.LoggerClient
}
