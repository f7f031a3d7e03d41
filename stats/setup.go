package stats

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/Abolfazl-Alemi/stats-lab/backend"
	"github.com/Abolfazl-Alemi/stats-lab/logger"
)

// statsState holds the process-wide stats configuration.
//
// The record hot path reads only the disabled flag, a single atomic load.
// Everything else is read rarely (registration, setup) through an RWMutex.
// Slices and handles under mu are replaced wholesale, never mutated in
// place, so a snapshot read stays valid after the lock is released.
type statsState struct {
	disabled    atomic.Bool
	initialized atomic.Bool

	mu              sync.RWMutex
	globalTags      backend.TagSet
	reportInterval  time.Duration
	harvestInterval time.Duration
	viewBackend     backend.ViewBackend
	recorder        backend.Recorder
	log             *logger.LoggerClient
}

// newStatsState returns the default state: collection disabled until Init
// runs, default intervals, no backends bound.
func newStatsState() *statsState {
	s := &statsState{
		reportInterval:  DefaultReportInterval,
		harvestInterval: DefaultHarvestInterval,
	}
	s.disabled.Store(true)
	return s
}

// state is the process-wide configuration instance shared by every metric
// handle in the process.
var state = newStatsState()

// globalTagsSnapshot returns the current global tag slice. The slice is
// immutable once published; callers read it but never modify it.
func (s *statsState) globalTagsSnapshot() backend.TagSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.globalTags
}

func (s *statsState) viewBackendHandle() backend.ViewBackend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewBackend
}

func (s *statsState) recorderHandle() backend.Recorder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recorder
}

func (s *statsState) loggerHandle() *logger.LoggerClient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.log
}

// reportingPeriodSetter is the optional capability a view backend can expose
// to receive the report interval during Init.
type reportingPeriodSetter interface {
	SetReportingPeriod(time.Duration)
}

// Init applies the process-wide stats configuration: global tags, the
// disabled flag, collection intervals, backends, and the optional logger.
//
// Init is meant to run once, early in process startup. A second call while
// already initialized is a logged no-op, so racing components cannot
// reconfigure each other. Metrics recorded before Init are dropped because
// collection starts out disabled.
//
// Parameters:
//   - cfg: the configuration to apply; see Config for field semantics
//
// Example:
//
//	stats.Init(stats.Config{
//	    GlobalTags:  backend.TagSet{backend.NewTag("Component", "scheduler")},
//	    ViewBackend: census.NewBackend(census.Config{}),
//	})
func Init(cfg Config) {
	state.mu.Lock()
	if state.initialized.Load() {
		log := state.log
		state.mu.Unlock()
		if log != nil {
			log.Warn("Stats already initialized, ignoring reconfiguration", nil, nil)
		}
		return
	}

	state.globalTags = append(backend.TagSet(nil), cfg.GlobalTags...)
	state.reportInterval = cfg.ReportInterval
	if state.reportInterval <= 0 {
		state.reportInterval = DefaultReportInterval
	}
	state.harvestInterval = cfg.HarvestInterval
	if state.harvestInterval <= 0 {
		state.harvestInterval = DefaultHarvestInterval
	}
	state.viewBackend = cfg.ViewBackend
	state.recorder = cfg.Recorder
	state.log = cfg.Logger
	reportInterval := state.reportInterval
	state.initialized.Store(true)
	state.mu.Unlock()

	state.disabled.Store(cfg.Disabled)

	if setter, ok := cfg.ViewBackend.(reportingPeriodSetter); ok {
		setter.SetReportingPeriod(reportInterval)
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("Stats initialized", nil, map[string]interface{}{
			"disabled":        cfg.Disabled,
			"global_tags":     len(cfg.GlobalTags),
			"report_interval": reportInterval.String(),
		})
	}
}

// Shutdown disables collection, detaches the backends, and resets the
// configuration to its defaults, allowing a later Init to start fresh.
// Backends that implement io.Closer are closed and their errors aggregated
// into the returned error.
//
// Metrics already bound to a backend stay bound but stop forwarding because
// collection is disabled. Calling Shutdown without a prior Init is a no-op.
func Shutdown() error {
	state.disabled.Store(true)

	state.mu.Lock()
	vb := state.viewBackend
	rec := state.recorder
	log := state.log
	state.globalTags = nil
	state.reportInterval = DefaultReportInterval
	state.harvestInterval = DefaultHarvestInterval
	state.viewBackend = nil
	state.recorder = nil
	state.log = nil
	state.mu.Unlock()
	state.initialized.Store(false)

	var err error
	if closer, ok := vb.(io.Closer); ok {
		err = multierr.Append(err, closer.Close())
	}
	if closer, ok := rec.(io.Closer); ok {
		err = multierr.Append(err, closer.Close())
	}

	if log != nil {
		log.Info("Stats shut down", err, nil)
	}
	return err
}

// Disabled reports whether metric collection is currently off. Record calls
// check this first and return immediately when it is set.
func Disabled() bool {
	return state.disabled.Load()
}

// SetDisabled turns metric collection off or on without touching the rest of
// the configuration. Init and Shutdown manage the flag as part of the full
// lifecycle; this setter covers dynamic reconfiguration in between.
func SetDisabled(disabled bool) {
	state.disabled.Store(disabled)
}

// Initialized reports whether Init has been applied and not shut down since.
func Initialized() bool {
	return state.initialized.Load()
}

// GlobalTags returns a copy of the process-wide tags carried by every
// observation.
func GlobalTags() backend.TagSet {
	state.mu.RLock()
	defer state.mu.RUnlock()
	return append(backend.TagSet(nil), state.globalTags...)
}

// SetGlobalTags replaces the process-wide tags. Metrics already bound to the
// view pipeline keep the view columns fixed at their registration; the new
// tags still flow with every subsequent observation.
func SetGlobalTags(tags backend.TagSet) {
	snapshot := append(backend.TagSet(nil), tags...)
	state.mu.Lock()
	state.globalTags = snapshot
	state.mu.Unlock()
}

// ReportInterval returns how often the view pipeline pushes aggregated data
// to its exporters.
func ReportInterval() time.Duration {
	state.mu.RLock()
	defer state.mu.RUnlock()
	return state.reportInterval
}

// SetReportInterval updates the report interval and propagates it to the
// active view backend when it supports reporting-period configuration.
// Non-positive values are ignored.
func SetReportInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	state.mu.Lock()
	state.reportInterval = d
	vb := state.viewBackend
	state.mu.Unlock()

	if setter, ok := vb.(reportingPeriodSetter); ok {
		setter.SetReportingPeriod(d)
	}
}

// HarvestInterval returns how often raw observations are folded into the
// aggregations. Embedding applications driving periodic collection read it
// from here.
func HarvestInterval() time.Duration {
	state.mu.RLock()
	defer state.mu.RUnlock()
	return state.harvestInterval
}

// SetHarvestInterval updates the harvest interval. Non-positive values are
// ignored.
func SetHarvestInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	state.mu.Lock()
	state.harvestInterval = d
	state.mu.Unlock()
}
