package stats_test

import (
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/Abolfazl-Alemi/stats-lab/backend"
	"github.com/Abolfazl-Alemi/stats-lab/stats"
)

func TestFXModule_InitializesOnStartAndShutsDownOnStop(t *testing.T) {
	app := fxtest.New(t,
		stats.FXModule,
		fx.Provide(func() stats.Config {
			return stats.Config{}
		}),
	)

	app.RequireStart()
	if !stats.Initialized() {
		t.Error("expected stats to be initialized after start")
	}
	if stats.Disabled() {
		t.Error("expected collection to be enabled after start")
	}

	app.RequireStop()
	if stats.Initialized() {
		t.Error("expected stats to be shut down after stop")
	}
	if !stats.Disabled() {
		t.Error("expected collection to be disabled after stop")
	}
}

func TestFXModule_PicksUpProvidedViewBackend(t *testing.T) {
	fake := newFakeViewBackend()

	app := fxtest.New(t,
		stats.FXModule,
		fx.Provide(func() stats.Config {
			return stats.Config{}
		}),
		fx.Provide(func() backend.ViewBackend { return fake }),
	)

	app.RequireStart()

	m := stats.MustNewCount("fx_injected_total", "routed into the injected backend", "events", nil)
	m.Record(1)

	if len(fake.observations) != 1 {
		t.Errorf("expected the injected backend to receive the observation, got %d", len(fake.observations))
	}

	app.RequireStop()
	if !fake.closed {
		t.Error("expected the injected backend to be closed on stop")
	}
}

func TestFXModule_ConfigBackendWinsOverInjected(t *testing.T) {
	configured := newFakeViewBackend()
	injected := newFakeViewBackend()

	app := fxtest.New(t,
		stats.FXModule,
		fx.Provide(func() stats.Config {
			return stats.Config{ViewBackend: configured}
		}),
		fx.Provide(func() backend.ViewBackend { return injected }),
	)

	app.RequireStart()

	m := stats.MustNewCount("fx_precedence_total", "explicit config wins", "events", nil)
	m.Record(1)

	if len(configured.observations) != 1 {
		t.Errorf("expected the configured backend to receive the observation, got %d", len(configured.observations))
	}
	if len(injected.observations) != 0 {
		t.Errorf("expected the injected backend to receive nothing, got %d", len(injected.observations))
	}

	app.RequireStop()
}

func TestFXModule_RecorderInjection(t *testing.T) {
	fake := newFakeRecorder()

	app := fxtest.New(t,
		stats.FXModule,
		fx.Provide(func() stats.Config {
			return stats.Config{}
		}),
		fx.Provide(func() backend.Recorder { return fake }),
	)

	app.RequireStart()

	m := stats.MustNewGauge("fx_recorder_gauge", "routed into the injected recorder", "units", nil)
	m.Record(4)

	if len(fake.observations) != 1 {
		t.Errorf("expected the injected recorder to receive the observation, got %d", len(fake.observations))
	}

	app.RequireStop()
	if !fake.closed {
		t.Error("expected the injected recorder to be closed on stop")
	}
}
