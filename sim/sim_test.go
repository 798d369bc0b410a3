package sim

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/hound/config"
	"github.com/pthm-cable/hound/systems"
)

func initTestConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	if err := config.Init(path); err != nil {
		t.Fatal(err)
	}
}

func TestRunFullSimulation(t *testing.T) {
	initTestConfig(t, `
run:
  steps: 100
  dt: 0.1
  scan_interval: 10
  scan_samples: 20
telemetry:
  stats_window: 25
`)
	SetLogWriter(io.Discard)

	s, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}

	result, err := s.Run()
	if err != nil {
		t.Fatal(err)
	}

	// 100 steps at dt=0.1 with default velocity (1.0, 0.5, 0.0).
	if math.Abs(result.Stats.FinalX-10.0) > 1e-6 {
		t.Errorf("FinalX = %v, want 10.0", result.Stats.FinalX)
	}
	if math.Abs(result.Stats.FinalY-5.0) > 1e-6 {
		t.Errorf("FinalY = %v, want 5.0", result.Stats.FinalY)
	}
	if result.Stats.HistoryLen != 100 {
		t.Errorf("HistoryLen = %d, want 100", result.Stats.HistoryLen)
	}
	if result.Stats.FieldLen != 400 {
		t.Errorf("FieldLen = %d, want 400", result.Stats.FieldLen)
	}
	if result.Stats.PathLen == 0 || result.Stats.PathLen > systems.MaxPlanSteps {
		t.Errorf("PathLen = %d, want in (0, %d]", result.Stats.PathLen, systems.MaxPlanSteps)
	}
	if result.TotalEnergy <= 0 {
		t.Errorf("TotalEnergy = %v, want > 0", result.TotalEnergy)
	}
	if len(result.EnergyLog) != result.Stats.PathLen-1 {
		t.Errorf("len(EnergyLog) = %d, want %d", len(result.EnergyLog), result.Stats.PathLen-1)
	}
}

func TestRunBoundsHistory(t *testing.T) {
	initTestConfig(t, `
agent:
  max_history: 30
run:
  steps: 80
  dt: 0.1
  scan_interval: 20
  scan_samples: 5
`)
	SetLogWriter(io.Discard)

	s, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}

	result, err := s.Run()
	if err != nil {
		t.Fatal(err)
	}
	if result.Stats.HistoryLen != 30 {
		t.Errorf("HistoryLen = %d, want 30", result.Stats.HistoryLen)
	}
}

func TestRunStepsOverride(t *testing.T) {
	initTestConfig(t, `
run:
  steps: 1000
  scan_interval: 50
  scan_samples: 5
`)
	SetLogWriter(io.Discard)

	s, err := New(Options{StepsOverride: 12})
	if err != nil {
		t.Fatal(err)
	}

	result, err := s.Run()
	if err != nil {
		t.Fatal(err)
	}
	if result.Stats.Steps != 12 {
		t.Errorf("Steps = %d, want 12", result.Stats.Steps)
	}
}

func TestRunWritesOutputs(t *testing.T) {
	initTestConfig(t, `
run:
  steps: 60
  scan_interval: 10
  scan_samples: 10
telemetry:
  stats_window: 20
`)
	SetLogWriter(io.Discard)

	dir := t.TempDir()
	s, err := New(Options{OutputDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Run(); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"config.yaml", "perf.csv", "history.csv", "energy.csv"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing output %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("output %s is empty", name)
		}
	}
}
