// Package sim drives the kinematic engine through a full run: motion
// updates, periodic environment scans, limb reach estimates, and a
// final path plan with its energy estimate.
package sim

import (
	"fmt"
	"time"

	"github.com/golang/geo/r3"

	"github.com/pthm-cable/hound/components"
	"github.com/pthm-cable/hound/config"
	"github.com/pthm-cable/hound/systems"
	"github.com/pthm-cable/hound/telemetry"
)

// Options configures a simulation run.
type Options struct {
	LogStats  bool
	OutputDir string

	// StepsOverride > 0 replaces config run.steps.
	StepsOverride int
}

// Result is what a completed run produced.
type Result struct {
	Agent       *components.Agent
	Obstacles   systems.ObstacleSet
	Path        []r3.Vector
	TotalEnergy float64
	EnergyLog   []systems.EnergyStep
	Stats       telemetry.RunStats
}

// Sim owns one agent and steps it through the configured run.
type Sim struct {
	agent *components.Agent

	step  int
	steps int

	dt           float64
	scanInterval int
	scanSamples  int
	threshold    float64
	goal         r3.Vector

	// Last classification result, refreshed on scan steps.
	obstacles systems.ObstacleSet

	// Limb-distance samples for the current stats window.
	limbSamples []float64

	perf   *telemetry.PerfCollector
	output *telemetry.OutputManager

	logStats    bool
	statsWindow int
}

// New creates a simulation from the loaded config and options.
func New(opts Options) (*Sim, error) {
	cfg := config.Cfg()

	agent := components.NewAgent(cfg.Agent.Name, cfg.Agent.MaxHistory)
	agent.Velocity = r3.Vector{
		X: cfg.Agent.Velocity.X,
		Y: cfg.Agent.Velocity.Y,
		Z: cfg.Agent.Velocity.Z,
	}

	steps := cfg.Run.Steps
	if opts.StepsOverride > 0 {
		steps = opts.StepsOverride
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	return &Sim{
		agent:        agent,
		steps:        steps,
		dt:           cfg.Run.DT,
		scanInterval: cfg.Run.ScanInterval,
		scanSamples:  cfg.Run.ScanSamples,
		threshold:    cfg.Obstacles.Threshold,
		goal:         r3.Vector{X: cfg.Goal.X, Y: cfg.Goal.Y, Z: cfg.Goal.Z},
		obstacles:    make(systems.ObstacleSet),
		perf:         telemetry.NewPerfCollector(cfg.Telemetry.StatsWindow),
		output:       output,
		logStats:     opts.LogStats,
		statsWindow:  cfg.Telemetry.StatsWindow,
	}, nil
}

// Agent exposes the simulated agent, mainly for inspection in tools
// and tests. The sim retains ownership.
func (s *Sim) Agent() *components.Agent {
	return s.agent
}

// Step advances the simulation by one tick: integrate motion, scan on
// the configured cadence, and sample limb reach toward the gait target.
func (s *Sim) Step() error {
	s.perf.StartStep()

	s.perf.StartPhase(telemetry.PhaseMotion)
	systems.UpdatePosition(s.agent, s.dt)

	if s.step%s.scanInterval == 0 {
		s.perf.StartPhase(telemetry.PhaseScan)
		field, err := systems.ScanEnvironment(s.agent, s.scanSamples)
		if err != nil {
			return fmt.Errorf("sim: step %d: %w", s.step, err)
		}

		s.perf.StartPhase(telemetry.PhaseClassify)
		s.obstacles = systems.FindObstacles(field, s.threshold)
	}

	s.perf.StartPhase(telemetry.PhaseKinematics)
	target := s.gaitTarget()
	for limb := 0; limb < components.NumLimbs; limb++ {
		dist, err := systems.LimbDistance(s.agent, limb, target)
		if err != nil {
			return fmt.Errorf("sim: step %d: %w", s.step, err)
		}
		s.limbSamples = append(s.limbSamples, dist)
	}

	s.perf.EndStep()
	s.step++

	if s.step%s.statsWindow == 0 {
		stats := s.perf.Stats()
		if s.logStats {
			stats.LogStats()
			s.logLimbWindow()
		}
		if err := s.output.WritePerf(stats, s.step); err != nil {
			return fmt.Errorf("sim: %w", err)
		}
		s.limbSamples = s.limbSamples[:0]
	}

	return nil
}

// gaitTarget is the per-step limb target: a point sliding diagonally
// ahead of the walk, one stride unit per step.
func (s *Sim) gaitTarget() r3.Vector {
	stride := float64(s.step) * 0.1
	return r3.Vector{X: stride, Y: stride, Z: 0}
}

// Run executes the configured number of steps, then plans a path from
// the origin to the configured goal and estimates its energy cost.
func (s *Sim) Run() (*Result, error) {
	started := time.Now()

	for s.step < s.steps {
		if err := s.Step(); err != nil {
			return nil, err
		}
	}

	s.perf.StartStep()
	s.perf.StartPhase(telemetry.PhasePlan)
	path := systems.PlanPath(r3.Vector{}, s.goal, s.obstacles)

	s.perf.StartPhase(telemetry.PhaseEnergy)
	totalEnergy, energyLog := systems.CalculateEnergy(path)
	s.perf.EndStep()

	stats := telemetry.RunStats{
		Steps:       s.step,
		FinalX:      s.agent.Position.X,
		FinalY:      s.agent.Position.Y,
		FinalZ:      s.agent.Position.Z,
		HistoryLen:  s.agent.History.Len(),
		FieldLen:    len(s.agent.SensorField),
		Obstacles:   len(s.obstacles),
		PathLen:     len(path),
		TotalEnergy: totalEnergy,
		ElapsedSec:  time.Since(started).Seconds(),
	}

	if err := s.output.WriteHistory(s.agent.History.Snapshot()); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if err := s.output.WriteEnergyLog(energyLog); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if err := s.output.Close(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	s.logRunReport(stats)

	return &Result{
		Agent:       s.agent,
		Obstacles:   s.obstacles,
		Path:        path,
		TotalEnergy: totalEnergy,
		EnergyLog:   energyLog,
		Stats:       stats,
	}, nil
}
