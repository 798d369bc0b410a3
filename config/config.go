// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all run-harness configuration parameters. Engine
// constants (planner step size, tolerance, energy model) are fixed in
// the systems package and deliberately not configurable.
type Config struct {
	Agent     AgentConfig     `yaml:"agent"`
	Run       RunConfig       `yaml:"run"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Goal      VectorConfig    `yaml:"goal"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// AgentConfig holds agent creation parameters.
type AgentConfig struct {
	Name       string       `yaml:"name"`
	MaxHistory int          `yaml:"max_history"` // history capacity (0 = engine default)
	Velocity   VectorConfig `yaml:"velocity"`    // initial velocity
}

// RunConfig holds the step-loop parameters.
type RunConfig struct {
	Steps        int     `yaml:"steps"`         // motion updates per run
	DT           float64 `yaml:"dt"`            // seconds per step
	ScanInterval int     `yaml:"scan_interval"` // steps between environment scans
	ScanSamples  int     `yaml:"scan_samples"`  // scan resolution (N for an NxN field)
}

// ObstaclesConfig holds classification parameters.
type ObstaclesConfig struct {
	Threshold float64 `yaml:"threshold"` // readings above this are obstacles
}

// VectorConfig is a 3-component vector in YAML form.
type VectorConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // perf rolling window in steps
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyFallbacks()

	return cfg, nil
}

// applyFallbacks fills values a partial config file may have zeroed.
func (c *Config) applyFallbacks() {
	if c.Agent.Name == "" {
		c.Agent.Name = "Spot"
	}
	if c.Run.Steps <= 0 {
		c.Run.Steps = 100
	}
	if c.Run.ScanInterval <= 0 {
		c.Run.ScanInterval = 1
	}
	if c.Run.ScanSamples < 0 {
		c.Run.ScanSamples = 0
	}
	if c.Telemetry.StatsWindow <= 0 {
		c.Telemetry.StatsWindow = 50
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
