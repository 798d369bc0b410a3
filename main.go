package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/hound/config"
	"github.com/pthm-cable/hound/sim"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	steps := flag.Int("steps", 0, "Motion updates to run (0 = use config)")
	logStats := flag.Bool("log-stats", false, "Log rolling perf and limb stats per window")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := sim.Options{
		LogStats:      *logStats,
		OutputDir:     *outputDir,
		StepsOverride: *steps,
	}

	s, err := sim.New(opts)
	if err != nil {
		slog.Error("failed to create simulation", "error", err)
		os.Exit(1)
	}

	slog.Info("starting simulation",
		"agent", cfg.Agent.Name,
		"steps", cfg.Run.Steps,
		"dt", cfg.Run.DT,
		"scan_samples", cfg.Run.ScanSamples,
	)

	result, err := s.Run()
	if err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}

	slog.Info("simulation complete",
		"final_x", result.Stats.FinalX,
		"final_y", result.Stats.FinalY,
		"final_z", result.Stats.FinalZ,
		"history_len", result.Stats.HistoryLen,
		"obstacles", result.Stats.Obstacles,
		"path_len", result.Stats.PathLen,
		"total_energy", result.Stats.TotalEnergy,
	)
}
