// Operation benchmark harness - times each engine operation and a full
// simulation run over repeated trials.
//
// Usage: go run ./cmd/bench [-trials N]
package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/hound/components"
	"github.com/pthm-cable/hound/config"
	"github.com/pthm-cable/hound/sim"
	"github.com/pthm-cable/hound/systems"
)

func main() {
	trials := flag.Int("trials", 10, "Trials per benchmark")
	flag.Parse()

	config.MustInit("")

	// Keep per-run reports out of the benchmark table.
	sim.SetLogWriter(io.Discard)

	fmt.Println("hound engine benchmarks")
	fmt.Println("=======================================================")

	runBench("position updates (10k)", *trials, func() {
		agent := components.NewAgent("bench", 0)
		agent.Velocity = r3.Vector{X: 1.0, Y: 0.5, Z: 0.2}
		for i := 0; i < 10000; i++ {
			systems.UpdatePosition(agent, 0.1)
		}
	})

	runBench("environment scan (50x50)", *trials, func() {
		agent := components.NewAgent("bench", 0)
		if _, err := systems.ScanEnvironment(agent, 50); err != nil {
			panic(err)
		}
	})

	// Ramp of 5000 distinct readings, ~80% above the threshold.
	field := make([]float64, 5000)
	for i := range field {
		field[i] = float64(i)
	}
	runBench("obstacle classification (5k)", *trials, func() {
		systems.FindObstacles(field, systems.DefaultObstacleThreshold)
	})

	runBench("path planning (origin->goal)", *trials, func() {
		systems.PlanPath(r3.Vector{}, r3.Vector{X: 10, Y: 10, Z: 0}, nil)
	})

	runBench("full run", *trials, func() {
		s, err := sim.New(sim.Options{})
		if err != nil {
			panic(err)
		}
		if _, err := s.Run(); err != nil {
			panic(err)
		}
	})
}

// runBench times fn over the given number of trials and prints
// mean/std/min wall time.
func runBench(name string, trials int, fn func()) {
	durations := make([]float64, trials)
	minDur := time.Duration(0)

	for i := 0; i < trials; i++ {
		start := time.Now()
		fn()
		elapsed := time.Since(start)
		durations[i] = elapsed.Seconds()
		if i == 0 || elapsed < minDur {
			minDur = elapsed
		}
	}

	mean := stat.Mean(durations, nil)
	std := 0.0
	if trials > 1 {
		std = stat.StdDev(durations, nil)
	}

	fmt.Printf("%-30s mean %10s  std %10s  min %10s\n",
		name,
		time.Duration(mean*float64(time.Second)).Round(time.Microsecond),
		time.Duration(std*float64(time.Second)).Round(time.Microsecond),
		minDur.Round(time.Microsecond),
	)
}
