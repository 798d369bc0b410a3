package sim

import (
	"fmt"
	"io"
	"time"

	"github.com/pthm-cable/hound/telemetry"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logLimbWindow logs limb-distance stats for the closing window.
func (s *Sim) logLimbWindow() {
	ds := telemetry.SummarizeDistances(s.limbSamples)
	Logf("  limb reach: mean=%.2f std=%.2f p10=%.2f p50=%.2f p90=%.2f (%d samples)",
		ds.Mean, ds.Std, ds.P10, ds.P50, ds.P90, len(s.limbSamples))
}

// logRunReport logs the end-of-run summary.
func (s *Sim) logRunReport(stats telemetry.RunStats) {
	Logf("=== Run complete: %s ===", s.agent.Name)
	Logf("Simulation completed in %s", time.Duration(stats.ElapsedSec*float64(time.Second)).Round(time.Microsecond))
	Logf("Final position: (%.2f, %.2f, %.2f)", stats.FinalX, stats.FinalY, stats.FinalZ)
	Logf("Movement history size: %d entries", stats.HistoryLen)
	Logf("Sensor data size: %d readings", stats.FieldLen)
	Logf("Obstacles detected: %d", stats.Obstacles)
	Logf("Path length: %d steps", stats.PathLen)
	Logf("Total energy: %.2f units", stats.TotalEnergy)
	Logf("")
}
