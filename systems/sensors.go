package systems

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/hound/components"
)

// ErrNegativeSamples is returned when a scan is requested with a
// negative sample count.
var ErrNegativeSamples = errors.New("negative sample count")

// ScanEnvironment generates a synthetic radial field over the agent's
// vicinity: numSamples * numSamples readings where the value at
// flattened index i*numSamples+j is exactly i*i + j*j. The result
// replaces the agent's previous sensor field wholesale and is also
// returned. numSamples == 0 yields an empty field.
//
// The full field is allocated up front; this runs in tight loops and
// must not grow incrementally.
func ScanEnvironment(a *components.Agent, numSamples int) ([]float64, error) {
	if numSamples < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSamples, numSamples)
	}

	readings := make([]float64, numSamples*numSamples)
	idx := 0
	for i := 0; i < numSamples; i++ {
		iSq := float64(i * i)
		for j := 0; j < numSamples; j++ {
			readings[idx] = iSq + float64(j*j)
			idx++
		}
	}

	a.SensorField = readings
	return readings, nil
}
