package systems

import (
	"github.com/golang/geo/r3"
)

// EnergyPerDistance converts path segment length into energy cost.
// Fixed domain constant; energy is only used for relative comparison.
const EnergyPerDistance = 10.0

// EnergyStep is one entry of the per-segment energy log.
type EnergyStep struct {
	Index  int     `csv:"step"`
	Energy float64 `csv:"energy"`
}

// CalculateEnergy sums the energy cost of walking the path: for each
// consecutive waypoint pair, segment length times EnergyPerDistance.
// Returns the total plus an ordered per-segment log. Paths with fewer
// than two waypoints cost nothing. The path is not mutated.
func CalculateEnergy(path []r3.Vector) (float64, []EnergyStep) {
	if len(path) < 2 {
		return 0, nil
	}

	log := make([]EnergyStep, 0, len(path)-1)
	totalEnergy := 0.0

	for i := 0; i < len(path)-1; i++ {
		energy := distance(path[i], path[i+1]) * EnergyPerDistance
		totalEnergy += energy
		log = append(log, EnergyStep{Index: i, Energy: energy})
	}

	return totalEnergy, log
}
