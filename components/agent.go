// Package components holds the data types owned by a simulation run.
package components

import (
	"github.com/golang/geo/r3"
)

// NumLimbs is the number of limb tips tracked per agent.
const NumLimbs = 4

// DefaultMaxHistory is the movement history capacity used when none is given.
const DefaultMaxHistory = 1000

// Agent is the complete kinematic state of one simulated quadruped.
// An Agent is owned by exactly one run; nothing here is safe for
// concurrent mutation.
type Agent struct {
	Name     string
	Position r3.Vector
	Velocity r3.Vector

	// Limbs holds the four limb-tip positions. The array is fixed
	// size; limb indices are always in [0, NumLimbs).
	Limbs [NumLimbs]r3.Vector

	// SensorField is the result of the last environment scan,
	// replaced wholesale on every scan.
	SensorField []float64

	// History records a snapshot of Position after every motion
	// update, oldest entries evicted first once capacity is reached.
	History *History
}

// NewAgent creates an agent at the origin with zero velocity.
// maxHistory <= 0 selects DefaultMaxHistory.
func NewAgent(name string, maxHistory int) *Agent {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Agent{
		Name:    name,
		History: NewHistory(maxHistory),
	}
}
