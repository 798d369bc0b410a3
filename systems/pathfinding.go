package systems

import (
	"github.com/golang/geo/r3"
)

// Planner constants. Step size and tolerance are fixed properties of
// the proportional stepper, not tunables.
const (
	// PlanStepSize is the fraction of the remaining displacement
	// applied per iteration.
	PlanStepSize = 0.01
	// PlanTolerance is the distance below which the goal counts as
	// reached. Compared squared to avoid a sqrt per iteration.
	PlanTolerance = 0.1
	// MaxPlanSteps caps the iteration count; a path that long has not
	// converged and the caller must inspect the final distance.
	MaxPlanSteps = 1000
)

// PlanPath steps from start toward goal by proportional displacement,
// recording a waypoint per step, until within PlanTolerance of the
// goal or MaxPlanSteps iterations have run. Returns an empty path when
// start is already within tolerance.
//
// obstacles is accepted for interface stability but NOT consulted: the
// planner performs no avoidance and walks a straight proportional line
// to the goal. Callers must not rely on the returned path being clear.
func PlanPath(start, goal r3.Vector, obstacles ObstacleSet) []r3.Vector {
	_ = obstacles

	const toleranceSq = PlanTolerance * PlanTolerance

	path := make([]r3.Vector, 0, MaxPlanSteps)
	current := start

	for step := 0; step < MaxPlanSteps; step++ {
		delta := goal.Sub(current)
		distSq := delta.X*delta.X + delta.Y*delta.Y + delta.Z*delta.Z
		if distSq < toleranceSq {
			break
		}

		current = current.Add(delta.Mul(PlanStepSize))
		path = append(path, current)
	}

	return path
}
