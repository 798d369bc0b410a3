package systems

import (
	"math"

	"github.com/golang/geo/r3"
)

// Distance functions

// distanceSq returns the squared distance between two points.
func distanceSq(a, b r3.Vector) float64 {
	d := b.Sub(a)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

// distance returns the Euclidean distance between two points.
func distance(a, b r3.Vector) float64 {
	return math.Sqrt(distanceSq(a, b))
}
