package systems

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/pthm-cable/hound/components"
)

// ErrLimbIndex is returned when a limb index is outside [0, NumLimbs).
var ErrLimbIndex = errors.New("limb index out of range")

// LimbDistance returns the Euclidean distance from the given limb tip
// to target. The limb itself does not move; positioning the tip is the
// caller's concern, this estimates reach only.
func LimbDistance(a *components.Agent, limb int, target r3.Vector) (float64, error) {
	if limb < 0 || limb >= components.NumLimbs {
		return 0, fmt.Errorf("%w: %d", ErrLimbIndex, limb)
	}
	return distance(a.Limbs[limb], target), nil
}
