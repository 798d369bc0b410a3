package systems

// DefaultObstacleThreshold is the reading above which a field value is
// classified as an obstacle.
const DefaultObstacleThreshold = 1000.0

// ObstacleSet is a set of distinct obstacle readings. Order is
// irrelevant; duplicate readings collapse to one entry.
type ObstacleSet map[float64]struct{}

// Add inserts a reading into the set.
func (s ObstacleSet) Add(v float64) {
	s[v] = struct{}{}
}

// Contains reports whether the reading is in the set.
func (s ObstacleSet) Contains(v float64) bool {
	_, ok := s[v]
	return ok
}

// Values returns the set members in unspecified order.
func (s ObstacleSet) Values() []float64 {
	out := make([]float64, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

// FindObstacles classifies the field readings strictly greater than
// threshold into a duplicate-free set. The field is not mutated.
func FindObstacles(field []float64, threshold float64) ObstacleSet {
	obstacles := make(ObstacleSet)
	for _, reading := range field {
		if reading > threshold {
			obstacles.Add(reading)
		}
	}
	return obstacles
}
