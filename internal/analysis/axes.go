package analysis

import "math"

// SemiAxes measures the particle extents of a snapshot: the maximum |x| and
// |y| over all particles. For the elliptical drop these approximate the
// ellipse semi-axes.
func SemiAxes(x, y []float64) (ax, ay float64) {
	for i := range x {
		if v := math.Abs(x[i]); v > ax {
			ax = v
		}
		if v := math.Abs(y[i]); v > ay {
			ay = v
		}
	}
	return ax, ay
}
