package fields

import "math"

// Arange returns start, start+step, ... up to but excluding stop, matching
// half-open range stepping. A non-positive step or empty range yields nil.
func Arange(start, stop, step float64) []float64 {
	if step <= 0 || stop <= start {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, start+float64(i)*step)
	}
	return out
}

// UniformGrid2D tiles the square [min, max) at step dx and returns the
// flattened x and y coordinates of every grid point.
func UniformGrid2D(min, max, dx float64) (x, y []float64) {
	axis := Arange(min, max, dx)
	n := len(axis)
	x = make([]float64, 0, n*n)
	y = make([]float64, 0, n*n)
	for _, xv := range axis {
		for _, yv := range axis {
			x = append(x, xv)
			y = append(y, yv)
		}
	}
	return x, y
}

// CarveDisk returns the indices of points lying outside the disk of radius r
// centered at (cx, cy). The tolerance keeps points sitting exactly on the
// circle from being excluded by floating-point rounding.
func CarveDisk(x, y []float64, cx, cy, r, tol float64) []int {
	var outside []int
	limit := r + tol
	for i := range x {
		dx := x[i] - cx
		dy := y[i] - cy
		if math.Sqrt(dx*dx+dy*dy) > limit {
			outside = append(outside, i)
		}
	}
	return outside
}
