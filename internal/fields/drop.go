package fields

import (
	"fmt"

	"sphlab/internal/particles"
)

// Tolerance for the disk membership test. Grid points exactly on the unit
// circle must survive the carve.
const diskTol = 1e-10

// SquarePatch lays out a "fluid" collection tiling [-1.05, 1.05]^2 at step
// dx. Every particle gets mass dx*dx, smoothing length hdx*dx, density rho0
// and the diverging velocity field u = -100x, v = 100y.
func SquarePatch(dx, hdx, rho0 float64) (*particles.Array, error) {
	// The upper bound is nudged so the last row at +1.05 is included for
	// steps that divide the box evenly.
	x, y := UniformGrid2D(-1.05, 1.05+1e-4, dx)
	n := len(x)

	m := make([]float64, n)
	h := make([]float64, n)
	rho := make([]float64, n)
	u := make([]float64, n)
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		m[i] = dx * dx
		h[i] = hdx * dx
		rho[i] = rho0
		u[i] = -100.0 * x[i]
		v[i] = 100.0 * y[i]
	}

	return particles.FromProps("fluid", map[string][]float64{
		"x": x, "y": y, "u": u, "v": v,
		"m": m, "h": h, "rho": rho,
	})
}

// EllipticalDrop builds the circular-patch initial condition for the classic
// elliptical drop test: a unit disk of fluid seeded with u = -100x, v = 100y,
// which a correct SPH scheme evolves into an ellipse of constant area.
// Prints the retained particle count.
func EllipticalDrop(dx, hdx, rho0 float64) (*particles.Array, error) {
	fluid, err := SquarePatch(dx, hdx, rho0)
	if err != nil {
		return nil, err
	}

	outside := CarveDisk(fluid.Prop("x"), fluid.Prop("y"), 0, 0, 1.0, diskTol)
	if err := fluid.Remove(outside); err != nil {
		return nil, err
	}

	fmt.Printf("elliptical drop :: %d particles\n", fluid.Len())
	return fluid, nil
}
