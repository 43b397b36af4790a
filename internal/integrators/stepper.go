package integrators

import "sphlab/internal/particles"

// Accel computes the derivative properties (arho, au, av, ax, ay) of a
// fluid collection from its current state. Implementations rebuild the
// neighbor index and run the equation group.
type Accel func(fluid *particles.Array) error

// Stepper advances a fluid collection by one timestep.
type Stepper interface {
	Step(fluid *particles.Array, accel Accel, dt float64) error
}

// statePairs maps each state property to the derivative property that
// advances it.
var statePairs = [][2]string{
	{"rho", "arho"},
	{"u", "au"},
	{"v", "av"},
	{"x", "ax"},
	{"y", "ay"},
}
