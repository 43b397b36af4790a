package integrators

import "sphlab/internal/particles"

// Euler is the explicit first-order stepper: one acceleration evaluation,
// one advance.
type Euler struct{}

func NewEuler() *Euler { return &Euler{} }

func (e *Euler) Step(fluid *particles.Array, accel Accel, dt float64) error {
	if err := accel(fluid); err != nil {
		return err
	}
	for _, pair := range statePairs {
		state := fluid.Prop(pair[0])
		rate := fluid.Prop(pair[1])
		for i := range state {
			state[i] += dt * rate[i]
		}
	}
	return nil
}
