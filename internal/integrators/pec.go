package integrators

import "sphlab/internal/particles"

// PEC is the predict-evaluate-correct stepper used for WCSPH. The state at
// the start of the step is saved into *0 scratch properties, the predictor
// takes a half step, accelerations are re-evaluated at the midpoint, and
// the corrector completes the step from the saved state.
type PEC struct{}

func NewPEC() *PEC { return &PEC{} }

// RequiredProps lists the scratch properties the stepper needs on the
// fluid collection.
func (p *PEC) RequiredProps() []string {
	return []string{"rho0", "u0", "v0", "x0", "y0"}
}

func (p *PEC) Step(fluid *particles.Array, accel Accel, dt float64) error {
	// Save the initial state.
	for _, pair := range statePairs {
		state := fluid.Prop(pair[0])
		saved := fluid.Prop(pair[0] + "0")
		copy(saved, state)
	}

	// Predictor: half step from the initial state.
	if err := accel(fluid); err != nil {
		return err
	}
	half := 0.5 * dt
	for _, pair := range statePairs {
		state := fluid.Prop(pair[0])
		saved := fluid.Prop(pair[0] + "0")
		rate := fluid.Prop(pair[1])
		for i := range state {
			state[i] = saved[i] + half*rate[i]
		}
	}

	// Corrector: full step using midpoint rates.
	if err := accel(fluid); err != nil {
		return err
	}
	for _, pair := range statePairs {
		state := fluid.Prop(pair[0])
		saved := fluid.Prop(pair[0] + "0")
		rate := fluid.Prop(pair[1])
		for i := range state {
			state[i] = saved[i] + dt*rate[i]
		}
	}
	return nil
}
