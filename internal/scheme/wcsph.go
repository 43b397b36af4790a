package scheme

import (
	"fmt"

	"sphlab/internal/eos"
	"sphlab/internal/equations"
	"sphlab/internal/integrators"
	"sphlab/internal/kernels"
	"sphlab/internal/particles"
)

// WCSPH bundles the weakly-compressible scheme: kernel choice, equation
// group, stepper, and the particle properties they require.
type WCSPH struct {
	Fluids  []string
	Dim     int
	Rho0    float64
	C0      float64
	H0      float64
	Hdx     float64
	Gamma   float64
	Alpha   float64
	Beta    float64
	XSPHEps float64
}

// NewWCSPH fills in the conventional defaults for gamma and the
// artificial-viscosity coefficients.
func NewWCSPH(fluids []string, rho0, c0, h0, hdx float64) *WCSPH {
	return &WCSPH{
		Fluids:  fluids,
		Dim:     2,
		Rho0:    rho0,
		C0:      c0,
		H0:      h0,
		Hdx:     hdx,
		Gamma:   7.0,
		Alpha:   0.1,
		Beta:    0.0,
		XSPHEps: 0.5,
	}
}

// requiredProps are the solver-owned properties every fluid collection
// needs beyond its initial condition (x, y, u, v, m, h, rho).
var requiredProps = []string{
	"p",
	"arho", "au", "av", "ax", "ay",
	"rho0", "u0", "v0", "x0", "y0",
}

// SetupProperties declares the scheme's required properties on each fluid
// collection. Collections missing an initial-condition property are
// rejected.
func (s *WCSPH) SetupProperties(arrays ...*particles.Array) error {
	for _, a := range arrays {
		for _, name := range []string{"x", "y", "u", "v", "m", "h", "rho"} {
			if !a.HasProp(name) {
				return fmt.Errorf("scheme: collection %q: %w: %q",
					a.Name(), particles.ErrNoProp, name)
			}
		}
		for _, name := range requiredProps {
			a.AddProp(name)
		}
	}
	return nil
}

// Kernel returns the scheme's smoothing kernel, a cubic spline at H0.
func (s *WCSPH) Kernel() kernels.Kernel {
	return kernels.NewCubicSpline(s.H0)
}

// EOS returns the Tait equation of state configured for this scheme.
func (s *WCSPH) EOS() eos.EOS {
	return eos.NewTait(s.Rho0, s.C0, s.Gamma)
}

// Equations assembles the scheme's equation group: EOS evaluation first,
// then the pairwise loops.
func (s *WCSPH) Equations() *equations.Group {
	return equations.NewGroup(
		&equations.TaitPressure{EOS: s.EOS()},
		&equations.Continuity{},
		&equations.Momentum{Alpha: s.Alpha, Beta: s.Beta, C0: s.C0},
		&equations.XSPH{Eps: s.XSPHEps},
	)
}

// Stepper returns the stepper for the given name; PEC is the scheme
// default.
func (s *WCSPH) Stepper(name string) (integrators.Stepper, error) {
	switch name {
	case "", "pec":
		return integrators.NewPEC(), nil
	case "euler":
		return integrators.NewEuler(), nil
	default:
		return nil, fmt.Errorf("scheme: unknown integrator: %s", name)
	}
}

// StableDt suggests a CFL-limited timestep for the current maximum particle
// speed.
func (s *WCSPH) StableDt(cfl, vmax float64) float64 {
	return cfl * s.H0 / (s.C0 + vmax)
}
