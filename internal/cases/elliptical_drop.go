package cases

import (
	"sphlab/internal/config"
	"sphlab/internal/fields"
	"sphlab/internal/particles"
	"sphlab/internal/scheme"
	"sphlab/internal/solver"
)

// EllipticalDrop is the circular-patch benchmark: a unit disk of fluid with
// the incompressible velocity field u = -100x, v = 100y deforms into an
// ellipse of constant area. The exact semi-axes come from a pair of ODEs,
// which makes this the standard accuracy check for a WCSPH scheme.
type EllipticalDrop struct {
	cfg *config.Config
}

func (c *EllipticalDrop) Name() string { return "elliptical_drop" }

func (c *EllipticalDrop) CreateParticles() (*particles.Array, error) {
	return fields.EllipticalDrop(c.cfg.Dx, c.cfg.Hdx, c.cfg.Rho0)
}

func (c *EllipticalDrop) CreateScheme() *scheme.WCSPH {
	s := scheme.NewWCSPH([]string{"fluid"}, c.cfg.Rho0, c.cfg.C0, c.cfg.H0(), c.cfg.Hdx)
	s.Gamma = c.cfg.Gamma
	s.Alpha = c.cfg.Alpha
	s.Beta = c.cfg.Beta
	s.XSPHEps = c.cfg.XSPHEps
	return s
}

func (c *EllipticalDrop) SolverConfig() solver.Config {
	sc := solver.DefaultConfig()
	sc.Dt = c.cfg.Dt
	sc.TFinal = c.cfg.TFinal
	sc.Adaptive = c.cfg.Adaptive
	sc.CFL = c.cfg.CFL
	sc.OutputEvery = c.cfg.OutputEvery
	return sc
}
