package cases

import (
	"sphlab/internal/config"
	"sphlab/internal/fields"
	"sphlab/internal/particles"
	"sphlab/internal/scheme"
	"sphlab/internal/solver"
)

// SquareDrop runs the same diverging velocity field on the full square
// patch, without carving the disk. Mostly useful for eyeballing the
// free-surface behaviour at the corners.
type SquareDrop struct {
	cfg *config.Config
}

func (c *SquareDrop) Name() string { return "square_drop" }

func (c *SquareDrop) CreateParticles() (*particles.Array, error) {
	return fields.SquarePatch(c.cfg.Dx, c.cfg.Hdx, c.cfg.Rho0)
}

func (c *SquareDrop) CreateScheme() *scheme.WCSPH {
	s := scheme.NewWCSPH([]string{"fluid"}, c.cfg.Rho0, c.cfg.C0, c.cfg.H0(), c.cfg.Hdx)
	s.Gamma = c.cfg.Gamma
	s.Alpha = c.cfg.Alpha
	s.Beta = c.cfg.Beta
	s.XSPHEps = c.cfg.XSPHEps
	return s
}

func (c *SquareDrop) SolverConfig() solver.Config {
	sc := solver.DefaultConfig()
	sc.Dt = c.cfg.Dt
	sc.TFinal = c.cfg.TFinal
	sc.Adaptive = c.cfg.Adaptive
	sc.CFL = c.cfg.CFL
	sc.OutputEvery = c.cfg.OutputEvery
	return sc
}
