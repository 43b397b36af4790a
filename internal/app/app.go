package app

import (
	"context"
	"fmt"
	"time"

	"sphlab/internal/cases"
	"sphlab/internal/config"
	"sphlab/internal/equations"
	"sphlab/internal/integrators"
	"sphlab/internal/metrics"
	"sphlab/internal/nnps"
	"sphlab/internal/particles"
	"sphlab/internal/scheme"
	"sphlab/internal/solver"
)

// App assembles one full simulation from a config: case, particles, scheme,
// neighbor index, equation group, stepper, metrics. It reports setup and run
// wall times separately, since for small runs the setup can dominate.
type App struct {
	cfg      *config.Config
	registry *cases.Registry
}

func New(cfg *config.Config) *App {
	return &App{cfg: cfg, registry: cases.NewRegistry()}
}

// parts is everything the time loop needs, wired and ready to step.
type parts struct {
	c       cases.Case
	fluid   *particles.Array
	sch     *scheme.WCSPH
	stepper integrators.Stepper
	accel   integrators.Accel
}

func (a *App) build() (*parts, error) {
	c, err := a.registry.Get(a.cfg.Case, a.cfg)
	if err != nil {
		return nil, err
	}

	fluid, err := c.CreateParticles()
	if err != nil {
		return nil, err
	}

	sch := c.CreateScheme()
	if err := sch.SetupProperties(fluid); err != nil {
		return nil, err
	}

	kern := sch.Kernel()

	var nn nnps.Index
	switch a.cfg.NNPS {
	case "", "linked_cell":
		nn = nnps.NewLinkedCell(kern.Radius())
	case "brute":
		nn = nnps.NewBruteForce(kern.Radius())
	default:
		return nil, fmt.Errorf("app: unknown nnps: %s", a.cfg.NNPS)
	}

	group := sch.Equations()
	ectx := &equations.Context{Fluid: fluid, NN: nn, Kern: kern}
	accel := func(f *particles.Array) error {
		ectx.Fluid = f
		nn.Update(f.Prop("x"), f.Prop("y"))
		return group.Evaluate(ectx)
	}

	stepper, err := sch.Stepper(a.cfg.Integrator)
	if err != nil {
		return nil, err
	}

	return &parts{c: c, fluid: fluid, sch: sch, stepper: stepper, accel: accel}, nil
}

// Output is the bundle a finished run produces.
type Output struct {
	Case      string
	Particles int
	Result    *solver.Result
	Fluid     *particles.Array
	SetupTime time.Duration
	RunTime   time.Duration
}

func (a *App) Run(ctx context.Context, observers ...solver.Observer) (*Output, error) {
	setupStart := time.Now()
	p, err := a.build()
	if err != nil {
		return nil, err
	}

	slv := solver.New(p.stepper, p.accel)
	slv.SetStableDt(func(vmax float64) float64 {
		return p.sch.StableDt(a.cfg.CFL, vmax)
	})
	slv.AddMetric(metrics.NewKineticEnergy())
	slv.AddMetric(metrics.NewTotalMass())
	slv.AddMetric(metrics.NewDensityVariation(a.cfg.Rho0))
	for _, obs := range observers {
		slv.AddObserver(obs)
	}
	setupTime := time.Since(setupStart)

	runStart := time.Now()
	result, err := slv.Run(ctx, p.fluid, p.c.SolverConfig())
	if err != nil {
		return nil, err
	}
	runTime := time.Since(runStart)

	return &Output{
		Case:      p.c.Name(),
		Particles: p.fluid.Len(),
		Result:    result,
		Fluid:     p.fluid,
		SetupTime: setupTime,
		RunTime:   runTime,
	}, nil
}

// Session exposes the same wired simulation for callers that drive the time
// loop themselves, such as the live terminal view.
type Session struct {
	cfg   *config.Config
	fluid *particles.Array
	sch   *scheme.WCSPH

	stepper integrators.Stepper
	accel   integrators.Accel
	t       float64
}

func (a *App) NewSession() (*Session, error) {
	p, err := a.build()
	if err != nil {
		return nil, err
	}
	return &Session{
		cfg:     a.cfg,
		fluid:   p.fluid,
		sch:     p.sch,
		stepper: p.stepper,
		accel:   p.accel,
	}, nil
}

func (s *Session) Fluid() *particles.Array { return s.fluid }
func (s *Session) T() float64              { return s.t }
func (s *Session) TFinal() float64         { return s.cfg.TFinal }
func (s *Session) Done() bool              { return s.t >= s.cfg.TFinal }

// Step advances n timesteps, stopping at the configured final time.
func (s *Session) Step(n int) error {
	for i := 0; i < n && !s.Done(); i++ {
		dt := s.cfg.Dt
		if s.t+dt > s.cfg.TFinal {
			dt = s.cfg.TFinal - s.t
		}
		if err := s.stepper.Step(s.fluid, s.accel, dt); err != nil {
			return err
		}
		s.t += dt
	}
	return nil
}
