package cases

import (
	"fmt"
	"sort"

	"sphlab/internal/config"
	"sphlab/internal/particles"
	"sphlab/internal/scheme"
	"sphlab/internal/solver"
)

// Case is one self-contained simulation setup: it builds the initial
// particle state, configures the numerical scheme, and supplies solver
// defaults. This mirrors the create-particles / create-scheme split of
// classic SPH example drivers.
type Case interface {
	Name() string
	CreateParticles() (*particles.Array, error)
	CreateScheme() *scheme.WCSPH
	SolverConfig() solver.Config
}

// Registry maps case names to constructors.
type Registry struct {
	cases map[string]func(*config.Config) Case
}

func NewRegistry() *Registry {
	r := &Registry{cases: make(map[string]func(*config.Config) Case)}
	r.cases["elliptical_drop"] = func(cfg *config.Config) Case {
		return &EllipticalDrop{cfg: cfg}
	}
	r.cases["square_drop"] = func(cfg *config.Config) Case {
		return &SquareDrop{cfg: cfg}
	}
	return r
}

func (r *Registry) Get(name string, cfg *config.Config) (Case, error) {
	fn, ok := r.cases[name]
	if !ok {
		return nil, fmt.Errorf("cases: unknown case: %s", name)
	}
	return fn(cfg), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.cases))
	for name := range r.cases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
