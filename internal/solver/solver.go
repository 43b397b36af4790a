package solver

import (
	"context"
	"fmt"
	"math"

	"sphlab/internal/integrators"
	"sphlab/internal/particles"
)

type Config struct {
	Dt          float64
	TFinal      float64
	Adaptive    bool
	CFL         float64
	OutputEvery int
	Validate    bool
}

func DefaultConfig() Config {
	return Config{
		Dt:          5e-6,
		TFinal:      0.0076,
		Adaptive:    false,
		CFL:         0.3,
		OutputEvery: 100,
		Validate:    true,
	}
}

// Metric observes the fluid once per step and reduces to a single value.
type Metric interface {
	Name() string
	Observe(fluid *particles.Array, t float64)
	Value() float64
	Reset()
}

// Observer receives a per-step callback, after the state advances.
type Observer interface {
	OnStep(fluid *particles.Array, t float64)
}

// Snapshot is a copy of the observable particle state at one instant.
type Snapshot struct {
	T                 float64
	X, Y, U, V, Rho, P []float64
}

type Result struct {
	Snapshots  []Snapshot
	Metrics    map[string]float64
	StepsTaken int
	FinalT     float64
	Errors     []error
}

// Solver owns the time loop. The stepper advances the state, the accel
// callback (typically neighbor update + equation group) produces the rates,
// and stableDt optionally adapts the step to the current maximum speed.
type Solver struct {
	stepper   integrators.Stepper
	accel     integrators.Accel
	stableDt  func(vmax float64) float64
	metrics   []Metric
	observers []Observer
}

func New(stepper integrators.Stepper, accel integrators.Accel) *Solver {
	return &Solver{stepper: stepper, accel: accel}
}

func (s *Solver) AddMetric(m Metric)         { s.metrics = append(s.metrics, m) }
func (s *Solver) AddObserver(o Observer)     { s.observers = append(s.observers, o) }
func (s *Solver) SetStableDt(f func(float64) float64) { s.stableDt = f }

func (s *Solver) Run(ctx context.Context, fluid *particles.Array, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{Metrics: make(map[string]float64)}
	for _, m := range s.metrics {
		m.Reset()
	}

	t := 0.0
	dt := cfg.Dt
	result.Snapshots = append(result.Snapshots, capture(fluid, t))

	for step := 0; t < cfg.TFinal; step++ {
		select {
		case <-ctx.Done():
			result.FinalT = t
			return result, fmt.Errorf("solver: %w", ctx.Err())
		default:
		}

		if cfg.Adaptive && s.stableDt != nil {
			dt = s.stableDt(maxSpeed(fluid))
		}
		if t+dt > cfg.TFinal {
			dt = cfg.TFinal - t
		}

		if err := s.stepper.Step(fluid, s.accel, dt); err != nil {
			result.Errors = append(result.Errors, err)
			break
		}
		t += dt
		result.StepsTaken++

		if cfg.Validate && !stateValid(fluid) {
			result.Errors = append(result.Errors,
				fmt.Errorf("solver: step %d (t=%.6f): %w", step, t, ErrInvalidState))
			break
		}

		for _, m := range s.metrics {
			m.Observe(fluid, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(fluid, t)
		}

		if cfg.OutputEvery > 0 && (step+1)%cfg.OutputEvery == 0 {
			result.Snapshots = append(result.Snapshots, capture(fluid, t))
		}
	}

	// Always keep the final state.
	last := result.Snapshots[len(result.Snapshots)-1]
	if last.T != t {
		result.Snapshots = append(result.Snapshots, capture(fluid, t))
	}
	result.FinalT = t

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("solver: dt must be positive, got %g", cfg.Dt)
	}
	if cfg.TFinal <= 0 {
		return fmt.Errorf("solver: tf must be positive, got %g", cfg.TFinal)
	}
	if cfg.Adaptive && cfg.CFL <= 0 {
		return fmt.Errorf("solver: cfl must be positive for adaptive stepping")
	}
	return nil
}

func capture(fluid *particles.Array, t float64) Snapshot {
	snap := Snapshot{T: t}
	grab := func(name string) []float64 {
		src := fluid.Prop(name)
		dst := make([]float64, len(src))
		copy(dst, src)
		return dst
	}
	snap.X = grab("x")
	snap.Y = grab("y")
	snap.U = grab("u")
	snap.V = grab("v")
	snap.Rho = grab("rho")
	snap.P = grab("p")
	return snap
}

func maxSpeed(fluid *particles.Array) float64 {
	u := fluid.Prop("u")
	v := fluid.Prop("v")
	vmax := 0.0
	for i := range u {
		s := math.Sqrt(u[i]*u[i] + v[i]*v[i])
		if s > vmax {
			vmax = s
		}
	}
	return vmax
}

func stateValid(fluid *particles.Array) bool {
	for _, name := range []string{"x", "y", "u", "v", "rho"} {
		for _, val := range fluid.Prop(name) {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				return false
			}
		}
	}
	return true
}
