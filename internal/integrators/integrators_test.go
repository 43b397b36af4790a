package integrators

import (
	"math"
	"testing"

	"sphlab/internal/particles"
)

// A single particle in a harmonic well: au = -x, ax = u. Exact solution is
// x(t) = cos(t).
func harmonicAccel(fluid *particles.Array) error {
	x := fluid.Prop("x")
	u := fluid.Prop("u")
	au := fluid.Prop("au")
	ax := fluid.Prop("ax")
	for i := range x {
		au[i] = -x[i]
		ax[i] = u[i]
	}
	return nil
}

func harmonicParticle(t *testing.T) *particles.Array {
	t.Helper()
	fluid, err := particles.FromProps("fluid", map[string][]float64{
		"x": {1.0}, "y": {0}, "u": {0}, "v": {0}, "rho": {1},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"arho", "au", "av", "ax", "ay",
		"rho0", "u0", "v0", "x0", "y0"} {
		fluid.AddProp(name)
	}
	return fluid
}

func runHarmonic(t *testing.T, s Stepper, dt float64, steps int) float64 {
	t.Helper()
	fluid := harmonicParticle(t)
	for i := 0; i < steps; i++ {
		if err := s.Step(fluid, harmonicAccel, dt); err != nil {
			t.Fatal(err)
		}
	}
	return fluid.Prop("x")[0]
}

func TestPECSecondOrder(t *testing.T) {
	dt := 0.01
	steps := 100
	got := runHarmonic(t, NewPEC(), dt, steps)
	want := math.Cos(float64(steps) * dt)
	if math.Abs(got-want) > 1e-4 {
		t.Errorf("x after %d steps = %.6f, want %.6f", steps, got, want)
	}
}

func TestEulerFirstOrder(t *testing.T) {
	dt := 0.001
	steps := 1000
	got := runHarmonic(t, NewEuler(), dt, steps)
	want := math.Cos(float64(steps) * dt)
	if math.Abs(got-want) > 1e-2 {
		t.Errorf("x after %d steps = %.6f, want %.6f", steps, got, want)
	}
}

func TestPECMoreAccurateThanEuler(t *testing.T) {
	dt := 0.01
	steps := 200
	want := math.Cos(float64(steps) * dt)

	errEuler := math.Abs(runHarmonic(t, NewEuler(), dt, steps) - want)
	errPEC := math.Abs(runHarmonic(t, NewPEC(), dt, steps) - want)

	if errPEC >= errEuler {
		t.Errorf("PEC error %e not smaller than Euler error %e", errPEC, errEuler)
	}
}

func BenchmarkEuler(b *testing.B) {
	fluid, _ := particles.FromProps("fluid", map[string][]float64{
		"x": make([]float64, 1000), "y": make([]float64, 1000),
		"u": make([]float64, 1000), "v": make([]float64, 1000),
		"rho": make([]float64, 1000),
	})
	for _, name := range []string{"arho", "au", "av", "ax", "ay"} {
		fluid.AddProp(name)
	}
	s := NewEuler()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Step(fluid, harmonicAccel, 1e-4)
	}
}

func BenchmarkPEC(b *testing.B) {
	fluid, _ := particles.FromProps("fluid", map[string][]float64{
		"x": make([]float64, 1000), "y": make([]float64, 1000),
		"u": make([]float64, 1000), "v": make([]float64, 1000),
		"rho": make([]float64, 1000),
	})
	for _, name := range []string{"arho", "au", "av", "ax", "ay",
		"rho0", "u0", "v0", "x0", "y0"} {
		fluid.AddProp(name)
	}
	s := NewPEC()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Step(fluid, harmonicAccel, 1e-4)
	}
}
