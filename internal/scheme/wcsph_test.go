package scheme

import (
	"errors"
	"testing"

	"sphlab/internal/particles"
)

func TestSetupPropertiesDeclaresScratch(t *testing.T) {
	fluid, _ := particles.FromProps("fluid", map[string][]float64{
		"x": {0}, "y": {0}, "u": {0}, "v": {0},
		"m": {1}, "h": {1}, "rho": {1},
	})

	s := NewWCSPH([]string{"fluid"}, 1.0, 1400.0, 0.0325, 1.3)
	if err := s.SetupProperties(fluid); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"p", "arho", "au", "av", "ax", "ay",
		"rho0", "u0", "v0", "x0", "y0"} {
		if !fluid.HasProp(name) {
			t.Errorf("property %q not declared", name)
		}
	}
}

func TestSetupPropertiesRejectsIncomplete(t *testing.T) {
	fluid, _ := particles.FromProps("fluid", map[string][]float64{
		"x": {0}, "y": {0},
	})

	s := NewWCSPH([]string{"fluid"}, 1.0, 1400.0, 0.0325, 1.3)
	err := s.SetupProperties(fluid)
	if !errors.Is(err, particles.ErrNoProp) {
		t.Fatalf("expected ErrNoProp, got %v", err)
	}
}

func TestStepperSelection(t *testing.T) {
	s := NewWCSPH([]string{"fluid"}, 1.0, 1400.0, 0.0325, 1.3)

	if _, err := s.Stepper(""); err != nil {
		t.Errorf("default stepper: %v", err)
	}
	if _, err := s.Stepper("euler"); err != nil {
		t.Errorf("euler stepper: %v", err)
	}
	if _, err := s.Stepper("rk9"); err == nil {
		t.Error("expected error for unknown stepper")
	}
}

func TestStableDt(t *testing.T) {
	s := NewWCSPH([]string{"fluid"}, 1.0, 1400.0, 0.0325, 1.3)

	dt := s.StableDt(0.3, 140.0)
	if dt <= 0 {
		t.Fatalf("expected positive dt, got %e", dt)
	}
	// Faster flow shrinks the step.
	if s.StableDt(0.3, 1400.0) >= dt {
		t.Error("dt should shrink with vmax")
	}
}

func TestEquationsOrder(t *testing.T) {
	s := NewWCSPH([]string{"fluid"}, 1.0, 1400.0, 0.0325, 1.3)

	names := s.Equations().Names()
	if len(names) != 4 {
		t.Fatalf("expected 4 equations, got %d", len(names))
	}
	// EOS must run before the pairwise loops.
	if names[0] != "tait_pressure" {
		t.Errorf("first equation = %s, want tait_pressure", names[0])
	}
}
