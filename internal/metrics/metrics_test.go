package metrics

import (
	"math"
	"testing"

	"sphlab/internal/particles"
)

func twoParticles(t *testing.T) *particles.Array {
	t.Helper()
	fluid, err := particles.FromProps("fluid", map[string][]float64{
		"m":   {2.0, 3.0},
		"u":   {1.0, 0.0},
		"v":   {0.0, 2.0},
		"rho": {1.0, 1.1},
	})
	if err != nil {
		t.Fatal(err)
	}
	return fluid
}

func TestKineticEnergy(t *testing.T) {
	m := NewKineticEnergy()
	m.Observe(twoParticles(t), 0)

	// 0.5*2*1 + 0.5*3*4 = 7
	if math.Abs(m.Value()-7.0) > 1e-12 {
		t.Errorf("kinetic energy = %f, want 7", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestTotalMass(t *testing.T) {
	m := NewTotalMass()
	m.Observe(twoParticles(t), 0)
	if m.Value() != 5.0 {
		t.Errorf("total mass = %f, want 5", m.Value())
	}
}

func TestDensityVariationTracksMax(t *testing.T) {
	m := NewDensityVariation(1.0)
	fluid := twoParticles(t)

	m.Observe(fluid, 0)
	firstMax := m.Value()
	if math.Abs(firstMax-0.1) > 1e-12 {
		t.Errorf("deviation = %f, want 0.1", firstMax)
	}

	// A later, calmer state must not lower the recorded maximum.
	fluid.Prop("rho")[1] = 1.01
	m.Observe(fluid, 1)
	if m.Value() != firstMax {
		t.Errorf("maximum regressed: %f -> %f", firstMax, m.Value())
	}
}
