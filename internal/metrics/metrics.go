package metrics

import (
	"math"

	"sphlab/internal/particles"
)

// KineticEnergy reports 0.5 sum m (u^2 + v^2) at the last observed step.
type KineticEnergy struct {
	last float64
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(fluid *particles.Array, t float64) {
	m := fluid.Prop("m")
	u := fluid.Prop("u")
	v := fluid.Prop("v")
	sum := 0.0
	for i := range m {
		sum += 0.5 * m[i] * (u[i]*u[i] + v[i]*v[i])
	}
	k.last = sum
}

func (k *KineticEnergy) Value() float64 { return k.last }
func (k *KineticEnergy) Reset()        { k.last = 0 }

// TotalMass reports sum m. Constant by construction; a drift means particles
// were lost or duplicated.
type TotalMass struct {
	last float64
}

func NewTotalMass() *TotalMass { return &TotalMass{} }

func (tm *TotalMass) Name() string { return "total_mass" }

func (tm *TotalMass) Observe(fluid *particles.Array, t float64) {
	sum := 0.0
	for _, v := range fluid.Prop("m") {
		sum += v
	}
	tm.last = sum
}

func (tm *TotalMass) Value() float64 { return tm.last }
func (tm *TotalMass) Reset()         { tm.last = 0 }

// DensityVariation tracks the maximum relative density deviation from the
// reference, max |rho/rho0 - 1| over the whole run. Weak compressibility
// holds when this stays within a few percent.
type DensityVariation struct {
	rho0 float64
	max  float64
}

func NewDensityVariation(rho0 float64) *DensityVariation {
	return &DensityVariation{rho0: rho0}
}

func (d *DensityVariation) Name() string { return "density_variation" }

func (d *DensityVariation) Observe(fluid *particles.Array, t float64) {
	for _, rho := range fluid.Prop("rho") {
		dev := math.Abs(rho/d.rho0 - 1.0)
		if dev > d.max {
			d.max = dev
		}
	}
}

func (d *DensityVariation) Value() float64 { return d.max }
func (d *DensityVariation) Reset()         { d.max = 0 }
