package eos

import "math"

// EOS maps density to pressure for a weakly-compressible fluid.
type EOS interface {
	Pressure(rho float64) float64
	SoundSpeed(rho float64) float64
}

// Tait is the stiffened equation of state used by WCSPH:
// p = (c0^2 rho0 / gamma) ((rho/rho0)^gamma - 1).
type Tait struct {
	Rho0  float64
	C0    float64
	Gamma float64
	b     float64
}

func NewTait(rho0, c0, gamma float64) *Tait {
	return &Tait{
		Rho0:  rho0,
		C0:    c0,
		Gamma: gamma,
		b:     c0 * c0 * rho0 / gamma,
	}
}

func (t *Tait) Pressure(rho float64) float64 {
	return t.b * (math.Pow(rho/t.Rho0, t.Gamma) - 1.0)
}

func (t *Tait) SoundSpeed(rho float64) float64 {
	return t.C0 * math.Pow(rho/t.Rho0, 0.5*(t.Gamma-1.0))
}

// Linear is the isothermal limit p = c0^2 (rho - rho0).
type Linear struct {
	Rho0 float64
	C0   float64
}

func NewLinear(rho0, c0 float64) *Linear {
	return &Linear{Rho0: rho0, C0: c0}
}

func (l *Linear) Pressure(rho float64) float64 {
	return l.C0 * l.C0 * (rho - l.Rho0)
}

func (l *Linear) SoundSpeed(rho float64) float64 { return l.C0 }
