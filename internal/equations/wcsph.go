package equations

import (
	"math"

	"sphlab/internal/eos"
)

// TaitPressure evaluates the equation of state per particle. It runs before
// the pairwise loops so Momentum sees fresh pressures.
type TaitPressure struct {
	EOS eos.EOS
}

func (e *TaitPressure) Name() string { return "tait_pressure" }

func (e *TaitPressure) Loop(ctx *Context) error {
	rho := ctx.Fluid.Prop("rho")
	p := ctx.Fluid.Prop("p")
	for i := range rho {
		p[i] = e.EOS.Pressure(rho[i])
	}
	return nil
}

// Continuity accumulates the density rate
// d rho_i/dt = sum_j m_j (v_i - v_j) . grad W_ij.
type Continuity struct{}

func (e *Continuity) Name() string { return "continuity" }

func (e *Continuity) Loop(ctx *Context) error {
	f := ctx.Fluid
	x, y := f.Prop("x"), f.Prop("y")
	u, v := f.Prop("u"), f.Prop("v")
	m := f.Prop("m")
	arho := f.Prop("arho")

	for i := 0; i < f.Len(); i++ {
		for _, j := range ctx.neighbors(i) {
			if j == i {
				continue
			}
			dx := x[i] - x[j]
			dy := y[i] - y[j]
			r := math.Sqrt(dx*dx + dy*dy)
			if r == 0 {
				continue
			}
			gw := ctx.Kern.DWdr(r) / r
			du := u[i] - u[j]
			dv := v[i] - v[j]
			arho[i] += m[j] * (du*dx + dv*dy) * gw
		}
	}
	return nil
}

// Momentum accumulates the pressure-gradient acceleration in symmetric form
// with Monaghan artificial viscosity:
// dv_i/dt = -sum_j m_j (p_i/rho_i^2 + p_j/rho_j^2 + Pi_ij) grad W_ij.
type Momentum struct {
	Alpha float64
	Beta  float64
	C0    float64
	Eta   float64 // softening factor in the viscous term, fraction of h
}

func (e *Momentum) Name() string { return "momentum" }

func (e *Momentum) Loop(ctx *Context) error {
	f := ctx.Fluid
	x, y := f.Prop("x"), f.Prop("y")
	u, v := f.Prop("u"), f.Prop("v")
	m, h := f.Prop("m"), f.Prop("h")
	rho, p := f.Prop("rho"), f.Prop("p")
	au, av := f.Prop("au"), f.Prop("av")

	eta := e.Eta
	if eta == 0 {
		eta = 0.1
	}

	for i := 0; i < f.Len(); i++ {
		pi := p[i] / (rho[i] * rho[i])
		for _, j := range ctx.neighbors(i) {
			if j == i {
				continue
			}
			dx := x[i] - x[j]
			dy := y[i] - y[j]
			r := math.Sqrt(dx*dx + dy*dy)
			if r == 0 {
				continue
			}

			piij := 0.0
			if e.Alpha != 0 || e.Beta != 0 {
				vdotr := (u[i]-u[j])*dx + (v[i]-v[j])*dy
				if vdotr < 0 {
					hij := 0.5 * (h[i] + h[j])
					mu := hij * vdotr / (r*r + eta*eta*hij*hij)
					rhoij := 0.5 * (rho[i] + rho[j])
					piij = (-e.Alpha*e.C0*mu + e.Beta*mu*mu) / rhoij
				}
			}

			gw := ctx.Kern.DWdr(r) / r
			force := m[j] * (pi + p[j]/(rho[j]*rho[j]) + piij) * gw
			au[i] -= force * dx
			av[i] -= force * dy
		}
	}
	return nil
}

// XSPH sets the position rate to a velocity smoothed over neighbors,
// dx_i/dt = v_i + eps sum_j (m_j / rho_ij) (v_j - v_i) W_ij.
// With Eps zero it reduces to plain advection.
type XSPH struct {
	Eps float64
}

func (e *XSPH) Name() string { return "xsph" }

func (e *XSPH) Loop(ctx *Context) error {
	f := ctx.Fluid
	x, y := f.Prop("x"), f.Prop("y")
	u, v := f.Prop("u"), f.Prop("v")
	m, rho := f.Prop("m"), f.Prop("rho")
	ax, ay := f.Prop("ax"), f.Prop("ay")

	for i := 0; i < f.Len(); i++ {
		ax[i] += u[i]
		ay[i] += v[i]
		if e.Eps == 0 {
			continue
		}
		for _, j := range ctx.neighbors(i) {
			if j == i {
				continue
			}
			dx := x[i] - x[j]
			dy := y[i] - y[j]
			r := math.Sqrt(dx*dx + dy*dy)
			w := ctx.Kern.W(r)
			rhoij := 0.5 * (rho[i] + rho[j])
			ax[i] += e.Eps * m[j] / rhoij * (u[j] - u[i]) * w
			ay[i] += e.Eps * m[j] / rhoij * (v[j] - v[i]) * w
		}
	}
	return nil
}

// SummationDensity recomputes rho_i = sum_j m_j W_ij directly. Used to
// initialize densities consistently with the particle distribution.
type SummationDensity struct{}

func (e *SummationDensity) Name() string { return "summation_density" }

func (e *SummationDensity) Loop(ctx *Context) error {
	f := ctx.Fluid
	x, y := f.Prop("x"), f.Prop("y")
	m := f.Prop("m")
	rho := f.Prop("rho")

	for i := 0; i < f.Len(); i++ {
		sum := 0.0
		for _, j := range ctx.neighbors(i) {
			dx := x[i] - x[j]
			dy := y[i] - y[j]
			sum += m[j] * ctx.Kern.W(math.Sqrt(dx*dx+dy*dy))
		}
		rho[i] = sum
	}
	return nil
}
