// Package equations implements the weakly-compressible SPH operator set:
// Tait pressure evaluation, continuity, momentum with Monaghan artificial
// viscosity, and XSPH velocity-smoothed advection. Equations are composed
// into an ordered Group and evaluated once per acceleration pass.
package equations
