// Package particles stores particle collections as named parallel arrays.
//
// A collection (for example the "fluid" phase of a simulation) holds one
// []float64 per physical property, all indexed by a common particle id:
//
//	fluid, _ := particles.FromProps("fluid", map[string][]float64{
//	    "x": x, "y": y, "m": m, "h": h, "rho": rho,
//	})
//	fluid.Remove(outside)   // carve the initial condition
//	n := fluid.Len()
//
// The invariant is that every property slice has the same length. Remove
// shrinks all properties in lockstep and preserves the relative order of
// the surviving particles.
package particles
