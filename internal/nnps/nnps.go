package nnps

// Index answers fixed-radius neighbor queries over a particle set. Update
// must be called whenever positions change; Neighbors then returns the ids
// of all particles within the search radius of particle i, including i
// itself. The buf argument is reused to avoid per-query allocation.
type Index interface {
	Update(x, y []float64)
	Neighbors(i int, buf []int) []int
}
