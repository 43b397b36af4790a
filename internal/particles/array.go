package particles

import (
	"fmt"
	"sort"
)

// Array is a named particle collection stored as parallel property slices.
// Every property shares one index space: element i of each slice belongs to
// particle i. The zero value is not usable; construct with New or FromProps.
type Array struct {
	name  string
	n     int
	props map[string][]float64
	order []string
}

// New creates an empty-property collection of n particles.
func New(name string, n int) *Array {
	return &Array{
		name:  name,
		n:     n,
		props: make(map[string][]float64),
	}
}

// FromProps creates a collection from named property slices. All slices must
// have equal length.
func FromProps(name string, props map[string][]float64) (*Array, error) {
	a := New(name, -1)
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := props[k]
		if a.n < 0 {
			a.n = len(v)
		}
		if len(v) != a.n {
			return nil, fmt.Errorf("particles: %w: prop %q has %d elements, want %d",
				ErrLengthMismatch, k, len(v), a.n)
		}
		a.props[k] = v
		a.order = append(a.order, k)
	}
	if a.n < 0 {
		a.n = 0
	}
	return a, nil
}

func (a *Array) Name() string { return a.name }

// Len reports the particle count.
func (a *Array) Len() int { return a.n }

// HasProp reports whether the named property exists.
func (a *Array) HasProp(name string) bool {
	_, ok := a.props[name]
	return ok
}

// Prop returns the named property slice, or nil if absent. The slice aliases
// the collection's storage; writes are visible to the solver.
func (a *Array) Prop(name string) []float64 {
	return a.props[name]
}

// AddProp registers a zero-filled property. Adding an existing property is a
// no-op returning the current slice.
func (a *Array) AddProp(name string) []float64 {
	if p, ok := a.props[name]; ok {
		return p
	}
	p := make([]float64, a.n)
	a.props[name] = p
	a.order = append(a.order, name)
	return p
}

// PropNames returns property names in registration order.
func (a *Array) PropNames() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Remove deletes the particles at the given indices from every property,
// preserving the relative order of survivors. Duplicate indices are removed
// once. An out-of-range index is an error and leaves the collection intact.
func (a *Array) Remove(indices []int) error {
	if len(indices) == 0 {
		return nil
	}
	drop := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= a.n {
			return fmt.Errorf("particles: %w: index %d with %d particles",
				ErrIndexRange, idx, a.n)
		}
		drop[idx] = true
	}

	kept := a.n - len(drop)
	for name, p := range a.props {
		dst := 0
		for i := 0; i < a.n; i++ {
			if !drop[i] {
				p[dst] = p[i]
				dst++
			}
		}
		a.props[name] = p[:kept]
	}
	a.n = kept
	return nil
}

// Validate checks the shared-length invariant. It only fails if a caller
// mutated a property slice's length out-of-band.
func (a *Array) Validate() error {
	for name, p := range a.props {
		if len(p) != a.n {
			return fmt.Errorf("particles: %w: prop %q has %d elements, want %d",
				ErrLengthMismatch, name, len(p), a.n)
		}
	}
	return nil
}
