package equations

import (
	"fmt"

	"sphlab/internal/kernels"
	"sphlab/internal/nnps"
	"sphlab/internal/particles"
)

// Context carries everything a particle loop needs for one acceleration
// pass: the fluid collection, an up-to-date neighbor index, and the kernel.
type Context struct {
	Fluid *particles.Array
	NN    nnps.Index
	Kern  kernels.Kernel

	buf []int
}

func (c *Context) neighbors(i int) []int {
	c.buf = c.NN.Neighbors(i, c.buf)
	return c.buf
}

// Equation accumulates contributions into the derivative properties of the
// fluid collection (arho, au, av, ax, ay) or evaluates per-particle fields
// such as pressure.
type Equation interface {
	Name() string
	Loop(ctx *Context) error
}

// Group is an ordered equation list evaluated in sequence. Derivative
// accumulators are zeroed once per evaluation, before any equation runs.
type Group struct {
	eqs []Equation
}

func NewGroup(eqs ...Equation) *Group {
	return &Group{eqs: eqs}
}

func (g *Group) Add(eq Equation) { g.eqs = append(g.eqs, eq) }

func (g *Group) Names() []string {
	names := make([]string, len(g.eqs))
	for i, eq := range g.eqs {
		names[i] = eq.Name()
	}
	return names
}

var accumulators = []string{"arho", "au", "av", "ax", "ay"}

func (g *Group) Evaluate(ctx *Context) error {
	for _, name := range accumulators {
		p := ctx.Fluid.Prop(name)
		if p == nil {
			return fmt.Errorf("equations: %w: %q", particles.ErrNoProp, name)
		}
		for i := range p {
			p[i] = 0
		}
	}

	for _, eq := range g.eqs {
		if err := eq.Loop(ctx); err != nil {
			return fmt.Errorf("equations: %s: %w", eq.Name(), err)
		}
	}
	return nil
}
