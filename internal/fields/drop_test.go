package fields

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArange(t *testing.T) {
	got := Arange(0, 1, 0.25)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, got)

	assert.Nil(t, Arange(0, 1, 0))
	assert.Nil(t, Arange(1, 0, 0.1))
}

func TestCarveDiskBoundaryTolerance(t *testing.T) {
	// A point numerically on the circle must not be carved away.
	x := []float64{1.0 + 5e-11, 1.1, 0.5}
	y := []float64{0, 0, 0}

	outside := CarveDisk(x, y, 0, 0, 1.0, 1e-10)
	assert.Equal(t, []int{1}, outside)
}

func TestSquarePatchAttributes(t *testing.T) {
	dx, hdx, rho0 := 0.1, 1.3, 1.0
	fluid, err := SquarePatch(dx, hdx, rho0)
	require.NoError(t, err)
	require.NoError(t, fluid.Validate())

	x := fluid.Prop("x")
	y := fluid.Prop("y")
	for i := 0; i < fluid.Len(); i++ {
		assert.Equal(t, dx*dx, fluid.Prop("m")[i])
		assert.Equal(t, hdx*dx, fluid.Prop("h")[i])
		assert.Equal(t, rho0, fluid.Prop("rho")[i])
		assert.Equal(t, -100.0*x[i], fluid.Prop("u")[i])
		assert.Equal(t, 100.0*y[i], fluid.Prop("v")[i])
	}
}

func TestEllipticalDropRetainedCount(t *testing.T) {
	dx := 0.1
	fluid, err := EllipticalDrop(dx, 1.3, 1.0)
	require.NoError(t, err)

	// The retained count must equal the number of grid points within the
	// unit disk, computed independently.
	x, y := UniformGrid2D(-1.05, 1.05+1e-4, dx)
	want := 0
	for i := range x {
		if math.Sqrt(x[i]*x[i]+y[i]*y[i]) <= 1.0+1e-10 {
			want++
		}
	}
	assert.Equal(t, want, fluid.Len())
	assert.Less(t, fluid.Len(), len(x))
}

func TestEllipticalDropVelocityFieldSurvivesCarve(t *testing.T) {
	fluid, err := EllipticalDrop(0.1, 1.3, 1.0)
	require.NoError(t, err)

	x := fluid.Prop("x")
	y := fluid.Prop("y")
	u := fluid.Prop("u")
	v := fluid.Prop("v")
	for i := 0; i < fluid.Len(); i++ {
		assert.Equal(t, -100.0*x[i], u[i], "u must stay locked to position after carving")
		assert.Equal(t, 100.0*y[i], v[i])
	}
}

func TestEllipticalDropDeterministic(t *testing.T) {
	a, err := EllipticalDrop(0.1, 1.3, 1.0)
	require.NoError(t, err)
	b, err := EllipticalDrop(0.1, 1.3, 1.0)
	require.NoError(t, err)

	require.Equal(t, a.Len(), b.Len())
	assert.Equal(t, a.Prop("x"), b.Prop("x"))
	assert.Equal(t, a.Prop("v"), b.Prop("v"))
}
