package viz

import (
	"math"

	"sphlab/internal/solver"
)

// Viewport maps world coordinates onto the canvas pixel grid.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DropViewport frames the unit disk with enough margin to hold the
// stretched ellipse at the reference stop time.
func DropViewport() Viewport {
	return Viewport{XMin: -2.2, XMax: 2.2, YMin: -2.2, YMax: 2.2}
}

func (v Viewport) toPixel(c *Canvas, x, y float64) (int, int, bool) {
	if v.XMax <= v.XMin || v.YMax <= v.YMin {
		return 0, 0, false
	}
	pw := float64(c.Width * 2)
	ph := float64(c.Height * 4)
	px := int((x - v.XMin) / (v.XMax - v.XMin) * (pw - 1))
	// Terminal rows grow downward.
	py := int((v.YMax - y) / (v.YMax - v.YMin) * (ph - 1))
	if px < 0 || py < 0 || px >= int(pw) || py >= int(ph) {
		return 0, 0, false
	}
	return px, py, true
}

// DrawParticles scatters the particle positions onto the canvas.
func DrawParticles(c *Canvas, v Viewport, x, y []float64) {
	for i := range x {
		if px, py, ok := v.toPixel(c, x[i], y[i]); ok {
			c.Set(px, py)
		}
	}
}

// DrawEllipse overlays the outline of the ellipse with semi-axes a (along x)
// and b (along y), centered at the origin.
func DrawEllipse(c *Canvas, v Viewport, a, b float64) {
	const segments = 128
	var px0, py0 int
	have := false
	for k := 0; k <= segments; k++ {
		theta := 2 * math.Pi * float64(k) / segments
		px, py, ok := v.toPixel(c, a*math.Cos(theta), b*math.Sin(theta))
		if !ok {
			have = false
			continue
		}
		if have {
			c.DrawLine(px0, py0, px, py)
		}
		px0, py0 = px, py
		have = true
	}
}

// RenderSnapshot draws one stored snapshot as a braille scatter plot.
func RenderSnapshot(snap solver.Snapshot, width, height int) string {
	c := NewCanvas(width, height)
	DrawParticles(c, DropViewport(), snap.X, snap.Y)
	return c.String()
}
