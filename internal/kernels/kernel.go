package kernels

// Kernel is a radially symmetric 2-D smoothing function. W gives the kernel
// value at separation r, DWdr its radial derivative, and Radius the support
// radius beyond which both vanish.
type Kernel interface {
	W(r float64) float64
	DWdr(r float64) float64
	Radius() float64
}
