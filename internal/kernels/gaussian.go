package kernels

import "math"

// Gaussian kernel with a 3h cutoff. Smooth but wider support than the
// cubic spline, useful as an interpolation kernel.
type Gaussian struct {
	H     float64
	sigma float64
}

func NewGaussian(h float64) *Gaussian {
	return &Gaussian{
		H:     h,
		sigma: 1.0 / (math.Pi * h * h),
	}
}

func (k *Gaussian) Radius() float64 { return 3.0 * k.H }

func (k *Gaussian) W(r float64) float64 {
	q := r / k.H
	if q > 3.0 {
		return 0.0
	}
	return k.sigma * math.Exp(-q*q)
}

func (k *Gaussian) DWdr(r float64) float64 {
	q := r / k.H
	if q > 3.0 {
		return 0.0
	}
	return -2.0 * q / k.H * k.sigma * math.Exp(-q*q)
}
