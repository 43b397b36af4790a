package kernels

import "math"

// CubicSpline is the standard B-spline kernel with support radius 2h,
// normalized for two dimensions (sigma = 10 / 7 pi h^2).
type CubicSpline struct {
	H     float64
	sigma float64
}

func NewCubicSpline(h float64) *CubicSpline {
	return &CubicSpline{
		H:     h,
		sigma: 10.0 / (7.0 * math.Pi * h * h),
	}
}

func (k *CubicSpline) Radius() float64 { return 2.0 * k.H }

func (k *CubicSpline) W(r float64) float64 {
	q := r / k.H
	switch {
	case q <= 1.0:
		return k.sigma * (1.0 - 1.5*q*q*(1.0-0.5*q))
	case q <= 2.0:
		s := 2.0 - q
		return k.sigma * 0.25 * s * s * s
	default:
		return 0.0
	}
}

func (k *CubicSpline) DWdr(r float64) float64 {
	q := r / k.H
	switch {
	case q <= 1.0:
		return k.sigma / k.H * q * (2.25*q - 3.0)
	case q <= 2.0:
		s := 2.0 - q
		return -k.sigma / k.H * 0.75 * s * s
	default:
		return 0.0
	}
}
