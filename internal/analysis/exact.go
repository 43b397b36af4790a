package analysis

// The incompressible elliptical drop admits a semi-analytic solution: the
// unit disk seeded with u = -100x, v = 100y deforms into an ellipse whose
// semi-axes a and 1/a preserve area. With A the velocity-gradient magnitude
// and a the contracting semi-axis along x, the evolution satisfies
//
//	dA/dt = A^2 (a^4 - 1) / (a^4 + 1)
//	da/dt = -a A
//
// from A(0) = 100, a(0) = 1.

// ExactSolution integrates the axis ODE to time tf with step dt using
// classical RK4 and returns the rate A and semi-axis a.
func ExactSolution(tf, dt float64) (A, a float64) {
	A, a = 100.0, 1.0
	if tf <= 0 || dt <= 0 {
		return A, a
	}

	deriv := func(A, a float64) (dA, da float64) {
		a4 := a * a * a * a
		dA = A * A * (a4 - 1.0) / (a4 + 1.0)
		da = -a * A
		return
	}

	for t := 0.0; t < tf; t += dt {
		h := dt
		if t+h > tf {
			h = tf - t
		}

		k1A, k1a := deriv(A, a)
		k2A, k2a := deriv(A+0.5*h*k1A, a+0.5*h*k1a)
		k3A, k3a := deriv(A+0.5*h*k2A, a+0.5*h*k2a)
		k4A, k4a := deriv(A+h*k3A, a+h*k3a)

		A += h / 6.0 * (k1A + 2*k2A + 2*k3A + k4A)
		a += h / 6.0 * (k1a + 2*k2a + 2*k3a + k4a)
	}
	return A, a
}
