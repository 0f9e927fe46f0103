package colorimetry

// One-dimensional minimization used to refine the correlated color
// temperature search after the table scan has bracketed the minimum.

// invPhi is the inverse golden ratio, the interval reduction factor of
// a golden-section search.
const invPhi = 0.6180339887498949

// minimizeGolden returns the minimizer of f over [a, b] found by
// golden-section search, assuming f is unimodal on the interval.
// Each iteration shrinks the bracket by invPhi and reuses one of the
// two interior function values, so f is evaluated once per iteration.
// The search stops when the bracket is narrower than tol and returns
// its midpoint; the iteration cap only guards against a tol below the
// floating-point spacing of the interval.
func minimizeGolden(f func(float64) float64, a, b, tol float64) float64 {
	c := b - (b-a)*invPhi
	d := a + (b-a)*invPhi
	fc, fd := f(c), f(d)
	for i := 0; i < 200 && b-a > tol; i++ {
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - (b-a)*invPhi
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + (b-a)*invPhi
			fd = f(d)
		}
	}
	return (a + b) / 2
}
