package main

// newtonSqrtIterations is fixed so that identical input always performs
// identical work; 25 Newton steps converge far past double precision for the
// value ranges this worker sees.
const newtonSqrtIterations = 25

// newtonSqrt approximates the square root of a non-negative x with
// Newton-Raphson refinement. Negative input is an upstream bug, not a
// condition this routine handles: variance is >= 0 by construction.
func newtonSqrt(x float64) float64 {
	if x == 0.0 {
		return 0.0
	}

	guess := x
	if guess < 1.0 {
		guess = 1.0
	}
	for i := 0; i < newtonSqrtIterations; i++ {
		guess = 0.5 * (guess + x/guess)
	}
	return guess
}
