package solver

import (
	"math"

	"github.com/wildstyl3r/roots/internal/constants"
)

// Policy holds the termination rules shared by every method.
type Policy struct {
	MaxIterations    int
	ConvergenceError float64
	DivergingError   float64
	RootTolerance    float64
	Delta            float64 // modified secant perturbation fraction
}

func DefaultPolicy() Policy {
	return Policy{
		MaxIterations:    constants.MaxIterations,
		ConvergenceError: constants.ConvergenceError,
		DivergingError:   constants.DivergingError,
		RootTolerance:    constants.RootTolerance,
		Delta:            constants.Delta,
	}
}

// ApproximateError is the relative change between successive iterates.
// On the first pass there is no previous value and the error is 1.
func ApproximateError(current, previous float64, first bool) float64 {
	if first {
		return 1
	}
	return math.Abs((current - previous) / current)
}

// IsRoot reports whether f(x) is close enough to zero to accept x.
func (p Policy) IsRoot(fx float64) bool {
	return fx > -p.RootTolerance && fx < p.RootTolerance
}

// verdict applies the divergence check, then the convergence check with the
// plausibility guard. done is false when the iteration must go on.
func (p Policy) verdict(approxError, fx float64) (outcome Outcome, done bool) {
	if approxError > p.DivergingError {
		return Diverging, true
	}
	if fx == 0 || approxError < p.ConvergenceError {
		if p.IsRoot(fx) {
			return RootFound, true
		}
		return NoRoot, true
	}
	return Unknown, false
}
