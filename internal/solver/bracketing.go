package solver

import (
	"fmt"
	"math"

	"github.com/wildstyl3r/roots/internal/function"
)

// interpolation picks the next point c inside the bracket.
type interpolation func(a, b, fa, fb float64) float64

func midpoint(a, b, _, _ float64) float64 {
	return (a + b) / 2
}

// c = (a f(b) - b f(a)) / (f(b) - f(a)), unguarded when f(a) == f(b)
func secantPoint(a, b, fa, fb float64) float64 {
	return (a*fb - b*fa) / (fb - fa)
}

// BisectionMethod halves [a, b] each pass. f(a) and f(b) are expected to have
// opposite signs; this is not checked.
func BisectionMethod(fn function.Spec, a, b float64, policy Policy, sink Sink) (Result, error) {
	return bracket(Bisection, fn, a, b, midpoint, policy, sink)
}

// FalsePositionMethod narrows [a, b] at the chord's zero crossing. It can
// stall on one endpoint when the curvature is lopsided.
func FalsePositionMethod(fn function.Spec, a, b float64, policy Policy, sink Sink) (Result, error) {
	return bracket(FalsePosition, fn, a, b, secantPoint, policy, sink)
}

func bracket(method Method, fn function.Spec, a, b float64, next interpolation, policy Policy, sink Sink) (Result, error) {
	result := newResult(method, fn, a, b)
	previous := math.NaN()
	for n := 0; n < policy.MaxIterations; n++ {
		fa, err := fn.F(a)
		if err != nil {
			return result, fmt.Errorf("%s pass %d: %w", method, n, err)
		}
		fb, err := fn.F(b)
		if err != nil {
			return result, fmt.Errorf("%s pass %d: %w", method, n, err)
		}
		c := next(a, b, fa, fb)
		fc, err := fn.F(c)
		if err != nil {
			return result, fmt.Errorf("%s pass %d: %w", method, n, err)
		}

		rec := newRecord(n, ApproximateError(c, previous, n == 0))
		rec.A, rec.B, rec.C = a, b, c
		rec.FA, rec.FB, rec.FC = fa, fb, fc
		if err := result.emit(sink, rec); err != nil {
			return result, err
		}

		if outcome, done := policy.verdict(rec.Error, fc); done {
			return result.settle(sink, outcome, c, n)
		}

		if fa*fc < 0 {
			b = c
		} else {
			a = c
		}
		previous = c
	}
	return result.settle(sink, MaxIterationsExceeded, math.NaN(), policy.MaxIterations)
}
