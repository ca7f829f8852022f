package solver

import (
	"fmt"
	"math"

	"github.com/wildstyl3r/roots/internal/function"
)

// step evaluates one pass at x. It fills the function values of rec and
// returns the next iterate.
type step func(rec *Record, x, previous float64) (next float64, err error)

// NewtonRaphsonMethod iterates x = x - f(x)/f'(x) from the initial guess.
func NewtonRaphsonMethod(fn function.Spec, x float64, policy Policy, sink Sink) (Result, error) {
	result := newResult(NewtonRaphson, fn, x)
	return open(&result, x, math.NaN(), func(rec *Record, x, _ float64) (float64, error) {
		fx, fPrimeX, err := valueAndSlope(fn, x)
		if err != nil {
			return math.NaN(), err
		}
		rec.FX, rec.FPrime = fx, fPrimeX
		return x - fx/fPrimeX, nil
	}, policy, sink)
}

// SecantMethod replaces the derivative with the slope through the two most
// recent iterates. f' is evaluated for the trace only.
func SecantMethod(fn function.Spec, previous, x float64, policy Policy, sink Sink) (Result, error) {
	result := newResult(Secant, fn, previous, x)
	return open(&result, x, previous, func(rec *Record, x, previous float64) (float64, error) {
		fx, fPrimeX, err := valueAndSlope(fn, x)
		if err != nil {
			return math.NaN(), err
		}
		fPreviousX, err := fn.F(previous)
		if err != nil {
			return math.NaN(), err
		}
		rec.FX, rec.FPrime, rec.FPrevious = fx, fPrimeX, fPreviousX
		return x - fx*(x-previous)/(fx-fPreviousX), nil
	}, policy, sink)
}

// ModifiedSecantMethod estimates the slope from f(x + delta*x). It degenerates
// at x = 0, where the perturbation vanishes.
func ModifiedSecantMethod(fn function.Spec, x float64, policy Policy, sink Sink) (Result, error) {
	result := newResult(ModifiedSecant, fn, x)
	return open(&result, x, math.NaN(), func(rec *Record, x, previous float64) (float64, error) {
		fx, fPrimeX, err := valueAndSlope(fn, x)
		if err != nil {
			return math.NaN(), err
		}
		perturbation := policy.Delta * x
		fxAndDelta, err := fn.F(x + perturbation)
		if err != nil {
			return math.NaN(), err
		}
		if !math.IsNaN(previous) {
			if rec.FPrevious, err = fn.F(previous); err != nil {
				return math.NaN(), err
			}
		}
		rec.FX, rec.FPrime, rec.FPerturbed = fx, fPrimeX, fxAndDelta
		return x - fx*perturbation/(fxAndDelta-fx), nil
	}, policy, sink)
}

func valueAndSlope(fn function.Spec, x float64) (fx, fPrimeX float64, err error) {
	if fx, err = fn.F(x); err != nil {
		return
	}
	fPrimeX, err = fn.FPrime(x)
	return
}

// open drives the single-point methods. The derivative check comes after the
// convergence check, so a root found on the same pass wins.
func open(result *Result, x, previous float64, next step, policy Policy, sink Sink) (Result, error) {
	for n := 0; n < policy.MaxIterations; n++ {
		rec := newRecord(n, ApproximateError(x, previous, n == 0))
		rec.X, rec.Previous = x, previous
		following, err := next(&rec, x, previous)
		if err != nil {
			return *result, fmt.Errorf("%s pass %d: %w", result.Method, n, err)
		}
		if err := result.emit(sink, rec); err != nil {
			return *result, err
		}

		if outcome, done := policy.verdict(rec.Error, rec.FX); done {
			return result.settle(sink, outcome, x, n)
		}
		if rec.FPrime == 0 {
			return result.settle(sink, DerivativeZero, math.NaN(), n)
		}

		previous, x = x, following
	}
	return result.settle(sink, MaxIterationsExceeded, math.NaN(), policy.MaxIterations)
}
