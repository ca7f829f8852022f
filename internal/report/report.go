package report

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/wildstyl3r/roots/internal/function"
	"github.com/wildstyl3r/roots/internal/solver"
)

// Invocation names one call of a method on a function.
type Invocation struct {
	Name     string
	Method   solver.Method
	Function function.Spec
	Start    []float64
}

// Writer is a solver.Sink that also sees where each invocation begins and
// how a failed one ended.
type Writer interface {
	solver.Sink
	Begin(Invocation) error
	Fail(err error) error
	Close() error
}

// Multi fans every call out to all writers in order.
type Multi []Writer

func (m Multi) Begin(inv Invocation) error {
	var errs []error
	for _, w := range m {
		errs = append(errs, w.Begin(inv))
	}
	return errors.Join(errs...)
}

func (m Multi) Emit(rec solver.Record) error {
	var errs []error
	for _, w := range m {
		errs = append(errs, w.Emit(rec))
	}
	return errors.Join(errs...)
}

func (m Multi) EmitOutcome(r solver.Result) error {
	var errs []error
	for _, w := range m {
		errs = append(errs, w.EmitOutcome(r))
	}
	return errors.Join(errs...)
}

func (m Multi) Fail(err error) error {
	var errs []error
	for _, w := range m {
		errs = append(errs, w.Fail(err))
	}
	return errors.Join(errs...)
}

// Close closes every writer even if some of them fail.
func (m Multi) Close() error {
	var errs []error
	for _, w := range m {
		errs = append(errs, w.Close())
	}
	return errors.Join(errs...)
}

var bracketingColumns = []string{"n", "a", "b", "c", "f(a)", "f(b)", "f(c)", "Error"}

var columns = map[solver.Method][]string{
	solver.Bisection:      bracketingColumns,
	solver.FalsePosition:  bracketingColumns,
	solver.NewtonRaphson:  {"n", "xn", "f(xn)", "f'(xn)", "Error"},
	solver.Secant:         {"n", "xn-1", "xn", "f(xn-1)", "f(xn)", "f'(xn)", "Error"},
	solver.ModifiedSecant: {"n", "xn-1", "xn", "f(xn-1)", "f(xn)", "f(x+delta*x)", "f'(xn)", "Error"},
}

// values returns the record's cells in the order of columns[method], without n.
func values(method solver.Method, rec solver.Record) []float64 {
	switch method {
	case solver.Bisection, solver.FalsePosition:
		return []float64{rec.A, rec.B, rec.C, rec.FA, rec.FB, rec.FC, rec.Error}
	case solver.NewtonRaphson:
		return []float64{rec.X, rec.FX, rec.FPrime, rec.Error}
	case solver.Secant:
		return []float64{rec.Previous, rec.X, rec.FPrevious, rec.FX, rec.FPrime, rec.Error}
	case solver.ModifiedSecant:
		return []float64{rec.Previous, rec.X, rec.FPrevious, rec.FX, rec.FPerturbed, rec.FPrime, rec.Error}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// startText describes the bracket or the initial guesses.
func startText(method solver.Method, start []float64) string {
	if method.Bracketing() && len(start) == 2 {
		return "in between " + formatFloat(start[0]) + " and " + formatFloat(start[1])
	}
	var guesses []string
	for _, s := range start {
		guesses = append(guesses, formatFloat(s))
	}
	return "starting at x = " + strings.Join(guesses, ", ")
}

func cell(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}
