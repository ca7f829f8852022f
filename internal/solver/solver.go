package solver

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/wildstyl3r/roots/internal/function"
)

var ErrUnknownMethod = errors.New("unknown method")

type Method string

const (
	Bisection      Method = "Bisection"
	NewtonRaphson  Method = "Newton-Raphson"
	Secant         Method = "Secant"
	FalsePosition  Method = "False-Position"
	ModifiedSecant Method = "Modified Secant"
)

var Methods = []Method{Bisection, NewtonRaphson, Secant, FalsePosition, ModifiedSecant}

// ParseMethod accepts the display name or a lowercase identifier
// such as "newton" or "modified_secant".
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)) {
	case "bisection":
		return Bisection, nil
	case "newton", "newtonraphson":
		return NewtonRaphson, nil
	case "secant":
		return Secant, nil
	case "falseposition", "regulafalsi":
		return FalsePosition, nil
	case "modifiedsecant":
		return ModifiedSecant, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Bracketing reports whether the method keeps an interval [a, b].
func (m Method) Bracketing() bool {
	return m == Bisection || m == FalsePosition
}

type Outcome int

const (
	Unknown Outcome = iota
	RootFound
	NoRoot
	Diverging
	DerivativeZero
	MaxIterationsExceeded
)

func (o Outcome) String() string {
	switch o {
	case RootFound:
		return "root found"
	case NoRoot:
		return "no root"
	case Diverging:
		return "diverging"
	case DerivativeZero:
		return "derivative zero"
	case MaxIterationsExceeded:
		return "max iterations exceeded"
	}
	return "unknown"
}

// Record is one pass of a method. Fields that do not apply to the method
// (or are not defined yet on the first pass) are NaN.
type Record struct {
	Index int
	Error float64

	// bracketing
	A, B, C    float64
	FA, FB, FC float64

	// open
	X, Previous   float64
	FX, FPrevious float64
	FPrime        float64
	FPerturbed    float64 // f(x + delta*x)
}

func newRecord(index int, approxError float64) Record {
	nan := math.NaN()
	return Record{
		Index: index, Error: approxError,
		A: nan, B: nan, C: nan, FA: nan, FB: nan, FC: nan,
		X: nan, Previous: nan, FX: nan, FPrevious: nan, FPrime: nan, FPerturbed: nan,
	}
}

// Sink receives the trace of one invocation in iteration order.
type Sink interface {
	Emit(Record) error
	EmitOutcome(Result) error
}

type Result struct {
	Method       Method
	FunctionID   int
	FunctionName string
	Start        []float64 // bracket or initial guess(es) as supplied
	Outcome      Outcome
	Root         float64 // NaN unless Outcome is RootFound
	Iterations   int
	Trace        []Record
}

func newResult(method Method, fn function.Spec, start ...float64) Result {
	return Result{
		Method:       method,
		FunctionID:   fn.ID,
		FunctionName: fn.Name,
		Start:        start,
		Root:         math.NaN(),
	}
}

func (r *Result) emit(sink Sink, rec Record) error {
	r.Trace = append(r.Trace, rec)
	if sink == nil {
		return nil
	}
	if err := sink.Emit(rec); err != nil {
		return fmt.Errorf("%s: emit pass %d: %w", r.Method, rec.Index, err)
	}
	return nil
}

func (r *Result) settle(sink Sink, outcome Outcome, value float64, iterations int) (Result, error) {
	r.Outcome = outcome
	r.Iterations = iterations
	if outcome == RootFound {
		r.Root = value
	}
	if sink != nil {
		if err := sink.EmitOutcome(*r); err != nil {
			return *r, fmt.Errorf("%s: emit outcome: %w", r.Method, err)
		}
	}
	return *r, nil
}

// Run dispatches to the named method. Bracketing methods and Secant take two
// start values; Newton-Raphson and Modified Secant take one.
func Run(method Method, fn function.Spec, start []float64, policy Policy, sink Sink) (Result, error) {
	need := 2
	if method == NewtonRaphson || method == ModifiedSecant {
		need = 1
	}
	if len(start) != need {
		return Result{}, fmt.Errorf("%s needs %d start values, got %d", method, need, len(start))
	}
	switch method {
	case Bisection:
		return BisectionMethod(fn, start[0], start[1], policy, sink)
	case FalsePosition:
		return FalsePositionMethod(fn, start[0], start[1], policy, sink)
	case NewtonRaphson:
		return NewtonRaphsonMethod(fn, start[0], policy, sink)
	case Secant:
		return SecantMethod(fn, start[0], start[1], policy, sink)
	case ModifiedSecant:
		return ModifiedSecantMethod(fn, start[0], policy, sink)
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
}
