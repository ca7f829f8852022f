package function

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDivisionByZero  = errors.New("cannot divide by zero")
	ErrUnknownFunction = errors.New("unknown function")
)

// Spec is a test function together with its closed-form derivative.
// Solvers receive it opaquely and never branch on ID.
type Spec struct {
	ID     int
	Name   string
	F      func(x float64) (float64, error)
	FPrime func(x float64) (float64, error)
}

// #1. f(x) = 2x^3 - 11.7x^2 + 17.7x - 5, roots 0.365, 1.922, 3.563 in [0, 4]
var First = Spec{
	ID:   1,
	Name: "2x^3 - 11.7x^2 + 17.7x - 5",
	F: func(x float64) (float64, error) {
		return 2*x*x*x - 11.7*x*x + 17.7*x - 5, nil
	},
	FPrime: func(x float64) (float64, error) {
		return 6*x*x - 23.4*x + 17.7, nil
	},
}

// #2. f(x) = x + 10 - x cosh(50/x), root 126.632 in [120, 130]
var Second = Spec{
	ID:   2,
	Name: "x + 10 - x cosh(50/x)",
	F: func(x float64) (float64, error) {
		if x == 0 {
			return math.NaN(), fmt.Errorf("f(%v): %w", x, ErrDivisionByZero)
		}
		return x + 10 - x*math.Cosh(50/x), nil
	},
	FPrime: func(x float64) (float64, error) {
		if x == 0 {
			return math.NaN(), fmt.Errorf("f'(%v): %w", x, ErrDivisionByZero)
		}
		return 1 - math.Cosh(50/x) + 50*math.Sinh(50/x)/x, nil
	},
}

var known = map[int]Spec{
	First.ID:  First,
	Second.ID: Second,
}

func ByID(id int) (Spec, error) {
	spec, ok := known[id]
	if !ok {
		return Spec{}, fmt.Errorf("%w: #%d", ErrUnknownFunction, id)
	}
	return spec, nil
}
