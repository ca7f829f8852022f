package driver

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/wildstyl3r/roots/internal/config"
	"github.com/wildstyl3r/roots/internal/function"
	"github.com/wildstyl3r/roots/internal/report"
	"github.com/wildstyl3r/roots/internal/solver"
	"github.com/wildstyl3r/roots/internal/utils"
)

// Run is one finished invocation. Err is set when the method was aborted
// by an evaluation failure.
type Run struct {
	Invocation report.Invocation
	Result     solver.Result
	Err        error
}

type Driver struct {
	policy solver.Policy
	writer report.Writer
	logger *slog.Logger
}

func New(policy solver.Policy, writer report.Writer, logger *slog.Logger) *Driver {
	return &Driver{policy: policy, writer: writer, logger: logger}
}

// Run executes the invocations in order. A failing method does not stop the
// sequence; only a failing writer does.
func (d *Driver) Run(invocations []report.Invocation) ([]Run, error) {
	runs := make([]Run, 0, len(invocations))
	for _, inv := range invocations {
		if err := d.writer.Begin(inv); err != nil {
			return runs, fmt.Errorf("run %s: %w", inv.Name, err)
		}
		if inv.Method.Bracketing() {
			d.checkBracket(inv)
		}

		result, err := solver.Run(inv.Method, inv.Function, inv.Start, d.policy, d.writer)
		if err != nil {
			d.logger.Error("run aborted", "run", inv.Name, "method", inv.Method, "function", inv.Function.ID, "error", err)
			if ferr := d.writer.Fail(err); ferr != nil {
				return runs, fmt.Errorf("run %s: %w", inv.Name, ferr)
			}
		} else {
			d.logger.Debug("run finished",
				"run", inv.Name,
				"outcome", result.Outcome,
				"root", result.Root,
				"iterations", result.Iterations)
		}
		runs = append(runs, Run{Invocation: inv, Result: result, Err: err})
	}
	return runs, nil
}

// checkBracket warns about a bracket without a sign change. The method still
// runs on it unchanged.
func (d *Driver) checkBracket(inv report.Invocation) {
	if len(inv.Start) != 2 {
		return
	}
	ok, err := utils.SignChange(inv.Function.F, inv.Start[0], inv.Start[1])
	if err != nil {
		d.logger.Warn("bracket endpoints cannot be evaluated", "run", inv.Name, "error", err)
		return
	}
	if !ok {
		d.logger.Warn("bracket does not change sign", "run", inv.Name, "a", inv.Start[0], "b", inv.Start[1])
	}
}

// MeanIterations averages the iteration counts of completed runs per method.
func MeanIterations(runs []Run) map[solver.Method]float64 {
	counts := map[solver.Method][]int{}
	for _, run := range runs {
		if run.Err != nil {
			continue
		}
		counts[run.Result.Method] = append(counts[run.Result.Method], run.Result.Iterations)
	}
	means := make(map[solver.Method]float64, len(counts))
	for method, iterations := range counts {
		means[method] = utils.Average(iterations)
	}
	return means
}

func Name(method solver.Method, functionID int, start []float64) string {
	parts := []string{fmt.Sprintf("f%d", functionID), strings.ToLower(strings.ReplaceAll(string(method), " ", "_"))}
	for _, s := range start {
		parts = append(parts, fmt.Sprint(s))
	}
	return strings.Join(parts, "_")
}

func invocation(method solver.Method, fn function.Spec, start ...float64) report.Invocation {
	return report.Invocation{
		Name:     Name(method, fn.ID, start),
		Method:   method,
		Function: fn,
		Start:    start,
	}
}

// DefaultSequence runs every method on the first function over [0, 4] in unit
// steps, then once on the second function around its root near 126.6.
func DefaultSequence() []report.Invocation {
	var seq []report.Invocation
	brackets := [][2]float64{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
	for _, b := range brackets {
		seq = append(seq, invocation(solver.Bisection, function.First, b[0], b[1]))
	}
	for _, b := range brackets {
		seq = append(seq, invocation(solver.NewtonRaphson, function.First, b[1]))
	}
	for _, b := range brackets {
		seq = append(seq, invocation(solver.Secant, function.First, b[0], b[1]))
	}
	for _, b := range brackets {
		seq = append(seq, invocation(solver.FalsePosition, function.First, b[0], b[1]))
	}
	for _, b := range brackets {
		seq = append(seq, invocation(solver.ModifiedSecant, function.First, b[1]))
	}
	return append(seq,
		invocation(solver.Bisection, function.Second, 120, 130),
		invocation(solver.NewtonRaphson, function.Second, 130),
		invocation(solver.Secant, function.Second, 120, 130),
		invocation(solver.FalsePosition, function.Second, 120, 130),
		invocation(solver.ModifiedSecant, function.Second, 130),
	)
}

// FromConfig turns configured runs into invocations, in natural order of
// their names.
func FromConfig(cfg *config.Config) ([]report.Invocation, error) {
	var seq []report.Invocation
	for _, name := range cfg.RunNames() {
		run := cfg.Runs[name]
		method, err := solver.ParseMethod(run.Method)
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", name, err)
		}
		fn, err := function.ByID(run.Function)
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", name, err)
		}
		seq = append(seq, report.Invocation{
			Name:     name,
			Method:   method,
			Function: fn,
			Start:    run.Start(method),
		})
	}
	return seq, nil
}
