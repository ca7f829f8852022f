package report

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildstyl3r/roots/internal/function"
	"github.com/wildstyl3r/roots/internal/solver"
)

func run(t *testing.T, w Writer, inv Invocation) solver.Result {
	t.Helper()
	require.NoError(t, w.Begin(inv))
	result, err := solver.Run(inv.Method, inv.Function, inv.Start, solver.DefaultPolicy(), w)
	require.NoError(t, err)
	return result
}

var bisection12 = Invocation{
	Name:     "bisection_f1_1_2",
	Method:   solver.Bisection,
	Function: function.First,
	Start:    []float64{1, 2},
}

func TestErrorLog(t *testing.T) {
	var buf bytes.Buffer
	log := NewErrorLog(&buf)
	run(t, log, bisection12)
	require.NoError(t, log.Close())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+2+6+1)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "Bisection Function #1", lines[1])
	assert.Equal(t, "Iteration, Error", lines[2])
	assert.Equal(t, "0,1", lines[3])
	assert.Equal(t, "1,0.14285714285714285", lines[4])
	assert.True(t, strings.HasPrefix(lines[8], "5,0.008"), lines[8])
	assert.Equal(t, "root = 1.921875", lines[9])
}

func TestErrorLogOutcomes(t *testing.T) {
	var buf bytes.Buffer
	log := NewErrorLog(&buf)
	run(t, log, Invocation{Name: "dne", Method: solver.Bisection, Function: function.First, Start: []float64{2, 3}})
	require.NoError(t, log.Fail(function.ErrDivisionByZero))
	require.NoError(t, log.Close())

	assert.Contains(t, buf.String(), "\nroot = DNE\n")
	assert.Contains(t, buf.String(), "\nERROR: cannot divide by zero\n")
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)
	run(t, console, bisection12)

	out := buf.String()
	assert.Contains(t, out, "f(a)")
	assert.Contains(t, out, "1.500")
	assert.Contains(t, out, "BISECTION - The root 1.922 has been found in between 1 and 2 for function #1 in 5 iterations.")

	buf.Reset()
	run(t, console, Invocation{Name: "newton", Method: solver.NewtonRaphson, Function: function.First, Start: []float64{2}})
	assert.Contains(t, buf.String(), "f'(xn)")
	assert.Contains(t, buf.String(), "NEWTON-RAPHSON - The root 1.922 has been found starting at x = 2 for function #1")

	buf.Reset()
	run(t, console, Invocation{Name: "dne", Method: solver.Bisection, Function: function.First, Start: []float64{2, 3}})
	assert.Contains(t, buf.String(), "BISECTION - There is no root in between 2 and 3 for function #1.")
}

func TestConsoleSecantShowsUndefinedPrevious(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)
	run(t, console, Invocation{Name: "ms", Method: solver.ModifiedSecant, Function: function.First, Start: []float64{2}})

	lines := strings.Split(buf.String(), "\n")
	require.Greater(t, len(lines), 4)
	// blank, header, rule, first row
	assert.True(t, strings.HasPrefix(lines[3], "   0 |"), lines[3])
	assert.Contains(t, lines[3], " - ")
}

func TestTrace(t *testing.T) {
	dir := t.TempDir() + "/"
	trace := NewTrace(dir, false, "trace")
	run(t, trace, bisection12)
	require.NoError(t, trace.Close())

	content, err := os.ReadFile(dir + "bisection_f1_1_2_trace.txt")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "n,a,b,c,f(a),f(b),f(c),Error", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0,1,2,1.5,"), lines[1])
}

func TestSummary(t *testing.T) {
	summary := NewSummary()
	run(t, summary, Invocation{Name: "run_10", Method: solver.Bisection, Function: function.First, Start: []float64{2, 3}})
	run(t, summary, Invocation{Name: "run_9", Method: solver.Bisection, Function: function.First, Start: []float64{1, 2}})
	require.NoError(t, summary.Begin(Invocation{Name: "run_11"}))
	require.NoError(t, summary.Fail(function.ErrDivisionByZero))

	require.Len(t, summary.Results(), 2)
	assert.Equal(t, solver.NoRoot, summary.Results()[0].Outcome)

	dir := t.TempDir() + "/"
	require.NoError(t, summary.Save(dir, false, "summary", "roots"))
	content, err := os.ReadFile(dir + "roots_summary.txt")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "run,method,function,start,outcome,root,iterations", lines[0])
	assert.Equal(t, "run_9,Bisection,1,1 2,root found,1.921875,5", lines[1])
	assert.Equal(t, "run_10,Bisection,1,2 3,no root,DNE,5", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "run_11,"), lines[3])
}

type brokenWriter struct{ Summary }

var errBroken = errors.New("broken")

func (*brokenWriter) Close() error { return errBroken }

func TestMultiClosesEverything(t *testing.T) {
	var buf bytes.Buffer
	log := NewErrorLog(&buf)
	m := Multi{&brokenWriter{}, log}
	require.NoError(t, m.Begin(bisection12))
	require.NoError(t, m.Emit(solver.Record{Index: 0, Error: 1}))

	err := m.Close()
	assert.ErrorIs(t, err, errBroken)
	assert.Contains(t, buf.String(), "0,1\n", "the log is flushed despite the earlier failure")
}

func TestFlagsOpen(t *testing.T) {
	fs := flag.NewFlagSet("roots", flag.ContinueOnError)
	flags := NewFlags(fs)
	require.NoError(t, fs.Parse([]string{"-quiet", "-trace"}))
	flags.SetOutputPath(t.TempDir())

	assert.True(t, flags.Quiet())
	assert.True(t, flags.Enabled(ErrorLogOutput))
	assert.True(t, flags.Enabled(TraceOutput))
	assert.True(t, flags.Enabled(SummaryOutput))
	assert.False(t, flags.Enabled("Plot"))

	var stdout bytes.Buffer
	writers, summary, err := flags.Open(&stdout, "roots")
	require.NoError(t, err)
	require.Len(t, writers, 3)

	run(t, writers, bisection12)
	require.NoError(t, writers.Close())
	require.NoError(t, flags.SaveSummary(summary, "roots"))

	assert.Empty(t, stdout.String())
	path := flags.GetOutputPath()
	assert.FileExists(t, path+"roots_errors.txt")
	assert.FileExists(t, path+"bisection_f1_1_2_trace.txt")
	assert.FileExists(t, path+"roots_summary.txt")
}
