package report

import (
	"strconv"
	"strings"

	"github.com/wildstyl3r/roots/internal/solver"
	"github.com/wildstyl3r/roots/internal/utils"
)

var summaryColumns = []string{"run", "method", "function", "start", "outcome", "root", "iterations"}

// Summary keeps one row per invocation.
type Summary struct {
	name    string
	rows    utils.CSV
	results []solver.Result
}

func NewSummary() *Summary {
	return &Summary{}
}

func (s *Summary) Begin(inv Invocation) error {
	s.name = inv.Name
	return nil
}

func (s *Summary) Emit(solver.Record) error {
	return nil
}

func (s *Summary) EmitOutcome(r solver.Result) error {
	root := "DNE"
	if r.Outcome == solver.RootFound {
		root = strconv.FormatFloat(r.Root, 'f', -1, 64)
	}
	s.rows = append(s.rows, []string{
		s.name,
		string(r.Method),
		strconv.Itoa(r.FunctionID),
		joinFloats(r.Start),
		r.Outcome.String(),
		root,
		strconv.Itoa(r.Iterations),
	})
	s.results = append(s.results, r)
	return nil
}

func (s *Summary) Fail(err error) error {
	s.rows = append(s.rows, []string{s.name, "", "", "", "error: " + err.Error(), "DNE", ""})
	return nil
}

func (s *Summary) Close() error {
	return nil
}

// Results returns the outcomes seen so far in invocation order.
func (s *Summary) Results() []solver.Result {
	return s.results
}

// Save writes the rows ordered naturally by run name.
func (s *Summary) Save(outputPath string, makeDir bool, suffix, name string) error {
	rows := make(utils.CSV, len(s.rows))
	copy(rows, s.rows)
	return utils.WriteAsCSV(rows, makeDir, outputPath, suffix, name, summaryColumns)
}

func joinFloats(fs []float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = formatFloat(f)
	}
	return strings.Join(parts, " ")
}
