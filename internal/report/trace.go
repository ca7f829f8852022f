package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/wildstyl3r/roots/internal/solver"
	"github.com/wildstyl3r/roots/internal/utils"
)

// Trace saves every column of every pass to a file per invocation.
type Trace struct {
	outputPath string
	makeDir    bool
	suffix     string

	method solver.Method
	file   *os.File
	rows   *csv.Writer
}

func NewTrace(outputPath string, makeDir bool, suffix string) *Trace {
	return &Trace{outputPath: outputPath, makeDir: makeDir, suffix: suffix}
}

func (t *Trace) Begin(inv Invocation) error {
	if err := t.Close(); err != nil {
		return err
	}
	file, err := utils.OpenFile(t.makeDir, t.outputPath, t.suffix, inv.Name)
	if err != nil {
		return fmt.Errorf("unable to save trace of %s: %w", inv.Name, err)
	}
	t.method = inv.Method
	t.file = file
	t.rows = csv.NewWriter(file)
	return t.rows.Write(columns[inv.Method])
}

func (t *Trace) Emit(rec solver.Record) error {
	if t.rows == nil {
		return nil
	}
	row := []string{strconv.Itoa(rec.Index)}
	for _, v := range values(t.method, rec) {
		row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return t.rows.Write(row)
}

func (t *Trace) EmitOutcome(solver.Result) error {
	return t.Close()
}

func (t *Trace) Fail(error) error {
	return t.Close()
}

func (t *Trace) Close() error {
	if t.file == nil {
		return nil
	}
	t.rows.Flush()
	err := t.rows.Error()
	if cerr := t.file.Close(); err == nil {
		err = cerr
	}
	t.file, t.rows = nil, nil
	return err
}
