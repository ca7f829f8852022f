package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/wildstyl3r/roots/internal/solver"
)

// ErrorLog writes the approximate error of every pass:
//
//	Bisection Function #1
//	Iteration, Error
//	0,1
//	...
//	root = 1.921875
//
// The header and the closing line are not CSV records and bypass the csv
// writer.
type ErrorLog struct {
	w      io.Writer
	rows   *csv.Writer
	closer io.Closer
}

func NewErrorLog(w io.Writer) *ErrorLog {
	l := &ErrorLog{w: w, rows: csv.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		l.closer = c
	}
	return l
}

func (l *ErrorLog) line(format string, args ...any) error {
	l.rows.Flush()
	if err := l.rows.Error(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(l.w, format+"\n", args...)
	return err
}

func (l *ErrorLog) Begin(inv Invocation) error {
	if err := l.line("\n%s Function #%d", inv.Method, inv.Function.ID); err != nil {
		return err
	}
	return l.line("Iteration, Error")
}

func (l *ErrorLog) Emit(rec solver.Record) error {
	return l.rows.Write([]string{strconv.Itoa(rec.Index), formatFloat(rec.Error)})
}

func (l *ErrorLog) EmitOutcome(r solver.Result) error {
	switch r.Outcome {
	case solver.RootFound:
		return l.line("root = %s", strconv.FormatFloat(r.Root, 'f', -1, 64))
	case solver.NoRoot:
		return l.line("root = DNE")
	case solver.Diverging:
		return l.line("ERROR: This equation is diverging.")
	case solver.DerivativeZero:
		return l.line("ERROR: f'(xn) = 0.")
	case solver.MaxIterationsExceeded:
		return l.line("ERROR: Root has not been found after %d iterations.", r.Iterations)
	}
	return l.line("ERROR: %s", r.Outcome)
}

func (l *ErrorLog) Fail(err error) error {
	return l.line("ERROR: %s", err)
}

func (l *ErrorLog) Close() error {
	l.rows.Flush()
	err := l.rows.Error()
	if l.closer != nil {
		if cerr := l.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
