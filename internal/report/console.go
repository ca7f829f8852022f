package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wildstyl3r/roots/internal/solver"
)

const cellWidth = 14

// Console prints one table per invocation followed by a summary line.
type Console struct {
	out        io.Writer
	invocation Invocation

	headerStyle  lipgloss.Style
	foundStyle   lipgloss.Style
	missingStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

func NewConsole(out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		out:          out,
		headerStyle:  r.NewStyle().Bold(true),
		foundStyle:   r.NewStyle().Foreground(lipgloss.Color("42")),
		missingStyle: r.NewStyle().Foreground(lipgloss.Color("214")),
		errorStyle:   r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

func (c *Console) Begin(inv Invocation) error {
	c.invocation = inv
	var header strings.Builder
	for i, name := range columns[inv.Method] {
		if i == 0 {
			fmt.Fprintf(&header, "%4s", name)
			continue
		}
		fmt.Fprintf(&header, " |%*s", cellWidth, name)
	}
	line := header.String()
	_, err := fmt.Fprintf(c.out, "\n%s\n%s\n", c.headerStyle.Render(line), strings.Repeat("-", len(line)))
	return err
}

func (c *Console) Emit(rec solver.Record) error {
	var row strings.Builder
	fmt.Fprintf(&row, "%4d", rec.Index)
	for _, v := range values(c.invocation.Method, rec) {
		fmt.Fprintf(&row, " |%*s", cellWidth, cell(v))
	}
	_, err := fmt.Fprintln(c.out, row.String())
	return err
}

func (c *Console) EmitOutcome(r solver.Result) error {
	_, err := fmt.Fprintln(c.out, c.summary(r))
	return err
}

func (c *Console) summary(r solver.Result) string {
	name := strings.ToUpper(string(r.Method))
	start := startText(r.Method, r.Start)
	switch r.Outcome {
	case solver.RootFound:
		return c.foundStyle.Render(fmt.Sprintf("%s - The root %.3f has been found %s for function #%d in %d iterations.",
			name, r.Root, start, r.FunctionID, r.Iterations))
	case solver.NoRoot:
		return c.missingStyle.Render(fmt.Sprintf("%s - There is no root %s for function #%d.",
			name, start, r.FunctionID))
	case solver.Diverging:
		return c.errorStyle.Render(fmt.Sprintf("ERROR: This equation is diverging. (%s, function #%d, %s)",
			name, r.FunctionID, start))
	case solver.DerivativeZero:
		return c.errorStyle.Render(fmt.Sprintf("ERROR: f'(xn) = 0, cannot continue finding the root. (%s, function #%d, %s)",
			name, r.FunctionID, start))
	case solver.MaxIterationsExceeded:
		return c.missingStyle.Render(fmt.Sprintf("%s - Root has not been found after %d iterations for function #%d %s.",
			name, r.Iterations, r.FunctionID, start))
	}
	return fmt.Sprintf("%s - %s", name, r.Outcome)
}

func (c *Console) Fail(err error) error {
	_, werr := fmt.Fprintln(c.out, c.errorStyle.Render("ERROR: "+err.Error()))
	return werr
}

func (c *Console) Close() error {
	return nil
}
