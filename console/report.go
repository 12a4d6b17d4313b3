package console

import (
	"fmt"
	"io"

	"github.com/warp/payroll-tracker/generic"
	"github.com/warp/payroll-tracker/payroll"
)

const (
	reportHeader = "------ Employee Payroll Report ------"
	reportFooter = "--------------------------------------"
)

// ReportOptions tunes the payroll report.
type ReportOptions struct {
	// Summary adds a grand total line before the footer.
	Summary bool
}

// WriteReport prints every employee in the given order, framed by the
// header and footer. An empty slice prints the frame only.
func WriteReport(w io.Writer, employees []generic.Employee, opts ReportOptions) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", reportHeader); err != nil {
		return err
	}

	for _, emp := range employees {
		if err := writeEmployee(w, emp); err != nil {
			return err
		}
	}

	if opts.Summary {
		sum := payroll.Summarize(employees)
		noun := "employees"
		if sum.Count == 1 {
			noun = "employee"
		}
		if _, err := fmt.Fprintf(w, "Total Payroll: %s (%d %s)\n", sum.Total, sum.Count, noun); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s\n\n", reportFooter)
	return err
}

func writeEmployee(w io.Writer, emp generic.Employee) error {
	if _, err := fmt.Fprintf(w, "Employee: %s (ID: %d)\n", emp.Name(), emp.ID()); err != nil {
		return err
	}
	for _, line := range emp.Breakdown() {
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
