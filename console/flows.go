package console

import (
	"context"
	"fmt"

	"github.com/warp/payroll-tracker/generic"
	"github.com/warp/payroll-tracker/payroll"
)

// Prompts used by the creation flows.
const (
	PromptID                = "Enter Employee ID: "
	PromptName              = "Enter Employee Name: "
	PromptFixedSalary       = "Enter Fixed Salary: $"
	PromptHourlyWage        = "Enter Hourly Wage: $"
	PromptHoursWorked       = "Enter Hours Worked: "
	PromptPaymentPerProject = "Enter Payment Per Project: $"
	PromptProjectCount      = "Enter Number of Projects: "
)

// buildFunc reads the variant fields and constructs the employee.
type buildFunc func(r *Reader, id generic.EmployeeID, name string) (generic.Employee, error)

var builders = map[payroll.Kind]buildFunc{
	payroll.KindFullTime:    buildFullTime,
	payroll.KindPartTime:    buildPartTime,
	payroll.KindContractual: buildContractual,
}

// createEmployee runs one creation flow to completion: unique ID, name,
// variant fields, append. There is no way back to the menu halfway.
func (s *Session) createEmployee(ctx context.Context, kind payroll.Kind) error {
	build, ok := builders[kind]
	if !ok {
		return fmt.Errorf("%w: %s", generic.ErrUnknownKind, kind)
	}

	id, err := s.readUniqueID(ctx)
	if err != nil {
		return err
	}

	name, err := s.in.ReadLine(PromptName)
	if err != nil {
		return err
	}

	emp, err := build(s.in, id, name)
	if err != nil {
		return err
	}

	if err := s.store.Append(ctx, emp); err != nil {
		return fmt.Errorf("append employee %d: %w", id, err)
	}

	s.log.Info().
		Int("id", int(id)).
		Str("kind", kind.KindID()).
		Str("total", emp.TotalPay().Value.String()).
		Msg("employee added")
	return nil
}

// readUniqueID alternates between the ID prompt and the duplicate check
// until an unused positive ID is entered.
func (s *Session) readUniqueID(ctx context.Context) (generic.EmployeeID, error) {
	for {
		n, err := s.in.ReadPositiveInt(PromptID)
		if err != nil {
			return 0, err
		}
		id := generic.EmployeeID(n)

		taken, err := s.store.Exists(ctx, id)
		if err != nil {
			return 0, fmt.Errorf("check employee id %d: %w", id, err)
		}
		if !taken {
			return id, nil
		}

		s.log.Debug().Int("id", n).Msg("duplicate employee id")
		s.in.Println(MsgDuplicateID)
	}
}

func buildFullTime(r *Reader, id generic.EmployeeID, name string) (generic.Employee, error) {
	salary, err := r.ReadPositiveDecimal(PromptFixedSalary)
	if err != nil {
		return nil, err
	}
	emp, err := payroll.NewFullTime(id, name, salary)
	if err != nil {
		return nil, err
	}
	return emp, nil
}

func buildPartTime(r *Reader, id generic.EmployeeID, name string) (generic.Employee, error) {
	wage, err := r.ReadPositiveDecimal(PromptHourlyWage)
	if err != nil {
		return nil, err
	}
	hours, err := r.ReadPositiveInt(PromptHoursWorked)
	if err != nil {
		return nil, err
	}
	emp, err := payroll.NewPartTime(id, name, wage, hours)
	if err != nil {
		return nil, err
	}
	return emp, nil
}

func buildContractual(r *Reader, id generic.EmployeeID, name string) (generic.Employee, error) {
	rate, err := r.ReadPositiveDecimal(PromptPaymentPerProject)
	if err != nil {
		return nil, err
	}
	count, err := r.ReadPositiveInt(PromptProjectCount)
	if err != nil {
		return nil, err
	}
	emp, err := payroll.NewContractual(id, name, rate, count)
	if err != nil {
		return nil, err
	}
	return emp, nil
}
